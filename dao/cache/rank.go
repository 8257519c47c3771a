package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const productRankCacheKey = "mall:product:sold_rank"

// ProductRank 热销榜缓存，仅做展示排序，库存真相始终在数据库
type ProductRank struct {
	redis *redis.Client
}

func NewProductRank(rds *redis.Client) *ProductRank {
	return &ProductRank{redis: rds}
}

// Incr 下单成功后按购买件数累加商品热度
func (r *ProductRank) Incr(ctx context.Context, productID uint64, quantity uint32) error {
	member := strconv.FormatUint(productID, 10)
	return r.redis.ZIncrBy(ctx, productRankCacheKey, float64(quantity), member).Err()
}

// Top 取热度最高的前 n 个商品ID
func (r *ProductRank) Top(ctx context.Context, n int64) ([]uint64, error) {
	members, err := r.redis.ZRevRange(ctx, productRankCacheKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		if id, err := strconv.ParseUint(m, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
