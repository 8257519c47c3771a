package service

import (
	"PhoneHub/dao"
	"PhoneHub/types"
	"context"
	"errors"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

type InventoryService struct {
	DB         *gorm.DB
	VariantDAO *dao.Variant
}

var _ IInventoryService = (*InventoryService)(nil)

type IInventoryService interface {
	BulkAdjust(ctx context.Context, req *types.BulkStockRequest) ([]*types.BulkStockResult, error)
}

// BulkAdjust 后台批量库存纠偏
// 每个变体独立提交：单个失败不回滚其他变体，结果逐条返回给操作员
func (s *InventoryService) BulkAdjust(ctx context.Context, req *types.BulkStockRequest) ([]*types.BulkStockResult, error) {
	if req.Amount < 0 {
		return nil, errors.New("批量库存操作数量不能为负数")
	}

	p := pool.NewWithResults[*types.BulkStockResult]().WithMaxGoroutines(8)
	for _, variantID := range req.VariantIDs {
		variantID := variantID
		p.Go(func() *types.BulkStockResult {
			return s.adjustOne(ctx, variantID, req.Op, req.Amount)
		})
	}
	return p.Wait(), nil
}

func (s *InventoryService) adjustOne(ctx context.Context, variantID uint64, op string, amount int64) *types.BulkStockResult {
	result := &types.BulkStockResult{VariantID: variantID}

	var err error
	switch op {
	case types.BulkOpAdd:
		if amount > 0 {
			_, _, err = s.VariantDAO.AdjustStock(ctx, s.DB.WithContext(ctx), variantID, amount)
		}
	case types.BulkOpSubtract:
		// 减到负数直接清零，纠偏场景不把不足当错误
		err = s.VariantDAO.SubtractStockClamped(ctx, variantID, amount)
	case types.BulkOpSet:
		err = s.VariantDAO.SetStock(ctx, variantID, ClampStock(amount))
	default:
		result.Error = "不支持的操作类型"
		return result
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	newStock, err := s.VariantDAO.GetStock(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result.Error = ErrVariantNotFound.Error()
		} else {
			result.Error = err.Error()
		}
		return result
	}

	result.Success = true
	result.NewStock = newStock
	return result
}
