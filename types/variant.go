package types

import "time"

// CreateVariantsRequest 按所选规格生成变体草稿
type CreateVariantsRequest struct {
	ProductID  uint64   `json:"product_id" binding:"required"`
	ColorIDs   []uint64 `json:"color_ids" binding:"required,min=1"`
	StorageIDs []uint64 `json:"storage_ids" binding:"required,min=1"`
	RamIDs     []uint64 `json:"ram_ids" binding:"required,min=1"`
}

// UpdateVariantRequest 补录价格/库存/促销，字段为空表示不修改
type UpdateVariantRequest struct {
	OriginalPrice    *uint64    `json:"original_price"`
	SalePrice        *uint64    `json:"sale_price"`
	PromotionalPrice *uint64    `json:"promotional_price"`
	PromotionStart   *time.Time `json:"promotion_start"`
	PromotionEnd     *time.Time `json:"promotion_end"`
	Stock            *int64     `json:"stock"`
	ClearPromotion   bool       `json:"clear_promotion"` // 显式清除促销三元组
}

// VariantDetailResponse 变体详情，带当前时刻的实际售价
type VariantDetailResponse struct {
	ID               uint64  `json:"id,string"` // 转字符串防止前端精度丢失
	ProductID        uint64  `json:"product_id"`
	ColorID          uint64  `json:"color_id"`
	RamID            uint64  `json:"ram_id"`
	StorageID        uint64  `json:"storage_id"`
	OriginalPrice    uint64  `json:"original_price"`
	SalePrice        uint64  `json:"sale_price"`
	PromotionalPrice *uint64 `json:"promotional_price"`
	EffectivePrice   uint64  `json:"effective_price"`
	DiscountPercent  int     `json:"discount_percent"`
	Stock            int64   `json:"stock"`
}

// 批量库存操作类型
const (
	BulkOpAdd      = "add"
	BulkOpSubtract = "subtract"
	BulkOpSet      = "set"
)

// BulkStockRequest 后台批量库存纠偏
type BulkStockRequest struct {
	VariantIDs []uint64 `json:"variant_ids" binding:"required,min=1"`
	Op         string   `json:"op" binding:"required,oneof=add subtract set"`
	Amount     int64    `json:"amount"`
}

// BulkStockResult 单个变体的处理结果，失败不影响其他变体
type BulkStockResult struct {
	VariantID uint64 `json:"variant_id"`
	Success   bool   `json:"success"`
	NewStock  int64  `json:"new_stock"`
	Error     string `json:"error,omitempty"`
}
