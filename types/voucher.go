package types

import "time"

// CreateVoucherRequest 后台创建优惠券，code 为空时自动生成
type CreateVoucherRequest struct {
	Code             string     `json:"code"`
	DiscountType     string     `json:"discount_type" binding:"required,oneof=PERCENTAGE FIXED"`
	DiscountValue    uint64     `json:"discount_value" binding:"required,min=1"`
	MinOrderValue    *uint64    `json:"min_order_value"`
	MaxUses          *int64     `json:"max_uses"`
	MaxDiscountValue *uint64    `json:"max_discount_value"`
	StartDate        *time.Time `json:"start_date"`
	ExpiryDate       *time.Time `json:"expiry_date"`
}

// PreviewDiscountResponse 购物车页的优惠试算，不产生任何副作用
type PreviewDiscountResponse struct {
	Code     string `json:"code"`
	Subtotal uint64 `json:"subtotal"`
	Discount uint64 `json:"discount"`
	Payable  uint64 `json:"payable"`
}
