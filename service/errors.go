package service

import (
	"errors"
	"fmt"
)

// 校验类错误：落库前拦截，不会产生半成品数据
var (
	ErrInvalidPrice     = errors.New("价格或库存不合法")
	ErrInvalidPromotion = errors.New("促销设置不合法")
)

// 业务规则类错误：原样抛给调用方展示，由买家修正后重试
var (
	ErrVoucherExpired   = errors.New("优惠券不在有效期内")
	ErrVoucherExhausted = errors.New("优惠券已被领完")
	ErrMinOrderNotMet   = errors.New("订单金额未达到优惠券使用门槛")
)

// 状态类错误
var (
	ErrVariantNotFound = errors.New("商品变体不存在")
	ErrOrderNotFound   = errors.New("订单不存在")
	ErrVoucherNotFound = errors.New("优惠券不存在")
	ErrProductNotFound = errors.New("商品不存在")
)

// InsufficientStockError 库存不足，携带具体变体ID方便前端定位到购物车行
type InsufficientStockError struct {
	VariantID uint64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("变体 %d 库存不足", e.VariantID)
}

// InvalidTransitionError 非法的订单状态流转
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("订单状态不允许从 %s 流转到 %s", e.From, e.To)
}
