package types

import "time"

// OrderItem 下单的一行：变体 + 数量
type OrderItem struct {
	VariantID uint64 `json:"variant_id" binding:"required"`
	Quantity  uint32 `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest 创建订单
type CreateOrderRequest struct {
	CustomerID    uint64      `json:"customer_id" binding:"required"`
	Items         []OrderItem `json:"items" binding:"required,min=1,dive"`
	VoucherCode   string      `json:"voucher_code"`
	PaymentMethod string      `json:"payment_method" binding:"required"`
	Address       string      `json:"address" binding:"required"`
}

// CreateOrderResponse 下单结果
type CreateOrderResponse struct {
	OrderID     uint64 `json:"order_id"`
	OrderSn     string `json:"order_sn"`
	TotalAmount uint64 `json:"total_amount"`
}

// UpdateOrderStatusRequest 后台订单状态流转
type UpdateOrderStatusRequest struct {
	TargetStatus string `json:"target_status" binding:"required"`
}

// Order 订单列表项
type Order struct {
	ID          uint64    `json:"id"`
	OrderSn     string    `json:"order_sn"`
	Status      string    `json:"status"`
	TotalAmount uint64    `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	OrderDate   time.Time `json:"order_date"`
}

// OrderListResponse 游标分页的订单列表
type OrderListResponse struct {
	Orders     []*Order `json:"orders"`
	HasMore    bool     `json:"has_more"`
	NextCursor int64    `json:"next_cursor"`
}
