package models

import (
	"time"

	"gorm.io/datatypes"
)

// 订单状态机的全部状态，状态值直接落库
const (
	OrderStatusPending   = "cho_xac_nhan"   // 待确认（初始态）
	OrderStatusConfirmed = "da_xac_nhan"    // 已确认
	OrderStatusShipping  = "dang_giao_hang" // 配送中
	OrderStatusDelivered = "da_giao_hang"   // 已送达（终态）
	OrderStatusCancelled = "da_huy"         // 已取消（终态，仅能从待确认进入）
)

// Order 订单主表
type Order struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderSn       string    `gorm:"column:order_sn;type:varchar(32);not null;uniqueIndex:idx_order_sn" json:"order_sn"`
	CustomerID    uint64    `gorm:"column:customer_id;not null;index:idx_customer_id" json:"customer_id"`
	Address       string    `gorm:"column:address;type:varchar(512);not null" json:"address"` // 下单时解析好的收货地址快照
	PaymentMethod string    `gorm:"column:payment_method;type:varchar(32);not null" json:"payment_method"`
	VoucherID     *uint64   `gorm:"column:voucher_id;index:idx_voucher_id" json:"voucher_id"`
	Status        string    `gorm:"column:status;type:varchar(20);not null;default:'cho_xac_nhan';index:idx_status" json:"status"`
	OrderDate     time.Time `gorm:"column:order_date;not null" json:"order_date"`
	TotalAmount   uint64    `gorm:"column:total_amount;not null" json:"total_amount"` // 创建时一次算定，之后不变（单位：VND）
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderDetail 订单明细，price 是下单时刻锁定的成交单价
type OrderDetail struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint64    `gorm:"column:order_id;not null;index:idx_order_id" json:"order_id"`
	VariantID uint64    `gorm:"column:variant_id;not null;index:idx_variant_id" json:"variant_id"`
	Quantity  uint32    `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Price     uint64    `gorm:"column:price;not null" json:"price"` // 冗余下单单价，锁定成交价不随商品调价变化
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderDetail) TableName() string {
	return "order_details"
}

// PayRecord 支付网关回调流水记录表
type PayRecord struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderSn   string         `gorm:"column:order_sn;type:varchar(32);not null;index:idx_order_sn" json:"order_sn"`
	Gateway   string         `gorm:"column:gateway;type:varchar(32);not null;default:''" json:"gateway"`
	Success   bool           `gorm:"column:success;not null" json:"success"`
	NotifyRaw datatypes.JSON `gorm:"column:notify_raw" json:"notify_raw"` // 网关原始回调报文
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PayRecord) TableName() string {
	return "pay_records"
}
