package models

import (
	"time"

	"gorm.io/gorm"
)

// 优惠券折扣类型
const (
	VoucherTypePercentage = "PERCENTAGE" // 按比例折扣
	VoucherTypeFixed      = "FIXED"      // 固定金额减免
)

// Voucher 优惠券
type Voucher struct {
	ID               uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Code             string         `gorm:"size:32;not null;uniqueIndex:idx_voucher_code;column:code" json:"code"`
	DiscountType     string         `gorm:"size:16;not null;column:discount_type" json:"discount_type"`
	DiscountValue    uint64         `gorm:"not null;column:discount_value" json:"discount_value"` // FIXED 为金额，PERCENTAGE 为百分比
	MinOrderValue    *uint64        `gorm:"column:min_order_value" json:"min_order_value"`        // 使用门槛，为空不限
	MaxUses          *int64         `gorm:"column:max_uses" json:"max_uses"`                      // 总使用上限，为空不限
	UsedCount        int64          `gorm:"not null;default:0;column:used_count" json:"used_count"`
	MaxDiscountValue *uint64        `gorm:"column:max_discount_value" json:"max_discount_value"` // 封顶金额，仅对 PERCENTAGE 有意义
	StartDate        *time.Time     `gorm:"column:start_date" json:"start_date"`
	ExpiryDate       *time.Time     `gorm:"column:expiry_date" json:"expiry_date"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index:idx_vouchers_deleted_at;column:deleted_at" json:"-"`
}

func (Voucher) TableName() string {
	return "vouchers"
}
