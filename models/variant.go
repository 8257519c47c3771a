package models

import (
	"time"

	"gorm.io/gorm"
)

// Variant 可购买的最小单元：商品 × 颜色 × 存储 × 内存
// 同一商品下 (color, storage, ram) 组合唯一，库存是能否下单的唯一依据
type Variant struct {
	ID               uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID        uint64         `gorm:"not null;uniqueIndex:idx_variant_combo;column:product_id" json:"product_id"`
	ColorID          uint64         `gorm:"not null;uniqueIndex:idx_variant_combo;column:color_id" json:"color_id"`
	StorageID        uint64         `gorm:"not null;uniqueIndex:idx_variant_combo;column:storage_id" json:"storage_id"`
	RamID            uint64         `gorm:"not null;uniqueIndex:idx_variant_combo;column:ram_id" json:"ram_id"`
	OriginalPrice    uint64         `gorm:"not null;default:0;column:original_price" json:"original_price"` // 展示原价（单位：VND）
	SalePrice        uint64         `gorm:"not null;default:0;column:sale_price" json:"sale_price"`         // 日常售价（单位：VND）
	PromotionalPrice *uint64        `gorm:"column:promotional_price" json:"promotional_price"`              // 促销价，存在时必须 < 售价
	PromotionStart   *time.Time     `gorm:"column:promotion_start" json:"promotion_start"`                  // 促销开始时间，与结束时间成对出现
	PromotionEnd     *time.Time     `gorm:"column:promotion_end" json:"promotion_end"`                      // 促销结束时间（不含）
	Stock            int64          `gorm:"not null;default:0;column:stock" json:"stock"`                   // 库存数量，任何时刻 >= 0
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index:idx_variants_deleted_at;column:deleted_at" json:"-"` // 被订单明细引用时仅做软删除
}

func (Variant) TableName() string {
	return "variants"
}
