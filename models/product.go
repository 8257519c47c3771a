package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 对应数据库中的 products 表
type Product struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`                                   // ID: 自增主键
	ProductName string         `gorm:"uniqueIndex:idx_product_name;not null;column:product_name" json:"product_name"` // ProductName: 商品名称
	BrandID     uint64         `gorm:"not null;index:idx_brand_id;column:brand_id" json:"brand_id"`                   // BrandID: 所属品牌
	CategoryID  uint64         `gorm:"not null;index:idx_category_id;column:category_id" json:"category_id"`          // CategoryID: 所属分类
	Description string         `gorm:"type:text;column:description" json:"description"`                               // Description: 商品详细描述
	SoldCount   uint64         `gorm:"default:0;not null;column:sold_count" json:"sold_count"`                        // SoldCount: 累计销量，只增不减
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`                            // CreatedAt: 创建时间
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`                            // UpdatedAt: 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index:idx_products_deleted_at;column:deleted_at" json:"-"`                      // DeletedAt: 软删除标记
}

func (Product) TableName() string {
	return "products"
}

// ProductImage 商品图片，可按颜色打标
type ProductImage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID uint64    `gorm:"not null;index:idx_product_id;column:product_id" json:"product_id"`
	ColorID   *uint64   `gorm:"index:idx_color_id;column:color_id" json:"color_id"` // 为空表示通用图
	ObjectKey string    `gorm:"size:128;not null;column:object_key" json:"object_key"`
	URL       string    `gorm:"size:512;not null;column:url" json:"url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
