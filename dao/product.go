package dao

import (
	"PhoneHub/models"
	"context"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

func (p *Product) CreateProduct(ctx context.Context, product *models.Product) error {
	return p.Db.WithContext(ctx).Create(product).Error
}

func (p *Product) FindProductById(ctx context.Context, productID uint64) (*models.Product, error) {
	return p.Repo.FindById(ctx, productID)
}

// IncrementSoldTx 在 tx 上累加商品销量
func (p *Product) IncrementSoldTx(ctx context.Context, tx *gorm.DB, productID uint64, quantity uint32) error {
	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("sold_count", gorm.Expr("sold_count + ?", quantity)).Error
}

// GetProductsByCursor 游标分页拉取商品列表
func (p *Product) GetProductsByCursor(ctx context.Context, limit int, cursor int64) ([]*models.Product, error) {
	var products []*models.Product
	query := p.Db.WithContext(ctx)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id desc").Limit(limit).Find(&products).Error
	return products, err
}

// CreateImage 写入商品图片记录
func (p *Product) CreateImage(ctx context.Context, image *models.ProductImage) error {
	return p.Db.WithContext(ctx).Create(image).Error
}

// FindImages 取商品图片，带颜色标记的排在通用图前面
func (p *Product) FindImages(ctx context.Context, productID uint64) ([]*models.ProductImage, error) {
	var images []*models.ProductImage
	err := p.Db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("color_id is null, id asc").
		Find(&images).Error
	return images, err
}
