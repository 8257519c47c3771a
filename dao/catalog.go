package dao

import (
	"PhoneHub/models"
	"context"

	"gorm.io/gorm"
)

// Catalog 颜色/内存/存储/品牌/分类等字典表的只读访问
type Catalog struct {
	Db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{Db: db}
}

func (d *Catalog) FindColors(ctx context.Context, ids []uint64) ([]*models.Color, error) {
	var colors []*models.Color
	if len(ids) == 0 {
		return colors, nil
	}
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&colors).Error
	return colors, err
}

func (d *Catalog) FindRams(ctx context.Context, ids []uint64) ([]*models.Ram, error) {
	var rams []*models.Ram
	if len(ids) == 0 {
		return rams, nil
	}
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&rams).Error
	return rams, err
}

func (d *Catalog) FindStorages(ctx context.Context, ids []uint64) ([]*models.Storage, error) {
	var storages []*models.Storage
	if len(ids) == 0 {
		return storages, nil
	}
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&storages).Error
	return storages, err
}

func (d *Catalog) FindBrand(ctx context.Context, id uint64) (*models.Brand, error) {
	var brand models.Brand
	if err := d.Db.WithContext(ctx).First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (d *Catalog) FindCategory(ctx context.Context, id uint64) (*models.Category, error) {
	var category models.Category
	if err := d.Db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
