package dao

import (
	"PhoneHub/models"
	"context"

	"gorm.io/gorm"
)

type Variant struct {
	Repo[models.Variant]
}

func NewVariant(db *gorm.DB) *Variant {
	return &Variant{
		Repo: NewRepo[models.Variant](db),
	}
}

// FindByProduct 取某商品的全部在售变体
func (d *Variant) FindByProduct(ctx context.Context, productID uint64) ([]*models.Variant, error) {
	var variants []*models.Variant
	err := d.Db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&variants).Error
	return variants, err
}

// FindByCombo 按 (商品, 颜色, 内存, 存储) 精确查找变体
func (d *Variant) FindByCombo(ctx context.Context, productID, colorID, ramID, storageID uint64) (*models.Variant, error) {
	var v models.Variant
	err := d.Db.WithContext(ctx).
		Where("product_id = ? AND color_id = ? AND ram_id = ? AND storage_id = ?",
			productID, colorID, ramID, storageID).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// BatchCreate 批量插入变体草稿
func (d *Variant) BatchCreate(ctx context.Context, variants []*models.Variant) error {
	if len(variants) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).Create(&variants).Error
}

// AdjustStock 在 tx 上对单个变体原子加减库存
// 用 stock + delta >= 0 的条件更新串行化并发扣减，ok=false 表示余量不足被拒绝
func (d *Variant) AdjustStock(ctx context.Context, tx *gorm.DB, variantID uint64, delta int64) (int64, bool, error) {
	res := tx.Model(&models.Variant{}).
		Where("id = ? AND stock + ? >= 0", variantID, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}

	var v models.Variant
	if err := tx.Select("stock").First(&v, variantID).Error; err != nil {
		return 0, false, err
	}
	return v.Stock, true, nil
}

// SetStock 覆盖写库存，value 由上层钳位到 >= 0
func (d *Variant) SetStock(ctx context.Context, variantID uint64, value int64) error {
	return d.Db.WithContext(ctx).Model(&models.Variant{}).
		Where("id = ?", variantID).
		Update("stock", value).Error
}

// SubtractStockClamped 扣减库存，不足部分直接清零而不是报错（后台批量纠偏用）
func (d *Variant) SubtractStockClamped(ctx context.Context, variantID uint64, amount int64) error {
	return d.Db.WithContext(ctx).Model(&models.Variant{}).
		Where("id = ?", variantID).
		Update("stock", gorm.Expr("GREATEST(stock - ?, 0)", amount)).Error
}

// GetStock 读当前库存
func (d *Variant) GetStock(ctx context.Context, variantID uint64) (int64, error) {
	var v models.Variant
	if err := d.Db.WithContext(ctx).Select("stock").First(&v, variantID).Error; err != nil {
		return 0, err
	}
	return v.Stock, nil
}

// Updates 按字段更新变体
func (d *Variant) Updates(ctx context.Context, variantID uint64, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).Model(&models.Variant{}).
		Where("id = ?", variantID).
		Updates(values).Error
}
