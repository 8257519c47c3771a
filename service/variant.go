package service

import (
	"PhoneHub/config"
	"PhoneHub/dao"
	"PhoneHub/models"
	"PhoneHub/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

type VariantService struct {
	Config     *config.Config
	DB         *gorm.DB
	VariantDAO *dao.Variant
	ProductDAO *dao.Product
}

var _ IVariantService = (*VariantService)(nil)

type IVariantService interface {
	GenerateVariants(productID uint64, colorIDs, storageIDs, ramIDs []uint64) []*models.Variant
	CreateVariants(ctx context.Context, req *types.CreateVariantsRequest) ([]*models.Variant, error)
	ValidateVariant(v *models.Variant) error
	UpdateVariant(ctx context.Context, variantID uint64, req *types.UpdateVariantRequest) (*models.Variant, error)
	AdjustStock(ctx context.Context, variantID uint64, delta int64) (int64, error)
	SetStock(ctx context.Context, variantID uint64, value int64) (int64, error)
}

// GenerateVariants 展开 颜色 × 存储 × 内存 的全组合草稿
// 价格库存置零等待运营补录，这里不落库
func (s *VariantService) GenerateVariants(productID uint64, colorIDs, storageIDs, ramIDs []uint64) []*models.Variant {
	variants := make([]*models.Variant, 0, len(colorIDs)*len(storageIDs)*len(ramIDs))
	for _, colorID := range colorIDs {
		for _, storageID := range storageIDs {
			for _, ramID := range ramIDs {
				variants = append(variants, &models.Variant{
					ProductID: productID,
					ColorID:   colorID,
					StorageID: storageID,
					RamID:     ramID,
				})
			}
		}
	}
	return variants
}

// CreateVariants 生成并落库变体草稿
// 已存在的组合直接跳过，保证 (商品, 颜色, 存储, 内存) 唯一
func (s *VariantService) CreateVariants(ctx context.Context, req *types.CreateVariantsRequest) ([]*models.Variant, error) {
	if _, err := s.ProductDAO.FindProductById(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing, err := s.VariantDAO.FindByProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	seen := make(map[[3]uint64]struct{}, len(existing))
	for _, v := range existing {
		seen[[3]uint64{v.ColorID, v.StorageID, v.RamID}] = struct{}{}
	}

	drafts := s.GenerateVariants(req.ProductID, req.ColorIDs, req.StorageIDs, req.RamIDs)
	fresh := make([]*models.Variant, 0, len(drafts))
	for _, v := range drafts {
		key := [3]uint64{v.ColorID, v.StorageID, v.RamID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		fresh = append(fresh, v)
	}

	if err := s.VariantDAO.BatchCreate(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// ValidateVariant 落库前的变体校验，失败的变体不会产生任何写入
func (s *VariantService) ValidateVariant(v *models.Variant) error {
	if v.OriginalPrice == 0 || v.SalePrice == 0 || v.Stock < 0 {
		return ErrInvalidPrice
	}

	hasStart := v.PromotionStart != nil
	hasEnd := v.PromotionEnd != nil
	if hasStart != hasEnd {
		return ErrInvalidPromotion
	}
	if v.PromotionalPrice != nil && *v.PromotionalPrice >= v.SalePrice {
		return ErrInvalidPromotion
	}
	if hasStart && !v.PromotionStart.Before(*v.PromotionEnd) {
		return ErrInvalidPromotion
	}
	return nil
}

// UpdateVariant 补录价格/库存/促销，整体校验通过后一次性写入
func (s *VariantService) UpdateVariant(ctx context.Context, variantID uint64, req *types.UpdateVariantRequest) (*models.Variant, error) {
	variant, err := s.VariantDAO.FindById(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}

	patched := *variant
	if req.OriginalPrice != nil {
		patched.OriginalPrice = *req.OriginalPrice
	}
	if req.SalePrice != nil {
		patched.SalePrice = *req.SalePrice
	}
	if req.ClearPromotion {
		patched.PromotionalPrice = nil
		patched.PromotionStart = nil
		patched.PromotionEnd = nil
	} else {
		if req.PromotionalPrice != nil {
			patched.PromotionalPrice = req.PromotionalPrice
		}
		if req.PromotionStart != nil {
			patched.PromotionStart = req.PromotionStart
		}
		if req.PromotionEnd != nil {
			patched.PromotionEnd = req.PromotionEnd
		}
	}
	if req.Stock != nil {
		patched.Stock = *req.Stock
	}

	if err := s.ValidateVariant(&patched); err != nil {
		return nil, err
	}

	values := map[string]any{
		"original_price":    patched.OriginalPrice,
		"sale_price":        patched.SalePrice,
		"promotional_price": patched.PromotionalPrice,
		"promotion_start":   patched.PromotionStart,
		"promotion_end":     patched.PromotionEnd,
		"stock":             patched.Stock,
	}
	if err := s.VariantDAO.Updates(ctx, variantID, values); err != nil {
		return nil, err
	}
	return &patched, nil
}

// AdjustStock 原子加减库存，扣到负数的请求被整体拒绝且库存不变
func (s *VariantService) AdjustStock(ctx context.Context, variantID uint64, delta int64) (int64, error) {
	if delta == 0 {
		stock, err := s.VariantDAO.GetStock(ctx, variantID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrVariantNotFound
		}
		return stock, err
	}

	newStock, ok, err := s.VariantDAO.AdjustStock(ctx, s.DB.WithContext(ctx), variantID, delta)
	if err != nil {
		return 0, err
	}
	if !ok {
		// 条件更新没有命中：要么余量不足，要么变体不存在
		if _, err := s.VariantDAO.GetStock(ctx, variantID); errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrVariantNotFound
		}
		return 0, &InsufficientStockError{VariantID: variantID}
	}
	return newStock, nil
}

// SetStock 覆盖写库存，负值钳位到 0
func (s *VariantService) SetStock(ctx context.Context, variantID uint64, value int64) (int64, error) {
	clamped := ClampStock(value)
	if _, err := s.VariantDAO.GetStock(ctx, variantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrVariantNotFound
		}
		return 0, err
	}
	if err := s.VariantDAO.SetStock(ctx, variantID, clamped); err != nil {
		return 0, err
	}
	return clamped, nil
}

// ClampStock 库存下限钳位
func ClampStock(value int64) int64 {
	if value < 0 {
		return 0
	}
	return value
}
