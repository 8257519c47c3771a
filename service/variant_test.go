package service

import (
	"PhoneHub/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVariants(t *testing.T) {
	s := &VariantService{}

	variants := s.GenerateVariants(1, []uint64{10, 11}, []uint64{20, 21, 22}, []uint64{30})
	assert.Len(t, variants, 6)

	// 组合唯一
	seen := make(map[[3]uint64]struct{})
	for _, v := range variants {
		assert.Equal(t, uint64(1), v.ProductID)
		assert.Zero(t, v.SalePrice)
		assert.Zero(t, v.Stock)
		key := [3]uint64{v.ColorID, v.StorageID, v.RamID}
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate combo: %v", key)
		}
		seen[key] = struct{}{}
	}
}

func TestGenerateVariants_EmptyAxis(t *testing.T) {
	s := &VariantService{}
	assert.Empty(t, s.GenerateVariants(1, nil, []uint64{20}, []uint64{30}))
	assert.Empty(t, s.GenerateVariants(1, []uint64{10}, nil, []uint64{30}))
	assert.Empty(t, s.GenerateVariants(1, []uint64{10}, []uint64{20}, nil))
}

func TestValidateVariant(t *testing.T) {
	s := &VariantService{}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	base := func() *models.Variant {
		return &models.Variant{
			ProductID:     1,
			ColorID:       10,
			StorageID:     20,
			RamID:         30,
			OriginalPrice: 25000000,
			SalePrice:     20000000,
			Stock:         5,
		}
	}

	tests := []struct {
		name    string
		mutate  func(v *models.Variant)
		wantErr error
	}{
		{"合法无促销", func(v *models.Variant) {}, nil},
		{"售价为零", func(v *models.Variant) { v.SalePrice = 0 }, ErrInvalidPrice},
		{"原价为零", func(v *models.Variant) { v.OriginalPrice = 0 }, ErrInvalidPrice},
		{"库存为负", func(v *models.Variant) { v.Stock = -1 }, ErrInvalidPrice},
		{
			"合法促销",
			func(v *models.Variant) {
				v.PromotionalPrice = u64p(18000000)
				v.PromotionStart = tp(start)
				v.PromotionEnd = tp(end)
			},
			nil,
		},
		{
			"只有开始时间",
			func(v *models.Variant) {
				v.PromotionalPrice = u64p(18000000)
				v.PromotionStart = tp(start)
			},
			ErrInvalidPromotion,
		},
		{
			"只有结束时间",
			func(v *models.Variant) {
				v.PromotionalPrice = u64p(18000000)
				v.PromotionEnd = tp(end)
			},
			ErrInvalidPromotion,
		},
		{
			"促销价不低于售价",
			func(v *models.Variant) {
				v.PromotionalPrice = u64p(20000000)
				v.PromotionStart = tp(start)
				v.PromotionEnd = tp(end)
			},
			ErrInvalidPromotion,
		},
		{
			"促销窗口颠倒",
			func(v *models.Variant) {
				v.PromotionalPrice = u64p(18000000)
				v.PromotionStart = tp(end)
				v.PromotionEnd = tp(start)
			},
			ErrInvalidPromotion,
		},
		{
			"促销窗口零长度",
			func(v *models.Variant) {
				v.PromotionalPrice = u64p(18000000)
				v.PromotionStart = tp(start)
				v.PromotionEnd = tp(start)
			},
			ErrInvalidPromotion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := base()
			tt.mutate(v)
			err := s.ValidateVariant(v)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClampStock(t *testing.T) {
	assert.Equal(t, int64(0), ClampStock(-5))
	assert.Equal(t, int64(0), ClampStock(0))
	assert.Equal(t, int64(7), ClampStock(7))
}
