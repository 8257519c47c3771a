package service

import (
	"PhoneHub/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func u64p(v uint64) *uint64 { return &v }

func tp(t time.Time) *time.Time { return &t }

func promoVariant(sale, promo uint64, start, end time.Time) *models.Variant {
	return &models.Variant{
		OriginalPrice:    sale + 1000000,
		SalePrice:        sale,
		PromotionalPrice: u64p(promo),
		PromotionStart:   tp(start),
		PromotionEnd:     tp(end),
		Stock:            10,
	}
}

func TestIsPromotionActive(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	v := promoVariant(20000000, 18000000, start, end)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"窗口开始前", start.Add(-time.Second), false},
		{"正好开始", start, true},
		{"窗口中间", start.AddDate(0, 0, 15), true},
		{"正好结束", end, false}, // 右开区间
		{"窗口结束后", end.Add(time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPromotionActive(v, tt.now))
		})
	}
}

// 促销字段缺一不可，缺任何一个都按无促销处理
func TestIsPromotionActive_IncompleteFields(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	now := start.AddDate(0, 0, 10)

	noPrice := promoVariant(20000000, 18000000, start, end)
	noPrice.PromotionalPrice = nil
	assert.False(t, IsPromotionActive(noPrice, now))

	noStart := promoVariant(20000000, 18000000, start, end)
	noStart.PromotionStart = nil
	assert.False(t, IsPromotionActive(noStart, now))

	noEnd := promoVariant(20000000, 18000000, start, end)
	noEnd.PromotionEnd = nil
	assert.False(t, IsPromotionActive(noEnd, now))
}

func TestEffectivePrice(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	v := promoVariant(20000000, 18000000, start, end)

	assert.Equal(t, uint64(18000000), EffectivePrice(v, start.AddDate(0, 0, 5)))
	assert.Equal(t, uint64(20000000), EffectivePrice(v, end))
	assert.Equal(t, uint64(20000000), EffectivePrice(v, start.Add(-time.Hour)))
}

func TestDiscountPercent(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	inWindow := start.AddDate(0, 0, 5)

	tests := []struct {
		name  string
		sale  uint64
		promo uint64
		now   time.Time
		want  int
	}{
		{"整折扣", 20000000, 18000000, inWindow, 10},
		{"四舍五入", 29990000, 24990000, inWindow, 17}, // 16.67% -> 17
		{"窗口外返回 0", 20000000, 18000000, end, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := promoVariant(tt.sale, tt.promo, start, end)
			assert.Equal(t, tt.want, DiscountPercent(v, tt.now))
		})
	}
}
