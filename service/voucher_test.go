package service

import (
	"PhoneHub/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64p(v int64) *int64 { return &v }

func TestComputeVoucherDiscount_Fixed(t *testing.T) {
	v := &models.Voucher{
		Code:          "GIAM500K",
		DiscountType:  models.VoucherTypeFixed,
		DiscountValue: 500000,
	}

	d, err := ComputeVoucherDiscount(v, 20000000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint64(500000), d)

	// 固定金额超过小计时钳位，订单不能变成负数
	d, err = ComputeVoucherDiscount(v, 300000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint64(300000), d)
}

func TestComputeVoucherDiscount_Percentage(t *testing.T) {
	v := &models.Voucher{
		Code:             "SALE20",
		DiscountType:     models.VoucherTypePercentage,
		DiscountValue:    20,
		MaxDiscountValue: u64p(100000),
	}

	// 20% of 1,000,000 = 200,000，被封顶到 100,000
	d, err := ComputeVoucherDiscount(v, 1000000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint64(100000), d)

	// 不触顶时按比例
	d, err = ComputeVoucherDiscount(v, 400000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint64(80000), d)

	// 无封顶
	v.MaxDiscountValue = nil
	d, err = ComputeVoucherDiscount(v, 1000000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint64(200000), d)
}

func TestComputeVoucherDiscount_Rejections(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		voucher *models.Voucher
		sub     uint64
		wantErr error
	}{
		{
			name: "未到生效时间",
			voucher: &models.Voucher{
				DiscountType:  models.VoucherTypeFixed,
				DiscountValue: 100000,
				StartDate:     tp(now.AddDate(0, 0, 1)),
			},
			sub:     1000000,
			wantErr: ErrVoucherExpired,
		},
		{
			name: "已过期",
			voucher: &models.Voucher{
				DiscountType:  models.VoucherTypeFixed,
				DiscountValue: 100000,
				ExpiryDate:    tp(now.AddDate(0, 0, -1)),
			},
			sub:     1000000,
			wantErr: ErrVoucherExpired,
		},
		{
			name: "失效时刻本身不可用",
			voucher: &models.Voucher{
				DiscountType:  models.VoucherTypeFixed,
				DiscountValue: 100000,
				ExpiryDate:    tp(now),
			},
			sub:     1000000,
			wantErr: ErrVoucherExpired,
		},
		{
			name: "次数用尽",
			voucher: &models.Voucher{
				DiscountType:  models.VoucherTypeFixed,
				DiscountValue: 100000,
				MaxUses:       i64p(100),
				UsedCount:     100,
			},
			sub:     1000000,
			wantErr: ErrVoucherExhausted,
		},
		{
			name: "未达最低消费",
			voucher: &models.Voucher{
				DiscountType:  models.VoucherTypeFixed,
				DiscountValue: 100000,
				MinOrderValue: u64p(2000000),
			},
			sub:     1000000,
			wantErr: ErrMinOrderNotMet,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ComputeVoucherDiscount(tt.voucher, tt.sub, now)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, d)
		})
	}
}

// MaxUses 为空表示不限次数
func TestComputeVoucherDiscount_UnlimitedUses(t *testing.T) {
	v := &models.Voucher{
		DiscountType:  models.VoucherTypeFixed,
		DiscountValue: 50000,
		UsedCount:     999999,
	}
	d, err := ComputeVoucherDiscount(v, 1000000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint64(50000), d)
}
