package service

import (
	"PhoneHub/config"
	"PhoneHub/dao"
	"PhoneHub/models"
	"PhoneHub/pkg/snowflake"
	"PhoneHub/pkg/utils"
	"PhoneHub/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type VoucherService struct {
	Config     *config.Config
	DB         *gorm.DB
	VoucherDAO *dao.Voucher
}

var _ IVoucherService = (*VoucherService)(nil)

type IVoucherService interface {
	CreateVoucher(ctx context.Context, req *types.CreateVoucherRequest) (*models.Voucher, error)
	PreviewDiscount(ctx context.Context, code string, subtotal uint64, now time.Time) (*types.PreviewDiscountResponse, error)
}

// ComputeVoucherDiscount 校验优惠券并计算可抵扣金额，纯函数无副作用
// 使用次数的真正扣减在下单事务里通过条件更新完成
func ComputeVoucherDiscount(v *models.Voucher, subtotal uint64, now time.Time) (uint64, error) {
	if v.StartDate != nil && now.Before(*v.StartDate) {
		return 0, ErrVoucherExpired
	}
	if v.ExpiryDate != nil && !now.Before(*v.ExpiryDate) {
		return 0, ErrVoucherExpired
	}
	if v.MaxUses != nil && v.UsedCount >= *v.MaxUses {
		return 0, ErrVoucherExhausted
	}
	if v.MinOrderValue != nil && subtotal < *v.MinOrderValue {
		return 0, ErrMinOrderNotMet
	}

	var discount uint64
	switch v.DiscountType {
	case models.VoucherTypeFixed:
		discount = v.DiscountValue
	case models.VoucherTypePercentage:
		discount = subtotal * v.DiscountValue / 100
		if v.MaxDiscountValue != nil && discount > *v.MaxDiscountValue {
			discount = *v.MaxDiscountValue
		}
	default:
		return 0, ErrVoucherNotFound
	}

	// 优惠不允许把订单打成负数
	if discount > subtotal {
		discount = subtotal
	}
	return discount, nil
}

// CreateVoucher 后台创建优惠券，未指定 code 时用 hashid 生成
func (s *VoucherService) CreateVoucher(ctx context.Context, req *types.CreateVoucherRequest) (*models.Voucher, error) {
	if req.DiscountType == models.VoucherTypePercentage && req.DiscountValue > 100 {
		return nil, errors.New("百分比折扣不能超过 100")
	}
	if req.StartDate != nil && req.ExpiryDate != nil && !req.StartDate.Before(*req.ExpiryDate) {
		return nil, errors.New("优惠券生效时间必须早于失效时间")
	}

	code := req.Code
	if code == "" {
		code = utils.GenHashID(s.Config.App.AppSecret, int(snowflake.GenID()))
	}
	if s.VoucherDAO.IsCodeExist(ctx, code) {
		return nil, errors.New("优惠码已存在，请更换")
	}

	voucher := &models.Voucher{
		Code:             code,
		DiscountType:     req.DiscountType,
		DiscountValue:    req.DiscountValue,
		MinOrderValue:    req.MinOrderValue,
		MaxUses:          req.MaxUses,
		MaxDiscountValue: req.MaxDiscountValue,
		StartDate:        req.StartDate,
		ExpiryDate:       req.ExpiryDate,
	}
	if err := s.VoucherDAO.Create(ctx, voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// PreviewDiscount 购物车页试算优惠金额，不占用使用次数
func (s *VoucherService) PreviewDiscount(ctx context.Context, code string, subtotal uint64, now time.Time) (*types.PreviewDiscountResponse, error) {
	voucher, err := s.VoucherDAO.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}

	discount, err := ComputeVoucherDiscount(voucher, subtotal, now)
	if err != nil {
		return nil, err
	}
	return &types.PreviewDiscountResponse{
		Code:     voucher.Code,
		Subtotal: subtotal,
		Discount: discount,
		Payable:  subtotal - discount,
	}, nil
}
