package dao

import (
	"PhoneHub/models"
	"context"

	"gorm.io/gorm"
)

type Voucher struct {
	Repo[models.Voucher]
}

func NewVoucher(db *gorm.DB) *Voucher {
	return &Voucher{
		Repo: NewRepo[models.Voucher](db),
	}
}

// FindByCode 按优惠码查找
func (d *Voucher) FindByCode(ctx context.Context, code string) (*models.Voucher, error) {
	return d.Repo.FindByWhere(ctx, "code = ?", code)
}

// IsCodeExist 判断优惠码是否已存在
func (d *Voucher) IsCodeExist(ctx context.Context, code string) bool {
	exist, _ := d.Repo.IsExist(ctx, "code = ?", code)
	return exist
}

// Redeem 在 tx 上条件自增使用次数，和订单写入同一事务提交
// ok=false 表示使用次数已达上限，自增被拒绝
func (d *Voucher) Redeem(ctx context.Context, tx *gorm.DB, voucherID uint64) (bool, error) {
	res := tx.Model(&models.Voucher{}).
		Where("id = ? AND (max_uses IS NULL OR used_count < max_uses)", voucherID).
		Update("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
