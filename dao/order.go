package dao

import (
	"PhoneHub/models"
	"context"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

// CreateTx 在 tx 上写入订单主表
func (d *Order) CreateTx(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.Create(order).Error
}

// CreateDetailsTx 在 tx 上批量写入订单明细
func (d *Order) CreateDetailsTx(ctx context.Context, tx *gorm.DB, details []*models.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	return tx.Create(&details).Error
}

// FindBySn 按订单号查找
func (d *Order) FindBySn(ctx context.Context, orderSn string) (*models.Order, error) {
	return d.Repo.FindByWhere(ctx, "order_sn = ?", orderSn)
}

// UpdateStatusGuarded 带前置状态条件的状态更新
// 单条 UPDATE 自带原子性，两个并发流转只会有一个命中 from 条件
func (d *Order) UpdateStatusGuarded(ctx context.Context, orderID uint64, from, to string) (bool, error) {
	res := d.Db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetOrdersByCursor 按客户游标分页拉取订单，多查一条用于判断 hasMore
func (d *Order) GetOrdersByCursor(ctx context.Context, customerID uint64, cursor int64, limit int) ([]*models.Order, error) {
	var orders []*models.Order
	query := d.Db.WithContext(ctx).Where("customer_id = ?", customerID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id desc").Limit(limit).Find(&orders).Error
	return orders, err
}

// FindDetails 批量取多个订单的明细
func (d *Order) FindDetails(ctx context.Context, orderIDs []uint64) ([]*models.OrderDetail, error) {
	var details []*models.OrderDetail
	if len(orderIDs) == 0 {
		return details, nil
	}
	err := d.Db.WithContext(ctx).Where("order_id IN ?", orderIDs).Find(&details).Error
	return details, err
}

// CreatePayRecord 写入网关回调流水
func (d *Order) CreatePayRecord(ctx context.Context, record *models.PayRecord) error {
	return d.Db.WithContext(ctx).Create(record).Error
}
