package service

import (
	"PhoneHub/config"
	"PhoneHub/dao"
	"PhoneHub/dao/cache"
	"PhoneHub/models"
	"PhoneHub/pkg/log"
	"PhoneHub/pkg/utils"
	"PhoneHub/types"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderService struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	OrderDAO    *dao.Order
	VariantDAO  *dao.Variant
	VoucherDAO  *dao.Voucher
	ProductDAO  *dao.Product
	ProductRank *cache.ProductRank
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	CreateOrder(ctx context.Context, req *types.CreateOrderRequest) (*types.CreateOrderResponse, error)
	Transition(ctx context.Context, orderID uint64, targetStatus string) (*models.Order, error)
	HandlePaymentResult(ctx context.Context, orderSn string, success bool, gateway string, raw []byte) error
	GetOrderList(ctx context.Context, customerID uint64, cursor int64, pageSize int) (*types.OrderListResponse, error)
}

// CreateOrder 创建订单
// 扣库存、核销优惠券、写订单和明细、累加销量在同一个事务里提交：
// 任何一行库存不足整单回滚，不存在扣了一半的中间状态
func (o *OrderService) CreateOrder(ctx context.Context, req *types.CreateOrderRequest) (*types.CreateOrderResponse, error) {
	now := time.Now()
	orderSn := utils.GenerateOrderSn(req.CustomerID)

	// 优惠券快照在事务外读取，日期和门槛用快照判，次数用事务内条件更新判
	var voucher *models.Voucher
	if req.VoucherCode != "" {
		v, err := o.VoucherDAO.FindByCode(ctx, req.VoucherCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVoucherNotFound
			}
			return nil, err
		}
		voucher = v
	}

	var order models.Order
	productQty := make(map[uint64]uint32)

	err := o.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 逐行锁定成交价并扣减库存
		var subtotal uint64
		details := make([]*models.OrderDetail, 0, len(req.Items))
		for _, item := range req.Items {
			var variant models.Variant
			if err := tx.First(&variant, item.VariantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrVariantNotFound
				}
				return err
			}

			_, ok, err := o.VariantDAO.AdjustStock(ctx, tx, item.VariantID, -int64(item.Quantity))
			if err != nil {
				return err
			}
			if !ok {
				return &InsufficientStockError{VariantID: item.VariantID}
			}

			price := EffectivePrice(&variant, now)
			subtotal += price * uint64(item.Quantity)
			productQty[variant.ProductID] += item.Quantity
			details = append(details, &models.OrderDetail{
				VariantID: item.VariantID,
				Quantity:  item.Quantity,
				Price:     price,
			})
		}

		// 2. 优惠券：金额试算 + 条件核销，和订单同生共死
		var discount uint64
		if voucher != nil {
			d, err := ComputeVoucherDiscount(voucher, subtotal, now)
			if err != nil {
				return err
			}
			ok, err := o.VoucherDAO.Redeem(ctx, tx, voucher.ID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrVoucherExhausted
			}
			discount = d
		}

		// 3. 写订单主表和明细
		order = models.Order{
			OrderSn:       orderSn,
			CustomerID:    req.CustomerID,
			Address:       req.Address,
			PaymentMethod: req.PaymentMethod,
			Status:        models.OrderStatusPending,
			OrderDate:     now,
			TotalAmount:   subtotal - discount,
		}
		if voucher != nil {
			order.VoucherID = &voucher.ID
		}
		if err := o.OrderDAO.CreateTx(ctx, tx, &order); err != nil {
			return err
		}
		for _, d := range details {
			d.OrderID = order.ID
		}
		if err := o.OrderDAO.CreateDetailsTx(ctx, tx, details); err != nil {
			return err
		}

		// 4. 按件数累加商品销量
		for productID, qty := range productQty {
			if err := o.ProductDAO.IncrementSoldTx(ctx, tx, productID, qty); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 热销榜只做展示，更新失败不影响订单
	for productID, qty := range productQty {
		if err := o.ProductRank.Incr(ctx, productID, qty); err != nil {
			log.L.Warn("update product rank failed",
				zap.Uint64("product_id", productID), zap.Error(err))
		}
	}

	return &types.CreateOrderResponse{
		OrderID:     order.ID,
		OrderSn:     order.OrderSn,
		TotalAmount: order.TotalAmount,
	}, nil
}

// Transition 按状态机流转订单状态
// 带前置状态的条件更新兜底并发：两个请求同时流转只会成功一个
func (o *OrderService) Transition(ctx context.Context, orderID uint64, targetStatus string) (*models.Order, error) {
	if !IsValidStatus(targetStatus) {
		return nil, &InvalidTransitionError{From: "", To: targetStatus}
	}

	order, err := o.OrderDAO.FindById(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !CanTransition(order.Status, targetStatus) {
		return nil, &InvalidTransitionError{From: order.Status, To: targetStatus}
	}

	ok, err := o.OrderDAO.UpdateStatusGuarded(ctx, orderID, order.Status, targetStatus)
	if err != nil {
		return nil, err
	}
	if !ok {
		// 并发流转抢先一步，重读后按当前状态报错
		current, err := o.OrderDAO.FindById(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return nil, &InvalidTransitionError{From: current.Status, To: targetStatus}
	}

	order.Status = targetStatus
	return order, nil
}

// HandlePaymentResult 消费支付网关的最终回调
// 成功把待确认单推进到已确认，失败则取消；订单已被人工推进时幂等跳过
func (o *OrderService) HandlePaymentResult(ctx context.Context, orderSn string, success bool, gateway string, raw []byte) error {
	record := &models.PayRecord{
		OrderSn:   orderSn,
		Gateway:   gateway,
		Success:   success,
		NotifyRaw: datatypes.JSON(raw),
	}
	if err := o.OrderDAO.CreatePayRecord(ctx, record); err != nil {
		return err
	}

	order, err := o.OrderDAO.FindBySn(ctx, orderSn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if order.Status != models.OrderStatusPending {
		log.L.Info("payment result on non-pending order, skip",
			zap.String("order_sn", orderSn), zap.String("status", order.Status))
		return nil
	}

	target := models.OrderStatusConfirmed
	if !success {
		target = models.OrderStatusCancelled
	}
	_, err = o.Transition(ctx, order.ID, target)
	var invalid *InvalidTransitionError
	if errors.As(err, &invalid) {
		// 回调和人工操作赛跑输了，当作已处理
		return nil
	}
	return err
}

// GetOrderList 客户订单列表，游标分页，多查一条判断 hasMore
func (o *OrderService) GetOrderList(ctx context.Context, customerID uint64, cursor int64, pageSize int) (*types.OrderListResponse, error) {
	if pageSize <= 0 || pageSize > 20 {
		pageSize = 10
	}

	orders, err := o.OrderDAO.GetOrdersByCursor(ctx, customerID, cursor, pageSize+1)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(orders) > pageSize {
		hasMore = true
		orders = orders[:pageSize]
	}
	if len(orders) == 0 {
		return &types.OrderListResponse{Orders: []*types.Order{}}, nil
	}

	orderIDs := make([]uint64, len(orders))
	resp := make([]*types.Order, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
		resp[i] = &types.Order{
			ID:          order.ID,
			OrderSn:     order.OrderSn,
			Status:      order.Status,
			TotalAmount: order.TotalAmount,
			OrderDate:   order.OrderDate,
		}
	}

	details, err := o.OrderDAO.FindDetails(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	countByOrder := make(map[uint64]int, len(orders))
	for _, d := range details {
		countByOrder[d.OrderID]++
	}
	for _, item := range resp {
		item.ItemCount = countByOrder[item.ID]
	}

	return &types.OrderListResponse{
		Orders:     resp,
		HasMore:    hasMore,
		NextCursor: int64(orders[len(orders)-1].ID),
	}, nil
}
