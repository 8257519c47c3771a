package service

import "PhoneHub/models"

// 订单状态流转表：待确认 → 已确认 → 配送中 → 已送达
// 取消只能发生在待确认阶段，两个终态没有任何出边
var orderTransitions = map[string][]string{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusShipping},
	models.OrderStatusShipping:  {models.OrderStatusDelivered},
	models.OrderStatusDelivered: {},
	models.OrderStatusCancelled: {},
}

// CanTransition 判断 from → to 是否为合法流转
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus 判断是否为终态
func IsTerminalStatus(status string) bool {
	targets, ok := orderTransitions[status]
	return ok && len(targets) == 0
}

// IsValidStatus 判断状态值本身是否在状态机内
func IsValidStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}
