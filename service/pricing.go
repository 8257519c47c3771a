package service

import (
	"PhoneHub/models"
	"math"
	"time"
)

// IsPromotionActive 判断变体在 now 时刻是否处于促销窗口内
// 窗口为左闭右开 [start, end)，now 由调用方显式传入保证可测
func IsPromotionActive(v *models.Variant, now time.Time) bool {
	if v.PromotionalPrice == nil || v.PromotionStart == nil || v.PromotionEnd == nil {
		return false
	}
	return !now.Before(*v.PromotionStart) && now.Before(*v.PromotionEnd)
}

// EffectivePrice 变体在 now 时刻的实际成交单价
// 促销生效时取促销价，否则取日常售价，下单快照用的就是这个值
func EffectivePrice(v *models.Variant, now time.Time) uint64 {
	if IsPromotionActive(v, now) {
		return *v.PromotionalPrice
	}
	return v.SalePrice
}

// DiscountPercent 展示用折扣百分比，未在促销期返回 0
// 仅用于页面角标，实际计费永远走 EffectivePrice
func DiscountPercent(v *models.Variant, now time.Time) int {
	if !IsPromotionActive(v, now) || v.SalePrice == 0 {
		return 0
	}
	return int(math.Round((1 - float64(*v.PromotionalPrice)/float64(v.SalePrice)) * 100))
}
