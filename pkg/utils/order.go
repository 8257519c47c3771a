package utils

import (
	"PhoneHub/pkg/snowflake"
	"fmt"
	"time"
)

// GenerateOrderSn 生成全局唯一订单号：时间前缀 + 雪花ID 后段 + 客户ID 尾巴
// 时间前缀方便人工检索，雪花段保证并发下不重复
func GenerateOrderSn(customerID uint64) string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("%s%08d%04d", now, snowflake.GenID()%100000000, customerID%10000)
}
