package handler

import (
	"PhoneHub/config"
	"PhoneHub/pkg/context"
	"PhoneHub/pkg/log"
	"PhoneHub/pkg/response"
	"PhoneHub/service"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type PayHandler struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (h *PayHandler) RegisterRouter(r gin.IRouter) {
	pay := r.Group("/v1/pay")
	pay.POST("/notify", context.Wrap(h.Notify)) // 支付网关结果回调
}

// Notify 消费网关的最终支付结果
// 只依赖 {order_sn, success} 两个字段，网关自己的协议细节不在这里展开
func (h *PayHandler) Notify(c *gin.Context) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "读取回调报文失败")
	}

	orderSn := gjson.GetBytes(body, "order_sn").String()
	if orderSn == "" {
		return response.NewError(http.StatusBadRequest, "回调缺少 order_sn")
	}
	success := gjson.GetBytes(body, "success").Bool()
	gateway := gjson.GetBytes(body, "gateway").String()

	log.L.Info("pay notify",
		zap.String("order_sn", orderSn),
		zap.Bool("success", success),
		zap.String("gateway", gateway))

	if err := h.OrderService.HandlePaymentResult(c.Request.Context(), orderSn, success, gateway, body); err != nil {
		log.L.Error("处理支付回调业务失败", zap.String("order_sn", orderSn), zap.Error(err))
		return mapServiceError(err)
	}
	response.Success(c, gin.H{"order_sn": orderSn})
	return nil
}
