package handler

import (
	"PhoneHub/config"
	"PhoneHub/middleware"
	"PhoneHub/pkg/context"
	"PhoneHub/pkg/response"
	"PhoneHub/service"
	"PhoneHub/types"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	Config         *config.Config
	VoucherService service.IVoucherService
}

func (h *VoucherHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	vouchers := r.Group("/v1/vouchers")
	vouchers.POST("", authorize, context.Wrap(h.CreateVoucher))
	vouchers.GET("/preview", context.Wrap(h.PreviewDiscount)) // 购物车优惠试算
}

func (h *VoucherHandler) CreateVoucher(c *gin.Context) error {
	var req types.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	voucher, err := h.VoucherService.CreateVoucher(c.Request.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	response.Success(c, voucher)
	return nil
}

func (h *VoucherHandler) PreviewDiscount(c *gin.Context) error {
	code := c.Query("code")
	if code == "" {
		return response.NewError(http.StatusBadRequest, "优惠码不能为空")
	}
	subtotal, err := strconv.ParseUint(c.Query("subtotal"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "订单金额不合法")
	}

	resp, err := h.VoucherService.PreviewDiscount(c.Request.Context(), code, subtotal, time.Now())
	if err != nil {
		return mapServiceError(err)
	}
	response.Success(c, resp)
	return nil
}
