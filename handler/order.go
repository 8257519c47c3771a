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

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (h *OrderHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	orders := r.Group("/v1/orders")
	orders.POST("", context.Wrap(h.CreateOrder))
	orders.GET("", authorize, context.Wrap(h.ListOrders))
	orders.PUT("/:id/status", authorize, context.Wrap(h.UpdateStatus)) // 后台状态流转
}

func (h *OrderHandler) CreateOrder(c *gin.Context) error {
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.OrderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *OrderHandler) ListOrders(c *gin.Context) error {
	customerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	cursor, _ := strconv.ParseInt(c.DefaultQuery("cursor", "0"), 10, 64)
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	resp, err := h.OrderService.GetOrderList(c.Request.Context(), uint64(customerID), cursor, pageSize)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "订单ID不合法")
	}

	var req types.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	order, err := h.OrderService.Transition(c.Request.Context(), orderID, req.TargetStatus)
	if err != nil {
		return mapServiceError(err)
	}
	response.Success(c, order)
	return nil
}
