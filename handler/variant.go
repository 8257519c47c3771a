package handler

import (
	"PhoneHub/config"
	"PhoneHub/middleware"
	"PhoneHub/pkg/context"
	"PhoneHub/pkg/response"
	"PhoneHub/service"
	"PhoneHub/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type VariantHandler struct {
	Config           *config.Config
	VariantService   service.IVariantService
	InventoryService service.IInventoryService
}

func (h *VariantHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	variants := r.Group("/v1/variants")
	variants.Use(authorize)
	variants.POST("/generate", context.Wrap(h.CreateVariants))   // 按规格生成变体草稿
	variants.PUT("/:id", context.Wrap(h.UpdateVariant))          // 补录价格库存促销
	variants.POST("/bulk-stock", context.Wrap(h.BulkStock))      // 批量库存纠偏
	variants.POST("/:id/stock", context.Wrap(h.AdjustStock))     // 单变体库存加减
}

func (h *VariantHandler) CreateVariants(c *gin.Context) error {
	var req types.CreateVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	variants, err := h.VariantService.CreateVariants(c.Request.Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	response.Success(c, variants)
	return nil
}

func (h *VariantHandler) UpdateVariant(c *gin.Context) error {
	variantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "变体ID不合法")
	}

	var req types.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	variant, err := h.VariantService.UpdateVariant(c.Request.Context(), variantID, &req)
	if err != nil {
		return mapServiceError(err)
	}
	response.Success(c, variant)
	return nil
}

type adjustStockRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

func (h *VariantHandler) AdjustStock(c *gin.Context) error {
	variantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "变体ID不合法")
	}

	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	newStock, err := h.VariantService.AdjustStock(c.Request.Context(), variantID, req.Delta)
	if err != nil {
		return mapServiceError(err)
	}
	response.Success(c, gin.H{"variant_id": variantID, "new_stock": newStock})
	return nil
}

func (h *VariantHandler) BulkStock(c *gin.Context) error {
	var req types.BulkStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	results, err := h.InventoryService.BulkAdjust(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, results)
	return nil
}

// mapServiceError 把服务层的类型化错误翻译成带业务码的响应
func mapServiceError(err error) error {
	var insufficient *service.InsufficientStockError
	if errors.As(err, &insufficient) {
		return response.NewError(http.StatusConflict, insufficient.Error())
	}
	var invalid *service.InvalidTransitionError
	if errors.As(err, &invalid) {
		return response.NewError(http.StatusConflict, invalid.Error())
	}

	switch {
	case errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidPromotion):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrVoucherExpired),
		errors.Is(err, service.ErrVoucherExhausted),
		errors.Is(err, service.ErrMinOrderNotMet):
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrVariantNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrVoucherNotFound),
		errors.Is(err, service.ErrProductNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	}
	return response.NewError(http.StatusInternalServerError, err.Error())
}
