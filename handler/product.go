package handler

import (
	"PhoneHub/config"
	"PhoneHub/middleware"
	"PhoneHub/models"
	"PhoneHub/pkg/context"
	"PhoneHub/pkg/response"
	"PhoneHub/service"
	"PhoneHub/types"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	Config           *config.Config
	SelectionService service.ISelectionService
	ProductService   service.IProductService
}

func (h *ProductHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	products := r.Group("/v1/products")
	products.GET("", context.Wrap(h.ListProducts))
	products.GET("/top-selling", context.Wrap(h.TopSelling))  // 热销榜
	products.GET("/:id", context.Wrap(h.Detail))
	products.GET("/:id/options", context.Wrap(h.Options))     // 规格选择页数据
	products.GET("/:id/variant", context.Wrap(h.FindVariant)) // 精确规格查变体
	products.POST("", authorize, context.Wrap(h.CreateProduct))
	products.POST("/:id/images", authorize, context.Wrap(h.AddImage))
}

type createProductRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	BrandID     uint64 `json:"brand_id" binding:"required"`
	CategoryID  uint64 `json:"category_id" binding:"required"`
	Description string `json:"description"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) error {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	product := &models.Product{
		ProductName: req.ProductName,
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	}
	if err := h.ProductService.CreateProduct(c.Request.Context(), product); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, product)
	return nil
}

type addImageRequest struct {
	ColorID *uint64 `json:"color_id"`
	URL     string  `json:"url" binding:"required"`
}

func (h *ProductHandler) AddImage(c *gin.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "商品ID不合法")
	}

	var req addImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	image, err := h.ProductService.AddImage(c.Request.Context(), productID, req.ColorID, req.URL)
	if err != nil {
		return mapServiceError(err)
	}
	response.Success(c, image)
	return nil
}

func (h *ProductHandler) ListProducts(c *gin.Context) error {
	cursor, _ := strconv.ParseInt(c.DefaultQuery("cursor", "0"), 10, 64)
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	products, err := h.ProductService.GetProductList(c.Request.Context(), cursor, pageSize)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, products)
	return nil
}

// Detail 商品详情 + 图册
func (h *ProductHandler) Detail(c *gin.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "商品ID不合法")
	}

	product, err := h.ProductService.GetDetailProduct(c.Request.Context(), productID)
	if err != nil {
		return mapServiceError(err)
	}
	images, err := h.ProductService.GetProductImages(c.Request.Context(), productID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"product": product, "images": images})
	return nil
}

// Options 返回可选规格和建议默认选择
// query 里带上买家已选的 color_id/ram_id/storage_id，失配会被自动修正
func (h *ProductHandler) Options(c *gin.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "商品ID不合法")
	}

	var sel types.Selection
	if err := c.ShouldBindQuery(&sel); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.SelectionService.ProductOptions(c.Request.Context(), productID, sel)
	if err != nil {
		return mapServiceError(err)
	}
	response.Success(c, resp)
	return nil
}

// FindVariant 精确命中返回变体和当前时刻实际售价，未命中返回 404 让前端回落默认选择
func (h *ProductHandler) FindVariant(c *gin.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "商品ID不合法")
	}

	var sel types.Selection
	if err := c.ShouldBindQuery(&sel); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	variant, err := h.SelectionService.FindVariant(c.Request.Context(), productID, sel)
	if err != nil {
		return mapServiceError(err)
	}

	now := time.Now()
	response.Success(c, &types.VariantDetailResponse{
		ID:               variant.ID,
		ProductID:        variant.ProductID,
		ColorID:          variant.ColorID,
		RamID:            variant.RamID,
		StorageID:        variant.StorageID,
		OriginalPrice:    variant.OriginalPrice,
		SalePrice:        variant.SalePrice,
		PromotionalPrice: variant.PromotionalPrice,
		EffectivePrice:   service.EffectivePrice(variant, now),
		DiscountPercent:  service.DiscountPercent(variant, now),
		Stock:            variant.Stock,
	})
	return nil
}

func (h *ProductHandler) TopSelling(c *gin.Context) error {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	products, err := h.ProductService.TopSelling(c.Request.Context(), limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, products)
	return nil
}
