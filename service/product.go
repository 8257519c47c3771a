package service

import (
	"PhoneHub/config"
	"PhoneHub/dao"
	"PhoneHub/dao/cache"
	"PhoneHub/models"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService struct {
	Config      *config.Config
	DB          *gorm.DB
	ProductDAO  *dao.Product
	CatalogDAO  *dao.Catalog
	ProductRank *cache.ProductRank
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetDetailProduct(ctx context.Context, productID uint64) (*models.Product, error)
	GetProductImages(ctx context.Context, productID uint64) ([]*models.ProductImage, error)
	GetProductList(ctx context.Context, cursor int64, pageSize int) ([]*models.Product, error)
	AddImage(ctx context.Context, productID uint64, colorID *uint64, url string) (*models.ProductImage, error)
	TopSelling(ctx context.Context, limit int64) ([]*models.Product, error)
}

func (p *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ProductName == "" {
		return errors.New("商品名称不能为空")
	}
	if _, err := p.CatalogDAO.FindBrand(ctx, product.BrandID); err != nil {
		return errors.New("目标品牌不存在，无法发布商品")
	}
	if _, err := p.CatalogDAO.FindCategory(ctx, product.CategoryID); err != nil {
		return errors.New("目标分类不存在，无法发布商品")
	}

	exist, err := p.ProductDAO.IsExist(ctx, "product_name = ?", product.ProductName)
	if err != nil {
		return errors.New("系统繁忙，请稍后再试")
	}
	if exist {
		return errors.New("已存在同名商品，请更换名称")
	}

	return p.ProductDAO.CreateProduct(ctx, product)
}

func (p *ProductService) GetDetailProduct(ctx context.Context, productID uint64) (*models.Product, error) {
	product, err := p.ProductDAO.FindProductById(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetProductImages 商品图册，带颜色标记的排在通用图前面
func (p *ProductService) GetProductImages(ctx context.Context, productID uint64) ([]*models.ProductImage, error) {
	return p.ProductDAO.FindImages(ctx, productID)
}

// GetProductList 商品列表，游标分页
func (p *ProductService) GetProductList(ctx context.Context, cursor int64, pageSize int) ([]*models.Product, error) {
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 20
	}
	return p.ProductDAO.GetProductsByCursor(ctx, pageSize, cursor)
}

// AddImage 登记商品图片，可按颜色打标用于规格联动展示
func (p *ProductService) AddImage(ctx context.Context, productID uint64, colorID *uint64, url string) (*models.ProductImage, error) {
	if _, err := p.GetDetailProduct(ctx, productID); err != nil {
		return nil, err
	}

	image := &models.ProductImage{
		ProductID: productID,
		ColorID:   colorID,
		ObjectKey: uuid.NewString(),
		URL:       url,
	}
	if err := p.ProductDAO.CreateImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// TopSelling 热销榜：redis 排序出ID，数据库回查详情
// 缓存为空时直接返回空列表，不做兜底扫表
func (p *ProductService) TopSelling(ctx context.Context, limit int64) ([]*models.Product, error) {
	ids, err := p.ProductRank.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*models.Product{}, nil
	}

	products, err := p.ProductDAO.FindAll(ctx, "id IN ?", ids)
	if err != nil {
		return nil, err
	}

	// 回查结果按榜单顺序重排
	byID := make(map[uint64]*models.Product, len(products))
	for _, item := range products {
		byID[item.ID] = item
	}
	sorted := make([]*models.Product, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			sorted = append(sorted, item)
		}
	}
	return sorted, nil
}
