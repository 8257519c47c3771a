package service

import (
	"PhoneHub/dao"
	"PhoneHub/models"
	"PhoneHub/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SelectionService struct {
	VariantDAO *dao.Variant
	CatalogDAO *dao.Catalog
}

var _ ISelectionService = (*SelectionService)(nil)

type ISelectionService interface {
	ProductOptions(ctx context.Context, productID uint64, sel types.Selection) (*types.ProductOptionsResponse, error)
	FindVariant(ctx context.Context, productID uint64, sel types.Selection) (*models.Variant, error)
}

// ProductOptions 规格选择页：可选颜色/内存/存储 + 建议默认选择
// 每次请求重新读取变体集合做无状态推导，库存变化立即可见
func (s *SelectionService) ProductOptions(ctx context.Context, productID uint64, sel types.Selection) (*types.ProductOptionsResponse, error) {
	variants, err := s.VariantDAO.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	resolved := resolveDefault(variants, sel)

	colorIDs, inStock := availableColors(variants)
	ramIDs := availableRams(variants, resolved.ColorID)
	storageIDs := availableStorages(variants, resolved.ColorID, resolved.RamID)

	resp := &types.ProductOptionsResponse{
		Colors:   make([]*types.ColorOption, 0, len(colorIDs)),
		Rams:     make([]*types.RamOption, 0, len(ramIDs)),
		Storages: make([]*types.StorageOption, 0, len(storageIDs)),
		Default:  resolved,
	}

	colors, err := s.CatalogDAO.FindColors(ctx, colorIDs)
	if err != nil {
		return nil, err
	}
	colorByID := make(map[uint64]*models.Color, len(colors))
	for _, c := range colors {
		colorByID[c.ID] = c
	}
	for _, id := range colorIDs {
		opt := &types.ColorOption{ColorID: id, InStock: inStock[id]}
		if c, ok := colorByID[id]; ok {
			opt.Name = c.Name
			opt.Hex = c.Hex
		}
		resp.Colors = append(resp.Colors, opt)
	}

	rams, err := s.CatalogDAO.FindRams(ctx, ramIDs)
	if err != nil {
		return nil, err
	}
	ramByID := make(map[uint64]*models.Ram, len(rams))
	for _, r := range rams {
		ramByID[r.ID] = r
	}
	for _, id := range ramIDs {
		opt := &types.RamOption{RamID: id}
		if r, ok := ramByID[id]; ok {
			opt.Capacity = r.Capacity
		}
		resp.Rams = append(resp.Rams, opt)
	}

	storages, err := s.CatalogDAO.FindStorages(ctx, storageIDs)
	if err != nil {
		return nil, err
	}
	storageByID := make(map[uint64]*models.Storage, len(storages))
	for _, st := range storages {
		storageByID[st.ID] = st
	}
	for _, id := range storageIDs {
		opt := &types.StorageOption{StorageID: id}
		if st, ok := storageByID[id]; ok {
			opt.Capacity = st.Capacity
		}
		resp.Storages = append(resp.Storages, opt)
	}

	return resp, nil
}

// FindVariant 按完整规格精确查找，找不到由前端回落到默认选择
func (s *SelectionService) FindVariant(ctx context.Context, productID uint64, sel types.Selection) (*models.Variant, error) {
	if sel.ColorID == 0 || sel.RamID == 0 || sel.StorageID == 0 {
		return nil, ErrVariantNotFound
	}
	v, err := s.VariantDAO.FindByCombo(ctx, productID, sel.ColorID, sel.RamID, sel.StorageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}
	return v, nil
}

// availableColors 商品出现过的全部颜色
// 有货的颜色排在前面，无货的依然返回（可见可选但不可购买）
func availableColors(variants []*models.Variant) ([]uint64, map[uint64]bool) {
	order := make([]uint64, 0)
	inStock := make(map[uint64]bool)
	seen := make(map[uint64]struct{})

	for _, v := range variants {
		if _, ok := seen[v.ColorID]; !ok {
			seen[v.ColorID] = struct{}{}
			order = append(order, v.ColorID)
		}
		if v.Stock > 0 {
			inStock[v.ColorID] = true
		}
	}

	ranked := make([]uint64, 0, len(order))
	for _, id := range order {
		if inStock[id] {
			ranked = append(ranked, id)
		}
	}
	for _, id := range order {
		if !inStock[id] {
			ranked = append(ranked, id)
		}
	}
	return ranked, inStock
}

// availableRams 指定颜色下的内存选项，按出现顺序去重
func availableRams(variants []*models.Variant, colorID uint64) []uint64 {
	order := make([]uint64, 0)
	seen := make(map[uint64]struct{})
	for _, v := range variants {
		if v.ColorID != colorID {
			continue
		}
		if _, ok := seen[v.RamID]; !ok {
			seen[v.RamID] = struct{}{}
			order = append(order, v.RamID)
		}
	}
	return order
}

// availableStorages 指定颜色和内存下的存储选项
func availableStorages(variants []*models.Variant, colorID, ramID uint64) []uint64 {
	order := make([]uint64, 0)
	seen := make(map[uint64]struct{})
	for _, v := range variants {
		if v.ColorID != colorID || v.RamID != ramID {
			continue
		}
		if _, ok := seen[v.StorageID]; !ok {
			seen[v.StorageID] = struct{}{}
			order = append(order, v.StorageID)
		}
	}
	return order
}

// resolveDefault 把不完整或失配的选择修正成一定能命中变体的选择
// 颜色变化先修内存再修存储：优先取有货组合，全部无货就取第一个兼容组合
func resolveDefault(variants []*models.Variant, sel types.Selection) types.Selection {
	if len(variants) == 0 {
		return types.Selection{}
	}

	colors, _ := availableColors(variants)
	color := sel.ColorID
	if !containsID(colors, color) {
		color = colors[0]
	}

	rams := availableRams(variants, color)
	ram := sel.RamID
	if !containsID(rams, ram) {
		ram = pickRam(variants, color, rams)
	}

	storages := availableStorages(variants, color, ram)
	storage := sel.StorageID
	if !containsID(storages, storage) {
		storage = pickStorage(variants, color, ram, storages)
	}

	return types.Selection{ColorID: color, RamID: ram, StorageID: storage}
}

// pickRam 优先返回该颜色下还有货的内存档位
func pickRam(variants []*models.Variant, colorID uint64, rams []uint64) uint64 {
	for _, ramID := range rams {
		for _, v := range variants {
			if v.ColorID == colorID && v.RamID == ramID && v.Stock > 0 {
				return ramID
			}
		}
	}
	if len(rams) > 0 {
		return rams[0]
	}
	return 0
}

// pickStorage 优先返回该颜色+内存下还有货的存储档位
func pickStorage(variants []*models.Variant, colorID, ramID uint64, storages []uint64) uint64 {
	for _, storageID := range storages {
		for _, v := range variants {
			if v.ColorID == colorID && v.RamID == ramID && v.StorageID == storageID && v.Stock > 0 {
				return storageID
			}
		}
	}
	if len(storages) > 0 {
		return storages[0]
	}
	return 0
}

func containsID(ids []uint64, id uint64) bool {
	if id == 0 {
		return false
	}
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
