package service

import (
	"PhoneHub/models"
	"PhoneHub/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func v(colorID, ramID, storageID uint64, stock int64) *models.Variant {
	return &models.Variant{
		ProductID: 1,
		ColorID:   colorID,
		RamID:     ramID,
		StorageID: storageID,
		SalePrice: 20000000,
		Stock:     stock,
	}
}

// 典型货架：黑色全系有货，白色只有高配有货，蓝色全部无货
func shelf() []*models.Variant {
	return []*models.Variant{
		v(1, 8, 128, 10),
		v(1, 8, 256, 3),
		v(1, 12, 256, 5),
		v(2, 8, 128, 0),
		v(2, 12, 512, 7),
		v(3, 8, 128, 0),
		v(3, 8, 256, 0),
	}
}

func TestAvailableColors(t *testing.T) {
	ids, inStock := availableColors(shelf())

	// 有货的颜色排前面，无货的也要出现
	assert.Equal(t, []uint64{1, 2, 3}, ids)
	assert.True(t, inStock[1])
	assert.True(t, inStock[2])
	assert.False(t, inStock[3])
}

func TestAvailableRams(t *testing.T) {
	variants := shelf()
	assert.Equal(t, []uint64{8, 12}, availableRams(variants, 1))
	assert.Equal(t, []uint64{8, 12}, availableRams(variants, 2))
	assert.Equal(t, []uint64{8}, availableRams(variants, 3))
	assert.Empty(t, availableRams(variants, 99))
}

func TestAvailableStorages(t *testing.T) {
	variants := shelf()
	assert.Equal(t, []uint64{128, 256}, availableStorages(variants, 1, 8))
	assert.Equal(t, []uint64{256}, availableStorages(variants, 1, 12))
	assert.Equal(t, []uint64{512}, availableStorages(variants, 2, 12))
	assert.Empty(t, availableStorages(variants, 2, 99))
}

func TestResolveDefault_Empty(t *testing.T) {
	got := resolveDefault(nil, types.Selection{ColorID: 1, RamID: 8, StorageID: 128})
	assert.Equal(t, types.Selection{}, got)
}

func TestResolveDefault_UnsetSelection(t *testing.T) {
	got := resolveDefault(shelf(), types.Selection{})
	// 第一个有货颜色 + 该颜色下第一个有货内存 + 对应有货存储
	assert.Equal(t, types.Selection{ColorID: 1, RamID: 8, StorageID: 128}, got)
}

func TestResolveDefault_KeepValidSelection(t *testing.T) {
	sel := types.Selection{ColorID: 1, RamID: 12, StorageID: 256}
	assert.Equal(t, sel, resolveDefault(shelf(), sel))
}

// 换颜色后原内存/存储失配，逐级向后修正
func TestResolveDefault_CascadeRepair(t *testing.T) {
	variants := shelf()

	// 白色(2)没有 (8, 256)：内存 8 仍兼容但 256 失配，存储修正为 128
	got := resolveDefault(variants, types.Selection{ColorID: 2, RamID: 8, StorageID: 256})
	assert.Equal(t, types.Selection{ColorID: 2, RamID: 8, StorageID: 128}, got)

	// 颜色不存在：整条选择从头推导
	got = resolveDefault(variants, types.Selection{ColorID: 99, RamID: 12, StorageID: 512})
	assert.Equal(t, uint64(1), got.ColorID)
}

// 全部无货时仍要给出能命中变体的组合
func TestResolveDefault_AllOutOfStock(t *testing.T) {
	variants := []*models.Variant{
		v(3, 8, 128, 0),
		v(3, 8, 256, 0),
	}
	got := resolveDefault(variants, types.Selection{})
	assert.Equal(t, types.Selection{ColorID: 3, RamID: 8, StorageID: 128}, got)
}

// 修正后的默认选择必须命中一个真实存在的变体
func TestResolveDefault_AlwaysHitsVariant(t *testing.T) {
	variants := shelf()
	selections := []types.Selection{
		{},
		{ColorID: 1},
		{ColorID: 2, RamID: 8},
		{ColorID: 3, RamID: 12, StorageID: 512},
		{ColorID: 99, RamID: 99, StorageID: 99},
	}
	for _, sel := range selections {
		got := resolveDefault(variants, sel)
		hit := false
		for _, vv := range variants {
			if vv.ColorID == got.ColorID && vv.RamID == got.RamID && vv.StorageID == got.StorageID {
				hit = true
				break
			}
		}
		assert.True(t, hit, "selection %+v resolved to %+v which hits no variant", sel, got)
	}
}
