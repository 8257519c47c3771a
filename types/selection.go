package types

// Selection 买家当前的规格选择，0 表示未选
type Selection struct {
	ColorID   uint64 `json:"color_id" form:"color_id"`
	RamID     uint64 `json:"ram_id" form:"ram_id"`
	StorageID uint64 `json:"storage_id" form:"storage_id"`
}

// ColorOption 颜色选项，有货的排在前面但无货的依然可见可选
type ColorOption struct {
	ColorID uint64 `json:"color_id"`
	Name    string `json:"name"`
	Hex     string `json:"hex"`
	InStock bool   `json:"in_stock"`
}

// RamOption 内存选项
type RamOption struct {
	RamID    uint64 `json:"ram_id"`
	Capacity string `json:"capacity"`
}

// StorageOption 存储选项
type StorageOption struct {
	StorageID uint64 `json:"storage_id"`
	Capacity  string `json:"capacity"`
}

// ProductOptionsResponse 规格选择页数据：可选项 + 建议默认选择
type ProductOptionsResponse struct {
	Colors   []*ColorOption   `json:"colors"`
	Rams     []*RamOption     `json:"rams"`
	Storages []*StorageOption `json:"storages"`
	Default  Selection        `json:"default"`
}
