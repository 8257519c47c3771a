package models

// Brand 手机品牌
type Brand struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"size:64;not null;uniqueIndex:idx_brand_name;column:name" json:"name"`
}

func (Brand) TableName() string {
	return "brands"
}

// Category 商品分类
type Category struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"size:64;not null;uniqueIndex:idx_category_name;column:name" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// Color 颜色字典表，一旦被变体引用不可修改
type Color struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"size:64;not null;column:name" json:"name"` // 颜色名称
	Hex  string `gorm:"size:16;default:'';column:hex" json:"hex"` // 展示色值 #RRGGBB
}

func (Color) TableName() string {
	return "colors"
}

// Storage 存储容量字典表
type Storage struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Capacity string `gorm:"size:32;not null;column:capacity" json:"capacity"` // 如 128GB / 1TB
}

func (Storage) TableName() string {
	return "storages"
}

// Ram 运行内存字典表
type Ram struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Capacity string `gorm:"size:32;not null;column:capacity" json:"capacity"` // 如 8GB / 12GB
}

func (Ram) TableName() string {
	return "rams"
}
