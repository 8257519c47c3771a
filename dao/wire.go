//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProduct,
	NewVariant,
	NewOrder,
	NewVoucher,
	NewCatalog,
)
