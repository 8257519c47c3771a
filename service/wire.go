package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(VariantService), "*"),
	wire.Bind(new(IVariantService), new(*VariantService)),

	wire.Struct(new(SelectionService), "*"),
	wire.Bind(new(ISelectionService), new(*SelectionService)),

	wire.Struct(new(VoucherService), "*"),
	wire.Bind(new(IVoucherService), new(*VoucherService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(InventoryService), "*"),
	wire.Bind(new(IInventoryService), new(*InventoryService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),
)
