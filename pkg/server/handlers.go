package server

import (
	"PhoneHub/handler"
)

type Handlers struct {
	Product *handler.ProductHandler
	Variant *handler.VariantHandler
	Order   *handler.OrderHandler
	Voucher *handler.VoucherHandler
	Pay     *handler.PayHandler
}
