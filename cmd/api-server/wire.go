//go:build wireinject
// +build wireinject

package main

import (
	"PhoneHub/config"
	"PhoneHub/dao"
	"PhoneHub/dao/cache"
	"PhoneHub/handler"
	"PhoneHub/pkg/client"
	"PhoneHub/pkg/database"
	"PhoneHub/pkg/server"
	"PhoneHub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.ProductHandler), "*"),
		wire.Struct(new(handler.VariantHandler), "*"),
		wire.Struct(new(handler.OrderHandler), "*"),
		wire.Struct(new(handler.VoucherHandler), "*"),
		wire.Struct(new(handler.PayHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
