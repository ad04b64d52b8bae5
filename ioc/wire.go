//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/dashboard"
	"github.com/ecodeclub/jobboard/internal/recruit"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		account.InitModule,
		recruit.InitModule,
		dashboard.InitModule,
		wire.FieldsOf(new(*account.Module), "Hdl"),
		wire.FieldsOf(new(*recruit.Module), "PostingHdl", "ApplicationHdl", "CloseJob"),
		wire.FieldsOf(new(*dashboard.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initCronJobs)
	return new(App), nil
}
