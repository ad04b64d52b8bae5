// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/dashboard"
	"github.com/ecodeclub/jobboard/internal/recruit"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	db := InitDB()
	module, err := account.InitModule(db)
	if err != nil {
		return nil, err
	}
	handler := module.Hdl
	cache := InitCache(cmdable)
	recruitModule, err := recruit.InitModule(db, cache, module)
	if err != nil {
		return nil, err
	}
	postingHandler := recruitModule.PostingHdl
	applicationHandler := recruitModule.ApplicationHdl
	dashboardModule, err := dashboard.InitModule(module, recruitModule)
	if err != nil {
		return nil, err
	}
	webHandler := dashboardModule.Hdl
	component := initGinxServer(provider, handler, postingHandler, applicationHandler, webHandler)
	closeExpiredPostingsJob := recruitModule.CloseJob
	v := initCronJobs(closeExpiredPostingsJob)
	app := &App{
		Web:   component,
		Crons: v,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)
