// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/dashboard"
	"github.com/ecodeclub/jobboard/internal/recruit"
	"github.com/ecodeclub/jobboard/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*dashboard.Module, error) {
	db := testioc.InitDB()
	module, err := account.InitModule(db)
	if err != nil {
		return nil, err
	}
	cache := testioc.InitCache()
	recruitModule, err := recruit.InitModule(db, cache, module)
	if err != nil {
		return nil, err
	}
	dashboardModule, err := dashboard.InitModule(module, recruitModule)
	if err != nil {
		return nil, err
	}
	return dashboardModule, nil
}

func InitAccountModule() (*account.Module, error) {
	db := testioc.InitDB()
	module, err := account.InitModule(db)
	if err != nil {
		return nil, err
	}
	return module, nil
}

func InitRecruitModule(accountModule *account.Module) (*recruit.Module, error) {
	db := testioc.InitDB()
	cache := testioc.InitCache()
	module, err := recruit.InitModule(db, cache, accountModule)
	if err != nil {
		return nil, err
	}
	return module, nil
}
