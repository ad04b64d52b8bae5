// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/recruit"
	"github.com/ecodeclub/jobboard/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*recruit.Module, error) {
	db := testioc.InitDB()
	cache := testioc.InitCache()
	module, err := account.InitModule(db)
	if err != nil {
		return nil, err
	}
	recruitModule, err := recruit.InitModule(db, cache, module)
	if err != nil {
		return nil, err
	}
	return recruitModule, nil
}

func InitAccountModule() (*account.Module, error) {
	db := testioc.InitDB()
	module, err := account.InitModule(db)
	if err != nil {
		return nil, err
	}
	return module, nil
}
