// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/test/ioc"
)

// Injectors from wire.go:

func InitModule() (*account.Module, error) {
	db := testioc.InitDB()
	module, err := account.InitModule(db)
	if err != nil {
		return nil, err
	}
	return module, nil
}
