// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package account

import (
	"github.com/ecodeclub/jobboard/internal/account/internal/repository"
	"github.com/ecodeclub/jobboard/internal/account/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/account/internal/service"
	"github.com/ecodeclub/jobboard/internal/account/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB) (*Module, error) {
	accountDAO := InitAccountDAO(db)
	accountRepository := repository.NewAccountRepository(accountDAO)
	accountService := service.NewAccountService(accountRepository)
	handler := web.NewHandler(accountService)
	module := &Module{
		Hdl: handler,
		Svc: accountService,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitAccountDAO, repository.NewAccountRepository, service.NewAccountService, web.NewHandler, wire.Struct(new(Module), "*"),
)

var once = &sync.Once{}

func InitAccountDAO(db *egorm.Component) dao.AccountDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMAccountDAO(db)
}
