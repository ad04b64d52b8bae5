// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package dashboard

import (
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/service"
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/web"
	"github.com/ecodeclub/jobboard/internal/recruit"
)

// Injectors from wire.go:

func InitModule(accountModule *account.Module, recruitModule *recruit.Module) (*Module, error) {
	accountService := accountModule.Svc
	postingService := recruitModule.PostingSvc
	applicationService := recruitModule.ApplicationSvc
	dashboardService := service.NewDashboardService(accountService, postingService, applicationService)
	handler := web.NewHandler(dashboardService)
	module := &Module{
		Hdl: handler,
		Svc: dashboardService,
	}
	return module, nil
}
