// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package recruit

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/job"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/repository"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/service"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
	"sync"
	"time"
)

// Injectors from wire.go:

func InitModule(db *gorm.DB, ec ecache.Cache, accountModule *account.Module) (*Module, error) {
	postingDAO := InitPostingDAO(db)
	postingCache := cache.NewPostingECache(ec)
	postingRepository := repository.NewCachedPostingRepository(postingDAO, postingCache)
	accountService := accountModule.Svc
	postingService := service.NewPostingService(postingRepository, accountService)
	postingHandler := web.NewPostingHandler(postingService)
	applicationDAO := dao.NewGORMApplicationDAO(db)
	applicationRepository := repository.NewApplicationRepository(applicationDAO)
	applicationService := service.NewApplicationService(applicationRepository, postingRepository, accountService)
	applicationHandler := web.NewApplicationHandler(applicationService, postingService)
	closeExpiredPostingsJob := InitCloseExpiredPostingsJob(postingService)
	module := &Module{
		PostingHdl:     postingHandler,
		ApplicationHdl: applicationHandler,
		PostingSvc:     postingService,
		ApplicationSvc: applicationService,
		CloseJob:       closeExpiredPostingsJob,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitPostingDAO, dao.NewGORMApplicationDAO, cache.NewPostingECache, repository.NewCachedPostingRepository, repository.NewApplicationRepository, service.NewPostingService, service.NewApplicationService, web.NewPostingHandler, web.NewApplicationHandler, InitCloseExpiredPostingsJob,
)

func InitCloseExpiredPostingsJob(svc service.PostingService) *job.CloseExpiredPostingsJob {
	return job.NewCloseExpiredPostingsJob(svc, 30*time.Second)
}

var once = &sync.Once{}

func InitPostingDAO(db *egorm.Component) dao.PostingDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMPostingDAO(db)
}
