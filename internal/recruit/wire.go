//go:build wireinject

// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recruit

import (
	"sync"
	"time"

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
)

var ModuleSet = wire.NewSet(
	InitPostingDAO,
	dao.NewGORMApplicationDAO,
	cache.NewPostingECache,
	repository.NewCachedPostingRepository,
	repository.NewApplicationRepository,
	service.NewPostingService,
	service.NewApplicationService,
	web.NewPostingHandler,
	web.NewApplicationHandler,
	InitCloseExpiredPostingsJob,
)

func InitModule(db *egorm.Component, ec ecache.Cache, accountModule *account.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*account.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

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
