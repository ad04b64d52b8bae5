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

//go:build wireinject

package account

import (
	"sync"

	"github.com/ecodeclub/jobboard/internal/account/internal/repository"
	"github.com/ecodeclub/jobboard/internal/account/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/account/internal/service"
	"github.com/ecodeclub/jobboard/internal/account/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitAccountDAO,
	repository.NewAccountRepository,
	service.NewAccountService,
	web.NewHandler,
	wire.Struct(new(Module), "*"),
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(ModuleSet)
	return new(Module), nil
}

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
