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

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/account/internal/errs"
	"github.com/ecodeclub/jobboard/internal/account/internal/integration/startup"
	"github.com/ecodeclub/jobboard/internal/account/internal/web"
	"github.com/ecodeclub/jobboard/internal/test"
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    account.Service
	// uid 当前登录账号，各个用例按需要切换
	uid atomic.Int64
}

func (s *HandlerTestSuite) SetupSuite() {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.svc = m.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.uid.Load(),
		}))
	})
	m.Hdl.PublicRoutes(server.Engine)
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `accounts`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `company_profiles`").Error)
}

func (s *HandlerTestSuite) post(path string, req any, recorder http.ResponseWriter) {
	body, err := json.Marshal(req)
	require.NoError(s.T(), err)
	httpReq, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	s.server.ServeHTTP(recorder, httpReq)
}

func (s *HandlerTestSuite) TestRegisterAndLogin() {
	t := s.T()
	// 注册
	recorder := test.NewJSONResponseRecorder[int64]()
	s.post("/account/register", web.RegisterReq{
		Email:    "hr@daming.com",
		Password: "hello#world123",
		Nickname: "大明 HR",
		Type:     2,
	}, recorder)
	require.Equal(t, 200, recorder.Code)
	uid := recorder.MustScan().Data
	assert.True(t, uid > 0)

	// 重复注册
	recorder = test.NewJSONResponseRecorder[int64]()
	s.post("/account/register", web.RegisterReq{
		Email:    "hr@daming.com",
		Password: "hello#world123",
	}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, errs.DuplicateEmail.Code, recorder.MustScan().Code)

	// 登录成功
	loginRecorder := test.NewJSONResponseRecorder[web.AccountVO]()
	s.post("/account/login", web.LoginReq{
		Email:    "hr@daming.com",
		Password: "hello#world123",
	}, loginRecorder)
	require.Equal(t, 200, loginRecorder.Code)
	vo := loginRecorder.MustScan().Data
	assert.Equal(t, uid, vo.ID)
	assert.Equal(t, uint8(2), vo.Type)

	// 密码错误
	loginRecorder = test.NewJSONResponseRecorder[web.AccountVO]()
	s.post("/account/login", web.LoginReq{
		Email:    "hr@daming.com",
		Password: "wrong-password",
	}, loginRecorder)
	require.Equal(t, 200, loginRecorder.Code)
	assert.Equal(t, errs.InvalidCredentials.Code, loginRecorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestCompanyProfile() {
	t := s.T()
	companyUID, err := s.svc.Register(context.Background(), account.Account{
		Email:    "boss@daming.com",
		Password: "hello#world123",
		Type:     account.AccountTypeCompany,
	})
	require.NoError(t, err)
	generalUID, err := s.svc.Register(context.Background(), account.Account{
		Email:    "tom@daming.com",
		Password: "hello#world123",
		Type:     account.AccountTypeGeneral,
	})
	require.NoError(t, err)

	// 还没有公司资料
	s.uid.Store(companyUID)
	recorder := test.NewJSONResponseRecorder[web.CompanyProfileVO]()
	s.post("/account/company-profile/detail", nil, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, errs.ProfileNotFound.Code, recorder.MustScan().Code)

	// 保存
	saveRecorder := test.NewJSONResponseRecorder[int64]()
	s.post("/account/company-profile/save", web.SaveCompanyProfileReq{
		Name:     "大明科技",
		Industry: "互联网",
	}, saveRecorder)
	require.Equal(t, 200, saveRecorder.Code)
	assert.True(t, saveRecorder.MustScan().Data > 0)

	// 再查
	recorder = test.NewJSONResponseRecorder[web.CompanyProfileVO]()
	s.post("/account/company-profile/detail", nil, recorder)
	require.Equal(t, 200, recorder.Code)
	profile := recorder.MustScan().Data
	assert.Equal(t, "大明科技", profile.Name)

	// 求职者账号不能保存公司资料
	s.uid.Store(generalUID)
	saveRecorder = test.NewJSONResponseRecorder[int64]()
	s.post("/account/company-profile/save", web.SaveCompanyProfileReq{
		Name: "李鬼科技",
	}, saveRecorder)
	require.Equal(t, 200, saveRecorder.Code)
	assert.Equal(t, errs.NotCompanyAccount.Code, saveRecorder.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
