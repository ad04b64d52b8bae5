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
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/errs"
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/integration/startup"
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/web"
	"github.com/ecodeclub/jobboard/internal/recruit"
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

	accountSvc     account.Service
	postingSvc     recruit.PostingService
	applicationSvc recruit.ApplicationService

	uid atomic.Int64
}

func (s *HandlerTestSuite) SetupSuite() {
	accountModule, err := startup.InitAccountModule()
	require.NoError(s.T(), err)
	recruitModule, err := startup.InitRecruitModule(accountModule)
	require.NoError(s.T(), err)
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.accountSvc = accountModule.Svc
	s.postingSvc = recruitModule.PostingSvc
	s.applicationSvc = recruitModule.ApplicationSvc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.uid.Load(),
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `job_postings`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `job_applications`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `accounts`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `company_profiles`").Error)
}

func (s *HandlerTestSuite) snapshot() test.Result[web.CompanySnapshotVO] {
	body, err := json.Marshal(struct{}{})
	require.NoError(s.T(), err)
	req, err := http.NewRequest(http.MethodPost, "/dashboard/company", bytes.NewReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CompanySnapshotVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestCompanySnapshot() {
	t := s.T()
	ctx := context.Background()

	companyUID, err := s.accountSvc.Register(ctx, account.Account{
		Email:    "hr@daming.com",
		Password: "hello#world123",
		Type:     account.AccountTypeCompany,
	})
	require.NoError(t, err)

	// 还没有公司资料
	s.uid.Store(companyUID)
	res := s.snapshot()
	assert.Equal(t, errs.ProfileNotFound.Code, res.Code)

	_, err = s.accountSvc.SaveCompanyProfile(ctx, account.CompanyProfile{
		AccountID: companyUID,
		Name:      "大明科技",
	})
	require.NoError(t, err)

	applicantUID, err := s.accountSvc.Register(ctx, account.Account{
		Email:    "tom@daming.com",
		Password: "hello#world123",
	})
	require.NoError(t, err)

	// 两个发布中的职位，一个草稿
	active, err := s.postingSvc.Create(ctx, recruit.Posting{OwnerID: companyUID, Title: "Go 后端工程师"})
	require.NoError(t, err)
	_, err = s.postingSvc.Publish(ctx, active.ID, time.Now().AddDate(0, 0, 3))
	require.NoError(t, err)
	far, err := s.postingSvc.Create(ctx, recruit.Posting{OwnerID: companyUID, Title: "前端工程师"})
	require.NoError(t, err)
	_, err = s.postingSvc.Publish(ctx, far.ID, time.Now().AddDate(0, 0, 20))
	require.NoError(t, err)
	_, err = s.postingSvc.Create(ctx, recruit.Posting{OwnerID: companyUID, Title: "测试工程师"})
	require.NoError(t, err)

	// 浏览一次再投递一次，转化率 100%
	_, err = s.postingSvc.PublicDetail(ctx, active.ID)
	require.NoError(t, err)
	app, err := s.applicationSvc.Apply(ctx, recruit.Application{
		PostingID:   active.ID,
		ApplicantID: applicantUID,
		CoverLetter: "我有五年 Go 开发经验",
	})
	require.NoError(t, err)

	res = s.snapshot()
	require.Zero(t, res.Code)
	vo := res.Data
	assert.Equal(t, "大明科技", vo.CompanyName)
	assert.Equal(t, int64(3), vo.TotalPostings)
	assert.Equal(t, int64(2), vo.ActivePostings)
	assert.Equal(t, int64(1), vo.TotalApplicants)
	assert.Equal(t, int64(1), vo.NewApplicantsToday)
	assert.Equal(t, int64(1), vo.NewApplicantsThisWeek)
	assert.Equal(t, int64(1), vo.PendingReview)
	// 零浏览量的职位不参与平均转化率
	assert.Equal(t, float64(100), vo.AverageApplicationRate)
	// 三天后截止的那一个
	assert.Equal(t, int64(1), vo.DeadlineApproaching)
	require.Len(t, vo.RecentPostings, 3)
	require.Len(t, vo.RecentApplications, 1)
	assert.Equal(t, "Go 后端工程师", vo.RecentApplications[0].PostingTitle)

	// 录用之后进入本月录用统计
	_, err = s.applicationSvc.PassDocumentReview(ctx, app.ID)
	require.NoError(t, err)
	_, err = s.applicationSvc.PassInterview(ctx, app.ID)
	require.NoError(t, err)
	_, err = s.applicationSvc.Hire(ctx, app.ID)
	require.NoError(t, err)
	res = s.snapshot()
	require.Zero(t, res.Code)
	assert.Equal(t, int64(1), res.Data.HiredThisMonth)
	assert.Zero(t, res.Data.PendingReview)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
