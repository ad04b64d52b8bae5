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

package service

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/account"
	accountmocks "github.com/ecodeclub/jobboard/internal/account/mocks"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/domain"
	repomocks "github.com/ecodeclub/jobboard/internal/recruit/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApplicationService_Apply(t *testing.T) {
	t.Parallel()
	now := time.Now()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (*repomocks.MockApplicationRepository, *repomocks.MockPostingRepository, *accountmocks.MockAccountService)
		app     domain.Application
		wantErr error
	}{
		{
			name: "投递成功",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockApplicationRepository, *repomocks.MockPostingRepository, *accountmocks.MockAccountService) {
				accountSvc := accountmocks.NewMockAccountService(ctrl)
				accountSvc.EXPECT().Profile(gomock.Any(), int64(100)).
					Return(account.Account{ID: 100}, nil)
				postingRepo := repomocks.NewMockPostingRepository(ctrl)
				postingRepo.EXPECT().FindById(gomock.Any(), int64(10)).Return(domain.Posting{
					ID:         10,
					Status:     domain.PostingStatusPublished,
					DeadlineAt: now.AddDate(0, 0, 7).UnixMilli(),
				}, nil)
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().Exist(gomock.Any(), int64(100), int64(10)).Return(false, nil)
				repo.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, app domain.Application) (int64, error) {
						assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
						assert.NotZero(t, app.AppliedAt)
						return int64(1), nil
					})
				return repo, postingRepo, accountSvc
			},
			app: domain.Application{PostingID: 10, ApplicantID: 100, CoverLetter: "你好"},
		},
		{
			name: "求职者账号不存在",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockApplicationRepository, *repomocks.MockPostingRepository, *accountmocks.MockAccountService) {
				accountSvc := accountmocks.NewMockAccountService(ctrl)
				accountSvc.EXPECT().Profile(gomock.Any(), int64(101)).
					Return(account.Account{}, account.ErrAccountNotFound)
				return repomocks.NewMockApplicationRepository(ctrl),
					repomocks.NewMockPostingRepository(ctrl), accountSvc
			},
			app:     domain.Application{PostingID: 10, ApplicantID: 101},
			wantErr: ErrApplicantNotFound,
		},
		{
			name: "职位不存在",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockApplicationRepository, *repomocks.MockPostingRepository, *accountmocks.MockAccountService) {
				accountSvc := accountmocks.NewMockAccountService(ctrl)
				accountSvc.EXPECT().Profile(gomock.Any(), int64(100)).
					Return(account.Account{ID: 100}, nil)
				postingRepo := repomocks.NewMockPostingRepository(ctrl)
				postingRepo.EXPECT().FindById(gomock.Any(), int64(11)).
					Return(domain.Posting{}, ErrPostingNotFound)
				return repomocks.NewMockApplicationRepository(ctrl), postingRepo, accountSvc
			},
			app:     domain.Application{PostingID: 11, ApplicantID: 100},
			wantErr: ErrPostingNotFound,
		},
		{
			name: "未发布的职位不接受投递",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockApplicationRepository, *repomocks.MockPostingRepository, *accountmocks.MockAccountService) {
				accountSvc := accountmocks.NewMockAccountService(ctrl)
				accountSvc.EXPECT().Profile(gomock.Any(), int64(100)).
					Return(account.Account{ID: 100}, nil)
				postingRepo := repomocks.NewMockPostingRepository(ctrl)
				postingRepo.EXPECT().FindById(gomock.Any(), int64(10)).
					Return(domain.Posting{ID: 10, Status: domain.PostingStatusDraft}, nil)
				return repomocks.NewMockApplicationRepository(ctrl), postingRepo, accountSvc
			},
			app:     domain.Application{PostingID: 10, ApplicantID: 100},
			wantErr: ErrPostingNotAcceptable,
		},
		{
			name: "已过截止日期的职位不接受投递",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockApplicationRepository, *repomocks.MockPostingRepository, *accountmocks.MockAccountService) {
				accountSvc := accountmocks.NewMockAccountService(ctrl)
				accountSvc.EXPECT().Profile(gomock.Any(), int64(100)).
					Return(account.Account{ID: 100}, nil)
				postingRepo := repomocks.NewMockPostingRepository(ctrl)
				postingRepo.EXPECT().FindById(gomock.Any(), int64(10)).Return(domain.Posting{
					ID:         10,
					Status:     domain.PostingStatusPublished,
					DeadlineAt: now.AddDate(0, 0, -1).UnixMilli(),
				}, nil)
				return repomocks.NewMockApplicationRepository(ctrl), postingRepo, accountSvc
			},
			app:     domain.Application{PostingID: 10, ApplicantID: 100},
			wantErr: ErrPostingNotAcceptable,
		},
		{
			name: "重复投递",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockApplicationRepository, *repomocks.MockPostingRepository, *accountmocks.MockAccountService) {
				accountSvc := accountmocks.NewMockAccountService(ctrl)
				accountSvc.EXPECT().Profile(gomock.Any(), int64(100)).
					Return(account.Account{ID: 100}, nil)
				postingRepo := repomocks.NewMockPostingRepository(ctrl)
				postingRepo.EXPECT().FindById(gomock.Any(), int64(10)).Return(domain.Posting{
					ID:     10,
					Status: domain.PostingStatusPublished,
				}, nil)
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().Exist(gomock.Any(), int64(100), int64(10)).Return(true, nil)
				return repo, postingRepo, accountSvc
			},
			app:     domain.Application{PostingID: 10, ApplicantID: 100},
			wantErr: ErrDuplicatedApplication,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, postingRepo, accountSvc := tc.mock(ctrl)
			svc := NewApplicationService(repo, postingRepo, accountSvc)
			app, err := svc.Apply(context.Background(), tc.app)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, int64(1), app.ID)
				assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
			}
		})
	}
}

func TestApplicationService_Transitions(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		before     domain.Application
		op         func(svc ApplicationService) (domain.Application, error)
		wantUpdate bool
		wantStatus domain.ApplicationStatus
		check      func(t *testing.T, app domain.Application)
	}{
		{
			name:   "审阅已投递的记录",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusSubmitted},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.Review(context.Background(), 1)
			},
			wantUpdate: true,
			wantStatus: domain.ApplicationStatusReviewed,
			check: func(t *testing.T, app domain.Application) {
				assert.NotZero(t, app.ReviewedAt)
			},
		},
		{
			name:   "审阅已通过初筛的记录静默忽略",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusDocumentPassed},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.Review(context.Background(), 1)
			},
			wantStatus: domain.ApplicationStatusDocumentPassed,
		},
		{
			name:   "跳过审阅直接通过初筛",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusSubmitted},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.PassDocumentReview(context.Background(), 1)
			},
			wantUpdate: true,
			wantStatus: domain.ApplicationStatusDocumentPassed,
		},
		{
			name:   "通过初筛后安排面试",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusDocumentPassed},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.ScheduleInterview(context.Background(), 1, time.Now().AddDate(0, 0, 3))
			},
			wantUpdate: true,
			wantStatus: domain.ApplicationStatusInterviewScheduled,
			check: func(t *testing.T, app domain.Application) {
				assert.NotZero(t, app.InterviewScheduledAt)
			},
		},
		{
			name:   "跳过安排面试直接通过面试",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusDocumentPassed},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.PassInterview(context.Background(), 1)
			},
			wantUpdate: true,
			wantStatus: domain.ApplicationStatusInterviewPassed,
		},
		{
			name:   "面试通过后录用",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusInterviewPassed},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.Hire(context.Background(), 1)
			},
			wantUpdate: true,
			wantStatus: domain.ApplicationStatusHired,
			check: func(t *testing.T, app domain.Application) {
				assert.NotZero(t, app.FinalDecisionAt)
			},
		},
		{
			name:   "未通过面试不能录用",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusInterviewScheduled},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.Hire(context.Background(), 1)
			},
			wantStatus: domain.ApplicationStatusInterviewScheduled,
		},
		{
			name:   "任意进行中的状态都可以拒绝",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusInterviewScheduled},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.Reject(context.Background(), 1, "经验不匹配")
			},
			wantUpdate: true,
			wantStatus: domain.ApplicationStatusRejected,
			check: func(t *testing.T, app domain.Application) {
				assert.Equal(t, "经验不匹配", app.RejectionReason)
				assert.NotZero(t, app.FinalDecisionAt)
			},
		},
		{
			name: "重复拒绝覆盖理由",
			before: domain.Application{
				ID:              1,
				Status:          domain.ApplicationStatusRejected,
				RejectionReason: "经验不匹配",
				FinalDecisionAt: 123,
			},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.Reject(context.Background(), 1, "岗位已招满")
			},
			wantUpdate: true,
			wantStatus: domain.ApplicationStatusRejected,
			check: func(t *testing.T, app domain.Application) {
				assert.Equal(t, "岗位已招满", app.RejectionReason)
				assert.True(t, app.FinalDecisionAt > 123)
			},
		},
		{
			name:   "已录用的不能拒绝",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusHired},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.Reject(context.Background(), 1, "经验不匹配")
			},
			wantStatus: domain.ApplicationStatusHired,
		},
		{
			name:   "求职者撤回投递",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusReviewed},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.Withdraw(context.Background(), 1)
			},
			wantUpdate: true,
			wantStatus: domain.ApplicationStatusWithdrawn,
		},
		{
			name:   "已拒绝的不能撤回",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusRejected},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.Withdraw(context.Background(), 1)
			},
			wantStatus: domain.ApplicationStatusRejected,
		},
		{
			name:   "只有已投递状态能修改内容",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusReviewed, CoverLetter: "旧的"},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.UpdateDetails(context.Background(), 1, "新的", "", nil)
			},
			wantStatus: domain.ApplicationStatusReviewed,
			check: func(t *testing.T, app domain.Application) {
				assert.Equal(t, "旧的", app.CoverLetter)
			},
		},
		{
			name:   "面试官备注不受状态限制",
			before: domain.Application{ID: 1, Status: domain.ApplicationStatusHired},
			op: func(svc ApplicationService) (domain.Application, error) {
				return svc.AddInterviewerNotes(context.Background(), 1, "基础扎实")
			},
			wantUpdate: true,
			wantStatus: domain.ApplicationStatusHired,
			check: func(t *testing.T, app domain.Application) {
				assert.Equal(t, "基础扎实", app.InterviewerNotes)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockApplicationRepository(ctrl)
			repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(tc.before, nil)
			if tc.wantUpdate {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			}
			svc := NewApplicationService(repo,
				repomocks.NewMockPostingRepository(ctrl),
				accountmocks.NewMockAccountService(ctrl))
			app, err := tc.op(svc)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, app.Status)
			if tc.check != nil {
				tc.check(t, app)
			}
		})
	}
}
