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
	"github.com/ecodeclub/jobboard/internal/recruit/internal/repository"
	repomocks "github.com/ecodeclub/jobboard/internal/recruit/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPostingService_Create(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.PostingRepository, *accountmocks.MockAccountService)
		posting domain.Posting
		wantErr error
	}{
		{
			name: "企业账号创建成功",
			mock: func(ctrl *gomock.Controller) (repository.PostingRepository, *accountmocks.MockAccountService) {
				accountSvc := accountmocks.NewMockAccountService(ctrl)
				accountSvc.EXPECT().IsCompanyAccount(gomock.Any(), int64(123)).Return(true, nil)
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.Posting) (int64, error) {
						assert.NotEmpty(t, p.SN)
						assert.Equal(t, domain.PostingStatusDraft, p.Status)
						assert.Zero(t, p.PublishedAt)
						assert.Zero(t, p.DeadlineAt)
						assert.Zero(t, p.ViewCount)
						assert.Zero(t, p.ApplicationCount)
						return int64(1), nil
					})
				return repo, accountSvc
			},
			posting: domain.Posting{
				OwnerID: 123,
				Title:   "Go 后端工程师",
				// 创建时带进来的状态和计数都应该被重置
				Status:    domain.PostingStatusPublished,
				ViewCount: 100,
			},
		},
		{
			name: "账号不存在",
			mock: func(ctrl *gomock.Controller) (repository.PostingRepository, *accountmocks.MockAccountService) {
				accountSvc := accountmocks.NewMockAccountService(ctrl)
				accountSvc.EXPECT().IsCompanyAccount(gomock.Any(), int64(124)).
					Return(false, account.ErrAccountNotFound)
				return repomocks.NewMockPostingRepository(ctrl), accountSvc
			},
			posting: domain.Posting{OwnerID: 124, Title: "Go 后端工程师"},
			wantErr: ErrOwnerNotFound,
		},
		{
			name: "求职者账号不能发布职位",
			mock: func(ctrl *gomock.Controller) (repository.PostingRepository, *accountmocks.MockAccountService) {
				accountSvc := accountmocks.NewMockAccountService(ctrl)
				accountSvc.EXPECT().IsCompanyAccount(gomock.Any(), int64(125)).Return(false, nil)
				return repomocks.NewMockPostingRepository(ctrl), accountSvc
			},
			posting: domain.Posting{OwnerID: 125, Title: "Go 后端工程师"},
			wantErr: ErrNotCompanyAccount,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, accountSvc := tc.mock(ctrl)
			svc := NewPostingService(repo, accountSvc)
			created, err := svc.Create(context.Background(), tc.posting)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, int64(1), created.ID)
				assert.Equal(t, domain.PostingStatusDraft, created.Status)
			}
		})
	}
}

func TestPostingService_Publish(t *testing.T) {
	t.Parallel()
	deadline := time.Now().AddDate(0, 0, 30)
	testCases := []struct {
		name   string
		before domain.Posting
	}{
		{
			name:   "发布草稿",
			before: domain.Posting{ID: 1, Status: domain.PostingStatusDraft},
		},
		{
			name: "重复发布只刷新时间戳",
			before: domain.Posting{
				ID:          1,
				Status:      domain.PostingStatusPublished,
				PublishedAt: 123,
				DeadlineAt:  456,
			},
		},
		{
			name:   "已关闭的职位直接发布",
			before: domain.Posting{ID: 1, Status: domain.PostingStatusClosed},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockPostingRepository(ctrl)
			repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(tc.before, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, p domain.Posting) error {
					assert.Equal(t, domain.PostingStatusPublished, p.Status)
					assert.Equal(t, deadline.UnixMilli(), p.DeadlineAt)
					assert.True(t, p.PublishedAt > tc.before.PublishedAt)
					return nil
				})
			svc := NewPostingService(repo, accountmocks.NewMockAccountService(ctrl))
			published, err := svc.Publish(context.Background(), 1, deadline)
			require.NoError(t, err)
			assert.Equal(t, domain.PostingStatusPublished, published.Status)
		})
	}
}

func TestPostingService_Reopen(t *testing.T) {
	t.Parallel()
	deadline := time.Now().AddDate(0, 0, 14)
	testCases := []struct {
		name       string
		before     domain.Posting
		wantUpdate bool
		wantStatus domain.PostingStatus
	}{
		{
			name:       "重新开放已关闭的职位",
			before:     domain.Posting{ID: 2, Status: domain.PostingStatusClosed, ViewCount: 42, ApplicationCount: 7},
			wantUpdate: true,
			wantStatus: domain.PostingStatusPublished,
		},
		{
			name:       "发布中的职位静默忽略",
			before:     domain.Posting{ID: 2, Status: domain.PostingStatusPublished, DeadlineAt: 456},
			wantStatus: domain.PostingStatusPublished,
		},
		{
			name:       "草稿静默忽略",
			before:     domain.Posting{ID: 2, Status: domain.PostingStatusDraft},
			wantStatus: domain.PostingStatusDraft,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockPostingRepository(ctrl)
			repo.EXPECT().FindById(gomock.Any(), int64(2)).Return(tc.before, nil)
			if tc.wantUpdate {
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.Posting) error {
						assert.Equal(t, domain.PostingStatusPublished, p.Status)
						assert.Equal(t, deadline.UnixMilli(), p.DeadlineAt)
						// 浏览量和投递计数要保留
						assert.Equal(t, tc.before.ViewCount, p.ViewCount)
						assert.Equal(t, tc.before.ApplicationCount, p.ApplicationCount)
						return nil
					})
			}
			svc := NewPostingService(repo, accountmocks.NewMockAccountService(ctrl))
			reopened, err := svc.Reopen(context.Background(), 2, deadline)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, reopened.Status)
			if !tc.wantUpdate {
				// 静默忽略时原样返回
				assert.Equal(t, tc.before, reopened)
			}
		})
	}
}

func TestPostingService_PublicDetail(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostingRepository(ctrl)
	repo.EXPECT().IncrViewCnt(gomock.Any(), int64(3)).Return(nil)
	repo.EXPECT().Detail(gomock.Any(), int64(3)).
		Return(domain.Posting{ID: 3, Title: "Go 后端工程师", ViewCount: 101}, nil)
	svc := NewPostingService(repo, accountmocks.NewMockAccountService(ctrl))
	posting, err := svc.PublicDetail(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), posting.ID)
}

func TestPostingService_DeadlineApproaching(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		days    int
		mock    func(ctrl *gomock.Controller) repository.PostingRepository
		wantLen int
		wantErr error
	}{
		{
			name: "7 天窗口",
			days: 7,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().DeadlineBetween(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, start, end time.Time) ([]domain.Posting, error) {
						now := time.Now()
						wantStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
						assert.Equal(t, wantStart, start)
						// 闭区间：今天+7 整天都算在内
						assert.Equal(t, wantStart.AddDate(0, 0, 8).Add(-time.Millisecond), end)
						return []domain.Posting{{ID: 1}, {ID: 2}}, nil
					})
				return repo
			},
			wantLen: 2,
		},
		{
			name: "窗口下界",
			days: 0,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				return repomocks.NewMockPostingRepository(ctrl)
			},
			wantErr: ErrInvalidDeadlineWindow,
		},
		{
			name: "窗口上界",
			days: 40,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				return repomocks.NewMockPostingRepository(ctrl)
			},
			wantErr: ErrInvalidDeadlineWindow,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewPostingService(tc.mock(ctrl), accountmocks.NewMockAccountService(ctrl))
			postings, err := svc.DeadlineApproaching(context.Background(), tc.days)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, postings, tc.wantLen)
		})
	}
}

func TestPostingService_Stats(t *testing.T) {
	t.Parallel()
	now := time.Now()
	testCases := []struct {
		name            string
		posting         domain.Posting
		wantRate        float64
		wantDays        int64
		wantApproaching bool
		wantExpired     bool
		wantActive      bool
	}{
		{
			name: "正常计算",
			posting: domain.Posting{
				ID: 1, Status: domain.PostingStatusPublished,
				ViewCount: 200, ApplicationCount: 37,
				DeadlineAt: now.AddDate(0, 0, 3).UnixMilli(),
			},
			wantRate:        18.5,
			wantDays:        3,
			wantApproaching: true,
			wantActive:      true,
		},
		{
			name: "保留两位小数",
			posting: domain.Posting{
				ID: 1, Status: domain.PostingStatusPublished,
				ViewCount: 3, ApplicationCount: 1,
				DeadlineAt: now.AddDate(0, 0, 20).UnixMilli(),
			},
			wantRate:   33.33,
			wantDays:   20,
			wantActive: true,
		},
		{
			name: "没有浏览量时转化率为零",
			posting: domain.Posting{
				ID: 1, Status: domain.PostingStatusDraft,
				ViewCount: 0, ApplicationCount: 0,
			},
		},
		{
			name: "已过截止日期",
			posting: domain.Posting{
				ID: 1, Status: domain.PostingStatusPublished,
				ViewCount: 10, ApplicationCount: 1,
				DeadlineAt: now.AddDate(0, 0, -2).UnixMilli(),
			},
			wantRate:    10,
			wantDays:    -2,
			wantExpired: true,
			wantActive:  true,
		},
		{
			name: "长期有效的职位没有截止统计",
			posting: domain.Posting{
				ID: 1, Status: domain.PostingStatusClosed,
				ViewCount: 10, ApplicationCount: 2,
			},
			wantRate: 20,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockPostingRepository(ctrl)
			repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(tc.posting, nil)
			svc := NewPostingService(repo, accountmocks.NewMockAccountService(ctrl))
			stats, err := svc.Stats(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tc.posting.Status, stats.Status)
			assert.Equal(t, tc.posting.ViewCount, stats.ViewCount)
			assert.Equal(t, tc.posting.ApplicationCount, stats.ApplicationCount)
			assert.Equal(t, tc.wantRate, stats.ApplicationRate)
			assert.Equal(t, tc.posting.DeadlineAt, stats.DeadlineAt)
			assert.Equal(t, tc.wantDays, stats.DaysUntilDeadline)
			assert.Equal(t, tc.wantApproaching, stats.DeadlineApproaching)
			assert.Equal(t, tc.wantExpired, stats.Expired)
			assert.Equal(t, tc.wantActive, stats.Active)
		})
	}
}
