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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/account"
	accountmocks "github.com/ecodeclub/jobboard/internal/account/mocks"
	"github.com/ecodeclub/jobboard/internal/recruit"
	recruitmocks "github.com/ecodeclub/jobboard/internal/recruit/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_CompanySnapshot(t *testing.T) {
	t.Parallel()
	t.Run("公司资料不存在整体失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accountSvc := accountmocks.NewMockAccountService(ctrl)
		accountSvc.EXPECT().CompanyProfileByAccountID(gomock.Any(), int64(9)).
			Return(account.CompanyProfile{}, account.ErrProfileNotFound)
		svc := NewDashboardService(accountSvc,
			recruitmocks.NewMockPostingService(ctrl),
			recruitmocks.NewMockApplicationService(ctrl))
		_, err := svc.CompanySnapshot(context.Background(), 9)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("聚合全部统计", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		now := time.Now()
		const ownerID int64 = 8

		accountSvc := accountmocks.NewMockAccountService(ctrl)
		accountSvc.EXPECT().CompanyProfileByAccountID(gomock.Any(), ownerID).
			Return(account.CompanyProfile{ID: 1, AccountID: ownerID, Name: "大明科技"}, nil)

		postings := []recruit.Posting{
			// 有浏览量：2/10 = 20%
			{ID: 1, OwnerID: ownerID, Title: "Go 后端工程师", Status: recruit.PostingStatusPublished,
				ViewCount: 10, ApplicationCount: 2, Ctime: 100},
			// 零浏览量，不参与平均转化率；五天后截止
			{ID: 2, OwnerID: ownerID, Title: "前端工程师", Status: recruit.PostingStatusPublished,
				ViewCount: 0, ApplicationCount: 0, Ctime: 300,
				DeadlineAt: now.AddDate(0, 0, 5).UnixMilli()},
			// 有浏览量：1/4 = 25%
			{ID: 3, OwnerID: ownerID, Title: "测试工程师", Status: recruit.PostingStatusClosed,
				ViewCount: 4, ApplicationCount: 1, Ctime: 200},
			{ID: 4, OwnerID: ownerID, Title: "运维工程师", Status: recruit.PostingStatusDraft, Ctime: 400},
		}
		postingSvc := recruitmocks.NewMockPostingService(ctrl)
		postingSvc.EXPECT().AllByOwner(gomock.Any(), ownerID).Return(postings, nil)
		postingSvc.EXPECT().DeadlineApproachingByOwner(gomock.Any(), ownerID, 7).
			Return([]recruit.Posting{postings[0]}, nil)

		applicationSvc := recruitmocks.NewMockApplicationService(ctrl)
		applicationSvc.EXPECT().AllByPosting(gomock.Any(), int64(1)).Return([]recruit.Application{
			{ID: 11, PostingID: 1, ApplicantID: 101, Status: recruit.ApplicationStatusSubmitted,
				CoverLetter: strings.Repeat("我", 120), AppliedAt: now.UnixMilli()},
			{ID: 12, PostingID: 1, ApplicantID: 102, Status: recruit.ApplicationStatusHired,
				CoverLetter: "简短的自荐信",
				AppliedAt:   now.Add(-3 * 24 * time.Hour).UnixMilli(),
				// 本月录用
				FinalDecisionAt: now.UnixMilli()},
		}, nil)
		applicationSvc.EXPECT().AllByPosting(gomock.Any(), int64(2)).Return(nil, nil)
		applicationSvc.EXPECT().AllByPosting(gomock.Any(), int64(3)).Return([]recruit.Application{
			{ID: 13, PostingID: 3, ApplicantID: 103, Status: recruit.ApplicationStatusInterviewScheduled,
				AppliedAt: now.Add(-10 * 24 * time.Hour).UnixMilli()},
		}, nil)
		applicationSvc.EXPECT().AllByPosting(gomock.Any(), int64(4)).Return(nil, nil)

		svc := NewDashboardService(accountSvc, postingSvc, applicationSvc)
		snapshot, err := svc.CompanySnapshot(context.Background(), ownerID)
		require.NoError(t, err)

		assert.Equal(t, "大明科技", snapshot.CompanyName)
		assert.Equal(t, int64(4), snapshot.TotalPostings)
		assert.Equal(t, int64(2), snapshot.ActivePostings)
		assert.Equal(t, int64(3), snapshot.TotalApplicants)
		assert.Equal(t, int64(1), snapshot.NewApplicantsToday)
		assert.Equal(t, int64(2), snapshot.NewApplicantsThisWeek)
		assert.Equal(t, int64(1), snapshot.PendingReview)
		assert.Equal(t, int64(1), snapshot.InterviewScheduled)
		assert.Equal(t, int64(1), snapshot.HiredThisMonth)
		// (20% + 25%) / 2
		assert.Equal(t, 22.5, snapshot.AverageApplicationRate)
		assert.Equal(t, int64(1), snapshot.DeadlineApproaching)

		require.Len(t, snapshot.RecentPostings, 3)
		// 按创建时间倒序
		assert.Equal(t, int64(4), snapshot.RecentPostings[0].ID)
		assert.Equal(t, int64(2), snapshot.RecentPostings[1].ID)
		assert.Equal(t, int64(3), snapshot.RecentPostings[2].ID)
		// 没有截止日期的职位不算临近
		assert.Zero(t, snapshot.RecentPostings[0].DeadlineAt)
		assert.False(t, snapshot.RecentPostings[0].DeadlineApproaching)
		// 五天后截止的职位算临近
		assert.Equal(t, int64(5), snapshot.RecentPostings[1].DaysUntilDeadline)
		assert.True(t, snapshot.RecentPostings[1].DeadlineApproaching)

		require.Len(t, snapshot.RecentApplications, 3)
		// 按投递时间倒序，并带上职位标题
		assert.Equal(t, int64(11), snapshot.RecentApplications[0].ID)
		assert.Equal(t, "Go 后端工程师", snapshot.RecentApplications[0].PostingTitle)
		// 超过 100 字的自荐信截断加省略号
		assert.Equal(t, strings.Repeat("我", 100)+"...", snapshot.RecentApplications[0].CoverLetterPreview)
		assert.Equal(t, "简短的自荐信", snapshot.RecentApplications[1].CoverLetterPreview)
		assert.Equal(t, "测试工程师", snapshot.RecentApplications[2].PostingTitle)
	})

	t.Run("名下没有职位", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accountSvc := accountmocks.NewMockAccountService(ctrl)
		accountSvc.EXPECT().CompanyProfileByAccountID(gomock.Any(), int64(8)).
			Return(account.CompanyProfile{ID: 1, AccountID: 8, Name: "大明科技"}, nil)
		postingSvc := recruitmocks.NewMockPostingService(ctrl)
		postingSvc.EXPECT().AllByOwner(gomock.Any(), int64(8)).Return(nil, nil)
		postingSvc.EXPECT().DeadlineApproachingByOwner(gomock.Any(), int64(8), 7).Return(nil, nil)
		svc := NewDashboardService(accountSvc, postingSvc,
			recruitmocks.NewMockApplicationService(ctrl))
		snapshot, err := svc.CompanySnapshot(context.Background(), 8)
		require.NoError(t, err)
		assert.Zero(t, snapshot.TotalPostings)
		assert.Zero(t, snapshot.TotalApplicants)
		assert.Zero(t, snapshot.AverageApplicationRate)
		assert.Empty(t, snapshot.RecentPostings)
		assert.Empty(t, snapshot.RecentApplications)
	})
}
