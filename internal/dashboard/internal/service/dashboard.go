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
	"math"
	"sort"
	"time"

	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/domain"
	"github.com/ecodeclub/jobboard/internal/recruit"
	"golang.org/x/sync/errgroup"
)

var ErrProfileNotFound = account.ErrProfileNotFound

const (
	recentApplicationLimit = 5
	recentPostingLimit     = 3
	coverLetterPreviewLen  = 100
	deadlineNoticeDays     = 7
)

//go:generate mockgen -source=./dashboard.go -destination=../../mocks/dashboard.mock.go -package=dashboardmocks -typed=true DashboardService
type DashboardService interface {
	// CompanySnapshot 聚合一家企业名下所有职位和投递的统计信息。
	// 企业账号或公司资料不存在时整体失败，没有部分成功
	CompanySnapshot(ctx context.Context, accountID int64) (domain.CompanySnapshot, error)
}

type dashboardService struct {
	accountSvc     account.Service
	postingSvc     recruit.PostingService
	applicationSvc recruit.ApplicationService
}

func NewDashboardService(accountSvc account.Service,
	postingSvc recruit.PostingService,
	applicationSvc recruit.ApplicationService) DashboardService {
	return &dashboardService{
		accountSvc:     accountSvc,
		postingSvc:     postingSvc,
		applicationSvc: applicationSvc,
	}
}

func (s *dashboardService) CompanySnapshot(ctx context.Context, accountID int64) (domain.CompanySnapshot, error) {
	profile, err := s.accountSvc.CompanyProfileByAccountID(ctx, accountID)
	if err != nil {
		return domain.CompanySnapshot{}, err
	}

	var (
		eg       errgroup.Group
		postings []recruit.Posting
		closing  []recruit.Posting
	)
	eg.Go(func() error {
		var err error
		postings, err = s.postingSvc.AllByOwner(ctx, accountID)
		return err
	})
	eg.Go(func() error {
		var err error
		closing, err = s.postingSvc.DeadlineApproachingByOwner(ctx, accountID, deadlineNoticeDays)
		return err
	})
	if err = eg.Wait(); err != nil {
		return domain.CompanySnapshot{}, err
	}

	applications := make([]recruit.Application, 0, 64)
	titles := make(map[int64]string, len(postings))
	for _, p := range postings {
		titles[p.ID] = p.Title
		apps, err := s.applicationSvc.AllByPosting(ctx, p.ID)
		if err != nil {
			return domain.CompanySnapshot{}, err
		}
		applications = append(applications, apps...)
	}

	now := time.Now()
	res := domain.CompanySnapshot{
		CompanyName:            profile.Name,
		TotalPostings:          int64(len(postings)),
		ActivePostings:         s.countActive(postings),
		AverageApplicationRate: s.averageApplicationRate(postings),
		DeadlineApproaching:    int64(len(closing)),
		RecentPostings:         s.recentPostings(postings, now),
		RecentApplications:     s.recentApplications(applications, titles),
	}
	s.fillApplicantStats(&res, applications, now)
	return res, nil
}

func (s *dashboardService) countActive(postings []recruit.Posting) int64 {
	var count int64
	for _, p := range postings {
		if p.Published() {
			count++
		}
	}
	return count
}

// averageApplicationRate 只统计有浏览量的职位，零浏览量的职位不算 0% 而是直接排除
func (s *dashboardService) averageApplicationRate(postings []recruit.Posting) float64 {
	var sum float64
	var count int
	for _, p := range postings {
		if p.ViewCount <= 0 {
			continue
		}
		sum += float64(p.ApplicationCount) / float64(p.ViewCount) * 100
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*100) / 100
}

func (s *dashboardService) fillApplicantStats(res *domain.CompanySnapshot,
	applications []recruit.Application, now time.Time) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)
	res.TotalApplicants = int64(len(applications))
	for _, app := range applications {
		appliedAt := time.UnixMilli(app.AppliedAt)
		if !appliedAt.Before(startOfDay) {
			res.NewApplicantsToday++
		}
		if !appliedAt.Before(weekAgo) {
			res.NewApplicantsThisWeek++
		}
		if app.PendingReview() {
			res.PendingReview++
		}
		if app.Status == recruit.ApplicationStatusInterviewScheduled {
			res.InterviewScheduled++
		}
		if app.Status == recruit.ApplicationStatusHired && s.sameMonth(time.UnixMilli(app.FinalDecisionAt), now) {
			res.HiredThisMonth++
		}
	}
}

func (s *dashboardService) sameMonth(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month()
}

func (s *dashboardService) recentPostings(postings []recruit.Posting, now time.Time) []domain.RecentPosting {
	sorted := make([]recruit.Posting, len(postings))
	copy(sorted, postings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Ctime > sorted[j].Ctime
	})
	if len(sorted) > recentPostingLimit {
		sorted = sorted[:recentPostingLimit]
	}
	res := make([]domain.RecentPosting, 0, len(sorted))
	for _, p := range sorted {
		rp := domain.RecentPosting{
			ID:                  p.ID,
			Title:               p.Title,
			Status:              p.Status.ToUint8(),
			ViewCount:           p.ViewCount,
			ApplicationCount:    p.ApplicationCount,
			Ctime:               p.Ctime,
			DeadlineAt:          p.DeadlineAt,
			DeadlineApproaching: p.DeadlineApproaching(now),
		}
		if days, ok := p.DaysUntilDeadline(now); ok {
			rp.DaysUntilDeadline = days
		}
		res = append(res, rp)
	}
	return res
}

func (s *dashboardService) recentApplications(applications []recruit.Application,
	titles map[int64]string) []domain.RecentApplication {
	sorted := make([]recruit.Application, len(applications))
	copy(sorted, applications)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AppliedAt > sorted[j].AppliedAt
	})
	if len(sorted) > recentApplicationLimit {
		sorted = sorted[:recentApplicationLimit]
	}
	res := make([]domain.RecentApplication, 0, len(sorted))
	for _, app := range sorted {
		res = append(res, domain.RecentApplication{
			ID:                 app.ID,
			PostingID:          app.PostingID,
			PostingTitle:       titles[app.PostingID],
			ApplicantID:        app.ApplicantID,
			Status:             app.Status.ToUint8(),
			CoverLetterPreview: preview(app.CoverLetter),
			AppliedAt:          app.AppliedAt,
		})
	}
	return res
}

// preview 按字符截断求职信，超长时补 ...
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= coverLetterPreviewLen {
		return content
	}
	return string(runes[:coverLetterPreviewLen]) + "..."
}
