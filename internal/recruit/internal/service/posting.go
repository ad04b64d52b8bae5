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
	"errors"
	"math"
	"time"

	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/domain"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/repository"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPostingNotFound       = repository.ErrPostingNotFound
	ErrOwnerNotFound         = errors.New("账号不存在")
	ErrNotCompanyAccount     = errors.New("不是企业账号，不能发布职位")
	ErrInvalidDeadlineWindow = errors.New("截止日期窗口天数必须在 1 到 30 之间")
)

//go:generate mockgen -source=./posting.go -destination=../../mocks/posting.mock.go -package=recruitmocks -typed=true PostingService
type PostingService interface {
	// Create 以草稿状态创建职位，owner 必须是已存在的企业账号
	Create(ctx context.Context, posting domain.Posting) (domain.Posting, error)
	// Publish 发布职位并设置截止日期。重复发布不报错，只会刷新发布时间和截止日期
	Publish(ctx context.Context, id int64, deadline time.Time) (domain.Posting, error)
	Close(ctx context.Context, id int64) (domain.Posting, error)
	// Reopen 重新开放已关闭的职位。职位不处于关闭状态时静默忽略
	Reopen(ctx context.Context, id int64, deadline time.Time) (domain.Posting, error)
	UpdateBasicInfo(ctx context.Context, id int64, info domain.PostingBasicInfo) (domain.Posting, error)
	UpdateSalaryInfo(ctx context.Context, id int64, info domain.PostingSalaryInfo) (domain.Posting, error)
	UpdateContent(ctx context.Context, id int64, content domain.PostingContent) (domain.Posting, error)
	UpdateWorkingConditions(ctx context.Context, id int64, cond domain.PostingWorkingConditions) (domain.Posting, error)
	UpdateContactInfo(ctx context.Context, id int64, info domain.PostingContactInfo) (domain.Posting, error)
	Detail(ctx context.Context, id int64) (domain.Posting, error)
	// PublicDetail 求职者查看详情，会累加浏览量
	PublicDetail(ctx context.Context, id int64) (domain.Posting, error)
	// Delete 级联删除职位和它名下的所有投递
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query domain.PostingQuery, offset, limit int) ([]domain.Posting, int64, error)
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Posting, int64, error)
	AllByOwner(ctx context.Context, ownerID int64) ([]domain.Posting, error)
	// DeadlineApproaching 返回截止日期落在 [今天, 今天+days] 内的发布中职位，days 取值 [1, 30]
	DeadlineApproaching(ctx context.Context, days int) ([]domain.Posting, error)
	DeadlineApproachingByOwner(ctx context.Context, ownerID int64, days int) ([]domain.Posting, error)
	Stats(ctx context.Context, id int64) (domain.PostingStats, error)
	// CloseExpired 关闭所有已过截止日期的发布中职位，返回关闭数量
	CloseExpired(ctx context.Context) (int64, error)
}

type postingService struct {
	repo       repository.PostingRepository
	accountSvc account.Service
}

func NewPostingService(repo repository.PostingRepository, accountSvc account.Service) PostingService {
	return &postingService{
		repo:       repo,
		accountSvc: accountSvc,
	}
}

func (s *postingService) Create(ctx context.Context, posting domain.Posting) (domain.Posting, error) {
	isCompany, err := s.accountSvc.IsCompanyAccount(ctx, posting.OwnerID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return domain.Posting{}, ErrOwnerNotFound
		}
		return domain.Posting{}, err
	}
	if !isCompany {
		return domain.Posting{}, ErrNotCompanyAccount
	}
	posting.SN = shortuuid.New()
	posting.Status = domain.PostingStatusDraft
	posting.PublishedAt = 0
	posting.DeadlineAt = 0
	posting.ViewCount = 0
	posting.ApplicationCount = 0
	id, err := s.repo.Create(ctx, posting)
	if err != nil {
		return domain.Posting{}, err
	}
	posting.ID = id
	return posting, nil
}

func (s *postingService) Publish(ctx context.Context, id int64, deadline time.Time) (domain.Posting, error) {
	posting, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Posting{}, err
	}
	posting.Publish(deadline, time.Now())
	return posting, s.repo.Update(ctx, posting)
}

func (s *postingService) Close(ctx context.Context, id int64) (domain.Posting, error) {
	posting, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Posting{}, err
	}
	posting.Close()
	return posting, s.repo.Update(ctx, posting)
}

func (s *postingService) Reopen(ctx context.Context, id int64, deadline time.Time) (domain.Posting, error) {
	posting, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Posting{}, err
	}
	if !posting.Reopen(deadline, time.Now()) {
		return posting, nil
	}
	return posting, s.repo.Update(ctx, posting)
}

func (s *postingService) UpdateBasicInfo(ctx context.Context, id int64, info domain.PostingBasicInfo) (domain.Posting, error) {
	return s.update(ctx, id, func(p *domain.Posting) {
		p.UpdateBasicInfo(info)
	})
}

func (s *postingService) UpdateSalaryInfo(ctx context.Context, id int64, info domain.PostingSalaryInfo) (domain.Posting, error) {
	return s.update(ctx, id, func(p *domain.Posting) {
		p.UpdateSalaryInfo(info)
	})
}

func (s *postingService) UpdateContent(ctx context.Context, id int64, content domain.PostingContent) (domain.Posting, error) {
	return s.update(ctx, id, func(p *domain.Posting) {
		p.UpdateContent(content)
	})
}

func (s *postingService) UpdateWorkingConditions(ctx context.Context, id int64, cond domain.PostingWorkingConditions) (domain.Posting, error) {
	return s.update(ctx, id, func(p *domain.Posting) {
		p.UpdateWorkingConditions(cond)
	})
}

func (s *postingService) UpdateContactInfo(ctx context.Context, id int64, info domain.PostingContactInfo) (domain.Posting, error) {
	return s.update(ctx, id, func(p *domain.Posting) {
		p.UpdateContactInfo(info)
	})
}

func (s *postingService) update(ctx context.Context, id int64, fn func(p *domain.Posting)) (domain.Posting, error) {
	posting, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Posting{}, err
	}
	fn(&posting)
	return posting, s.repo.Update(ctx, posting)
}

func (s *postingService) Detail(ctx context.Context, id int64) (domain.Posting, error) {
	return s.repo.FindById(ctx, id)
}

func (s *postingService) PublicDetail(ctx context.Context, id int64) (domain.Posting, error) {
	if err := s.repo.IncrViewCnt(ctx, id); err != nil {
		return domain.Posting{}, err
	}
	return s.repo.Detail(ctx, id)
}

func (s *postingService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *postingService) Search(ctx context.Context, query domain.PostingQuery, offset, limit int) ([]domain.Posting, int64, error) {
	var (
		eg       errgroup.Group
		postings []domain.Posting
		total    int64
	)
	eg.Go(func() error {
		var err error
		postings, err = s.repo.Search(ctx, query, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.SearchCount(ctx, query)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return postings, total, nil
}

func (s *postingService) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Posting, int64, error) {
	var (
		eg       errgroup.Group
		postings []domain.Posting
		total    int64
	)
	eg.Go(func() error {
		var err error
		postings, err = s.repo.ListByOwner(ctx, ownerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByOwner(ctx, ownerID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return postings, total, nil
}

func (s *postingService) AllByOwner(ctx context.Context, ownerID int64) ([]domain.Posting, error) {
	return s.repo.AllByOwner(ctx, ownerID)
}

func (s *postingService) DeadlineApproaching(ctx context.Context, days int) ([]domain.Posting, error) {
	start, end, err := deadlineWindow(days, time.Now())
	if err != nil {
		return nil, err
	}
	return s.repo.DeadlineBetween(ctx, start, end)
}

func (s *postingService) DeadlineApproachingByOwner(ctx context.Context, ownerID int64, days int) ([]domain.Posting, error) {
	start, end, err := deadlineWindow(days, time.Now())
	if err != nil {
		return nil, err
	}
	return s.repo.DeadlineBetweenByOwner(ctx, ownerID, start, end)
}

func (s *postingService) Stats(ctx context.Context, id int64) (domain.PostingStats, error) {
	posting, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.PostingStats{}, err
	}
	res := domain.PostingStats{
		PostingID:        posting.ID,
		Status:           posting.Status,
		ViewCount:        posting.ViewCount,
		ApplicationCount: posting.ApplicationCount,
		DeadlineAt:       posting.DeadlineAt,
		Active:           posting.Published(),
	}
	if posting.ViewCount > 0 {
		rate := float64(posting.ApplicationCount) / float64(posting.ViewCount) * 100
		res.ApplicationRate = math.Round(rate*100) / 100
	}
	if days, ok := posting.DaysUntilDeadline(time.Now()); ok {
		res.DaysUntilDeadline = days
		res.DeadlineApproaching = days >= 0 && days <= 7
		res.Expired = days < 0
	}
	return res, nil
}

func (s *postingService) CloseExpired(ctx context.Context) (int64, error) {
	return s.repo.CloseExpired(ctx, time.Now())
}

// deadlineWindow 把天数换算成 [今天零点, 今天+days 当天末尾] 的闭区间
func deadlineWindow(days int, now time.Time) (time.Time, time.Time, error) {
	if days < 1 || days > 30 {
		return time.Time{}, time.Time{}, ErrInvalidDeadlineWindow
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, days+1).Add(-time.Millisecond)
	return start, end, nil
}
