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
	"time"

	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/domain"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/repository"
)

var (
	ErrApplicationNotFound   = repository.ErrApplicationNotFound
	ErrDuplicatedApplication = repository.ErrDuplicatedApplication
	ErrApplicantNotFound     = errors.New("求职者账号不存在")
	// ErrPostingNotAcceptable 职位不接受投递：未发布、已关闭或已过截止日期
	ErrPostingNotAcceptable = errors.New("职位当前不接受投递")
)

//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=recruitmocks -typed=true ApplicationService
type ApplicationService interface {
	// Apply 投递职位。投递成功会在同一事务里增加职位的投递计数。
	// 同一求职者对同一职位只能投递一次，且无论投递后状态如何变化都不能再投
	Apply(ctx context.Context, app domain.Application) (domain.Application, error)
	// 下面的过渡操作只在投递记录不存在时报错。
	// 状态守卫不满足时静默忽略，原样返回当前状态
	Review(ctx context.Context, id int64) (domain.Application, error)
	PassDocumentReview(ctx context.Context, id int64) (domain.Application, error)
	ScheduleInterview(ctx context.Context, id int64, at time.Time) (domain.Application, error)
	PassInterview(ctx context.Context, id int64) (domain.Application, error)
	Hire(ctx context.Context, id int64) (domain.Application, error)
	Reject(ctx context.Context, id int64, reason string) (domain.Application, error)
	Withdraw(ctx context.Context, id int64) (domain.Application, error)
	AddInterviewerNotes(ctx context.Context, id int64, notes string) (domain.Application, error)
	// UpdateDetails 修改投递内容，只在已投递状态下生效
	UpdateDetails(ctx context.Context, id int64, coverLetter, resumeURL string, portfolioURLs []string) (domain.Application, error)
	Detail(ctx context.Context, id int64) (domain.Application, error)
	// Delete 删除投递记录并回减职位的投递计数
	Delete(ctx context.Context, id int64) error
	ListByApplicant(ctx context.Context, applicantID int64, offset, limit int) ([]domain.Application, int64, error)
	ListByPosting(ctx context.Context, postingID int64, offset, limit int) ([]domain.Application, int64, error)
	AllByPosting(ctx context.Context, postingID int64) ([]domain.Application, error)
	CountByPosting(ctx context.Context, postingID int64) (int64, error)
}

type applicationService struct {
	repo        repository.ApplicationRepository
	postingRepo repository.PostingRepository
	accountSvc  account.Service
}

func NewApplicationService(repo repository.ApplicationRepository,
	postingRepo repository.PostingRepository,
	accountSvc account.Service) ApplicationService {
	return &applicationService{
		repo:        repo,
		postingRepo: postingRepo,
		accountSvc:  accountSvc,
	}
}

func (s *applicationService) Apply(ctx context.Context, app domain.Application) (domain.Application, error) {
	_, err := s.accountSvc.Profile(ctx, app.ApplicantID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return domain.Application{}, ErrApplicantNotFound
		}
		return domain.Application{}, err
	}
	posting, err := s.postingRepo.FindById(ctx, app.PostingID)
	if err != nil {
		return domain.Application{}, err
	}
	now := time.Now()
	if !posting.CanApply(now) {
		return domain.Application{}, ErrPostingNotAcceptable
	}
	app.Status = domain.ApplicationStatusSubmitted
	app.AppliedAt = now.UnixMilli()
	// 唯一索引兜底重复投递，Exist 预检只是为了少打一次事务
	exist, err := s.repo.Exist(ctx, app.ApplicantID, app.PostingID)
	if err != nil {
		return domain.Application{}, err
	}
	if exist {
		return domain.Application{}, ErrDuplicatedApplication
	}
	id, err := s.repo.Submit(ctx, app)
	if err != nil {
		return domain.Application{}, err
	}
	app.ID = id
	return app, nil
}

func (s *applicationService) Review(ctx context.Context, id int64) (domain.Application, error) {
	return s.transition(ctx, id, func(a *domain.Application) bool {
		return a.Review(time.Now())
	})
}

func (s *applicationService) PassDocumentReview(ctx context.Context, id int64) (domain.Application, error) {
	return s.transition(ctx, id, func(a *domain.Application) bool {
		return a.PassDocumentReview()
	})
}

func (s *applicationService) ScheduleInterview(ctx context.Context, id int64, at time.Time) (domain.Application, error) {
	return s.transition(ctx, id, func(a *domain.Application) bool {
		return a.ScheduleInterview(at)
	})
}

func (s *applicationService) PassInterview(ctx context.Context, id int64) (domain.Application, error) {
	return s.transition(ctx, id, func(a *domain.Application) bool {
		return a.PassInterview()
	})
}

func (s *applicationService) Hire(ctx context.Context, id int64) (domain.Application, error) {
	return s.transition(ctx, id, func(a *domain.Application) bool {
		return a.Hire(time.Now())
	})
}

func (s *applicationService) Reject(ctx context.Context, id int64, reason string) (domain.Application, error) {
	return s.transition(ctx, id, func(a *domain.Application) bool {
		return a.Reject(reason, time.Now())
	})
}

func (s *applicationService) Withdraw(ctx context.Context, id int64) (domain.Application, error) {
	return s.transition(ctx, id, func(a *domain.Application) bool {
		return a.Withdraw()
	})
}

func (s *applicationService) AddInterviewerNotes(ctx context.Context, id int64, notes string) (domain.Application, error) {
	return s.transition(ctx, id, func(a *domain.Application) bool {
		a.AddInterviewerNotes(notes)
		return true
	})
}

func (s *applicationService) UpdateDetails(ctx context.Context, id int64,
	coverLetter, resumeURL string, portfolioURLs []string) (domain.Application, error) {
	return s.transition(ctx, id, func(a *domain.Application) bool {
		return a.UpdateDetails(coverLetter, resumeURL, portfolioURLs)
	})
}

// transition 加载投递记录并执行一次守卫过渡。守卫失败不落库也不报错
func (s *applicationService) transition(ctx context.Context, id int64,
	fn func(a *domain.Application) bool) (domain.Application, error) {
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if !fn(&app) {
		return app, nil
	}
	return app, s.repo.Update(ctx, app)
}

func (s *applicationService) Detail(ctx context.Context, id int64) (domain.Application, error) {
	return s.repo.FindById(ctx, id)
}

func (s *applicationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *applicationService) ListByApplicant(ctx context.Context, applicantID int64, offset, limit int) ([]domain.Application, int64, error) {
	apps, err := s.repo.ListByApplicant(ctx, applicantID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByApplicant(ctx, applicantID)
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (s *applicationService) ListByPosting(ctx context.Context, postingID int64, offset, limit int) ([]domain.Application, int64, error) {
	apps, err := s.repo.ListByPosting(ctx, postingID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByPosting(ctx, postingID)
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (s *applicationService) AllByPosting(ctx context.Context, postingID int64) ([]domain.Application, error) {
	return s.repo.AllByPosting(ctx, postingID)
}

func (s *applicationService) CountByPosting(ctx context.Context, postingID int64) (int64, error) {
	return s.repo.CountByPosting(ctx, postingID)
}
