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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/domain"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/repository/dao"
)

var (
	ErrApplicationNotFound   = dao.ErrRecordNotFound
	ErrDuplicatedApplication = dao.ErrDuplicatedApplication
)

//go:generate mockgen -source=./application.go -destination=./mocks/application.mock.go -package=repomocks -typed=true ApplicationRepository
type ApplicationRepository interface {
	// Submit 持久化投递记录，同时维护职位上的投递计数
	Submit(ctx context.Context, app domain.Application) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	Update(ctx context.Context, app domain.Application) error
	Exist(ctx context.Context, applicantID, postingID int64) (bool, error)
	ListByApplicant(ctx context.Context, applicantID int64, offset, limit int) ([]domain.Application, error)
	CountByApplicant(ctx context.Context, applicantID int64) (int64, error)
	ListByPosting(ctx context.Context, postingID int64, offset, limit int) ([]domain.Application, error)
	CountByPosting(ctx context.Context, postingID int64) (int64, error)
	AllByPosting(ctx context.Context, postingID int64) ([]domain.Application, error)
	Delete(ctx context.Context, id int64) error
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Submit(ctx context.Context, app domain.Application) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(app))
}

func (r *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(app), nil
}

func (r *applicationRepository) Update(ctx context.Context, app domain.Application) error {
	return r.dao.Update(ctx, r.toEntity(app))
}

func (r *applicationRepository) Exist(ctx context.Context, applicantID, postingID int64) (bool, error) {
	return r.dao.Exist(ctx, applicantID, postingID)
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID int64, offset, limit int) ([]domain.Application, error) {
	res, err := r.dao.ListByApplicant(ctx, applicantID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) CountByApplicant(ctx context.Context, applicantID int64) (int64, error) {
	return r.dao.CountByApplicant(ctx, applicantID)
}

func (r *applicationRepository) ListByPosting(ctx context.Context, postingID int64, offset, limit int) ([]domain.Application, error) {
	res, err := r.dao.ListByPosting(ctx, postingID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) CountByPosting(ctx context.Context, postingID int64) (int64, error) {
	return r.dao.CountByPosting(ctx, postingID)
}

func (r *applicationRepository) AllByPosting(ctx context.Context, postingID int64) ([]domain.Application, error) {
	res, err := r.dao.AllByPosting(ctx, postingID)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *applicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		Id:          app.ID,
		PostingId:   app.PostingID,
		ApplicantId: app.ApplicantID,
		CoverLetter: app.CoverLetter,
		ResumeURL:   app.ResumeURL,
		PortfolioURLs: sqlx.JsonColumn[[]string]{
			Val:   app.PortfolioURLs,
			Valid: len(app.PortfolioURLs) > 0,
		},
		Status:               app.Status.ToUint8(),
		AppliedAt:            app.AppliedAt,
		ReviewedAt:           app.ReviewedAt,
		InterviewScheduledAt: app.InterviewScheduledAt,
		FinalDecisionAt:      app.FinalDecisionAt,
		InterviewerNotes:     app.InterviewerNotes,
		RejectionReason:      app.RejectionReason,
	}
}

func (r *applicationRepository) toDomain(app dao.Application) domain.Application {
	return domain.Application{
		ID:                   app.Id,
		PostingID:            app.PostingId,
		ApplicantID:          app.ApplicantId,
		CoverLetter:          app.CoverLetter,
		ResumeURL:            app.ResumeURL,
		PortfolioURLs:        app.PortfolioURLs.Val,
		Status:               domain.ApplicationStatus(app.Status),
		AppliedAt:            app.AppliedAt,
		ReviewedAt:           app.ReviewedAt,
		InterviewScheduledAt: app.InterviewScheduledAt,
		FinalDecisionAt:      app.FinalDecisionAt,
		InterviewerNotes:     app.InterviewerNotes,
		RejectionReason:      app.RejectionReason,
		Ctime:                app.Ctime,
		Utime:                app.Utime,
	}
}
