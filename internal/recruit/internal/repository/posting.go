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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/domain"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/repository/cache"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrPostingNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./posting.go -destination=./mocks/posting.mock.go -package=repomocks -typed=true PostingRepository
type PostingRepository interface {
	Create(ctx context.Context, posting domain.Posting) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Posting, error)
	// Detail 是面向求职者的详情读路径，走缓存
	Detail(ctx context.Context, id int64) (domain.Posting, error)
	Update(ctx context.Context, posting domain.Posting) error
	IncrViewCnt(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query domain.PostingQuery, offset, limit int) ([]domain.Posting, error)
	SearchCount(ctx context.Context, query domain.PostingQuery) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Posting, error)
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
	AllByOwner(ctx context.Context, ownerID int64) ([]domain.Posting, error)
	DeadlineBetween(ctx context.Context, start, end time.Time) ([]domain.Posting, error)
	DeadlineBetweenByOwner(ctx context.Context, ownerID int64, start, end time.Time) ([]domain.Posting, error)
	CloseExpired(ctx context.Context, before time.Time) (int64, error)
}

type CachedPostingRepository struct {
	dao    dao.PostingDAO
	cache  cache.PostingCache
	logger *elog.Component
}

func NewCachedPostingRepository(d dao.PostingDAO, c cache.PostingCache) PostingRepository {
	return &CachedPostingRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedPostingRepository) Create(ctx context.Context, posting domain.Posting) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(posting))
}

func (r *CachedPostingRepository) FindById(ctx context.Context, id int64) (domain.Posting, error) {
	p, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Posting{}, err
	}
	return r.toDomain(p), nil
}

func (r *CachedPostingRepository) Detail(ctx context.Context, id int64) (domain.Posting, error) {
	posting, err := r.cache.GetPosting(ctx, id)
	if err == nil {
		return posting, nil
	}
	p, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Posting{}, err
	}
	posting = r.toDomain(p)
	// 回填失败只记日志，不影响主流程
	if err = r.cache.SetPosting(ctx, posting); err != nil {
		r.logger.Warn("回填职位缓存失败", elog.Int64("pid", id), elog.FieldErr(err))
	}
	return posting, nil
}

func (r *CachedPostingRepository) Update(ctx context.Context, posting domain.Posting) error {
	if err := r.dao.Update(ctx, r.toEntity(posting)); err != nil {
		return err
	}
	if err := r.cache.DelPosting(ctx, posting.ID); err != nil {
		r.logger.Warn("删除职位缓存失败", elog.Int64("pid", posting.ID), elog.FieldErr(err))
	}
	return nil
}

func (r *CachedPostingRepository) IncrViewCnt(ctx context.Context, id int64) error {
	// 浏览量允许短暂读到缓存里的旧值，不为了计数器反复失效缓存
	return r.dao.IncrViewCnt(ctx, id)
}

func (r *CachedPostingRepository) Delete(ctx context.Context, id int64) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.cache.DelPosting(ctx, id); err != nil {
		r.logger.Warn("删除职位缓存失败", elog.Int64("pid", id), elog.FieldErr(err))
	}
	return nil
}

func (r *CachedPostingRepository) Search(ctx context.Context, query domain.PostingQuery, offset, limit int) ([]domain.Posting, error) {
	res, err := r.dao.Search(ctx, r.toQueryEntity(query), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Posting) domain.Posting {
		return r.toDomain(src)
	}), nil
}

func (r *CachedPostingRepository) SearchCount(ctx context.Context, query domain.PostingQuery) (int64, error) {
	return r.dao.SearchCount(ctx, r.toQueryEntity(query))
}

func (r *CachedPostingRepository) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Posting, error) {
	res, err := r.dao.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Posting) domain.Posting {
		return r.toDomain(src)
	}), nil
}

func (r *CachedPostingRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	return r.dao.CountByOwner(ctx, ownerID)
}

func (r *CachedPostingRepository) AllByOwner(ctx context.Context, ownerID int64) ([]domain.Posting, error) {
	res, err := r.dao.AllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Posting) domain.Posting {
		return r.toDomain(src)
	}), nil
}

func (r *CachedPostingRepository) DeadlineBetween(ctx context.Context, start, end time.Time) ([]domain.Posting, error) {
	res, err := r.dao.DeadlineBetween(ctx, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Posting) domain.Posting {
		return r.toDomain(src)
	}), nil
}

func (r *CachedPostingRepository) DeadlineBetweenByOwner(ctx context.Context, ownerID int64, start, end time.Time) ([]domain.Posting, error) {
	res, err := r.dao.DeadlineBetweenByOwner(ctx, ownerID, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Posting) domain.Posting {
		return r.toDomain(src)
	}), nil
}

func (r *CachedPostingRepository) CloseExpired(ctx context.Context, before time.Time) (int64, error) {
	return r.dao.CloseExpired(ctx, before.UnixMilli())
}

func (r *CachedPostingRepository) toQueryEntity(query domain.PostingQuery) dao.PostingQuery {
	q := dao.PostingQuery{
		Title:     query.Title,
		Location:  query.Location,
		SalaryMin: query.SalaryMin,
		SalaryMax: query.SalaryMax,
	}
	if query.JobType != nil {
		t := query.JobType.ToUint8()
		q.JobType = &t
	}
	if query.ExperienceLevel != nil {
		l := query.ExperienceLevel.ToUint8()
		q.ExperienceLevel = &l
	}
	if query.Status != nil {
		s := query.Status.ToUint8()
		q.Status = &s
	}
	return q
}

func (r *CachedPostingRepository) toEntity(p domain.Posting) dao.Posting {
	res := dao.Posting{
		Id:               p.ID,
		SN:               p.SN,
		OwnerId:          p.OwnerID,
		Title:            p.Title,
		CompanyName:      p.CompanyName,
		Location:         p.Location,
		Department:       p.Department,
		Field:            p.Field,
		Description:      p.Description,
		Qualifications:   p.Qualifications,
		RequiredSkills:   p.RequiredSkills,
		Benefits:         p.Benefits,
		JobType:          p.JobType.ToUint8(),
		ExperienceLevel:  p.ExperienceLevel.ToUint8(),
		WorkingHours:     p.WorkingHours,
		RemotePossible:   p.RemotePossible,
		SalaryNegotiable: p.SalaryNegotiable,
		ContactEmail:     p.ContactEmail,
		ContactPhone:     p.ContactPhone,
		Status:           p.Status.ToUint8(),
		PublishedAt:      p.PublishedAt,
		DeadlineAt:       p.DeadlineAt,
		ViewCnt:          p.ViewCount,
		ApplyCnt:         p.ApplicationCount,
	}
	if p.SalaryMin != nil {
		res.SalaryMin = sql.NullInt64{Int64: *p.SalaryMin, Valid: true}
	}
	if p.SalaryMax != nil {
		res.SalaryMax = sql.NullInt64{Int64: *p.SalaryMax, Valid: true}
	}
	return res
}

func (r *CachedPostingRepository) toDomain(p dao.Posting) domain.Posting {
	res := domain.Posting{
		ID:               p.Id,
		SN:               p.SN,
		OwnerID:          p.OwnerId,
		Title:            p.Title,
		CompanyName:      p.CompanyName,
		Location:         p.Location,
		Department:       p.Department,
		Field:            p.Field,
		Description:      p.Description,
		Qualifications:   p.Qualifications,
		RequiredSkills:   p.RequiredSkills,
		Benefits:         p.Benefits,
		JobType:          domain.JobType(p.JobType),
		ExperienceLevel:  domain.ExperienceLevel(p.ExperienceLevel),
		WorkingHours:     p.WorkingHours,
		RemotePossible:   p.RemotePossible,
		SalaryNegotiable: p.SalaryNegotiable,
		ContactEmail:     p.ContactEmail,
		ContactPhone:     p.ContactPhone,
		Status:           domain.PostingStatus(p.Status),
		PublishedAt:      p.PublishedAt,
		DeadlineAt:       p.DeadlineAt,
		ViewCount:        p.ViewCnt,
		ApplicationCount: p.ApplyCnt,
		Ctime:            p.Ctime,
		Utime:            p.Utime,
	}
	if p.SalaryMin.Valid {
		res.SalaryMin = &p.SalaryMin.Int64
	}
	if p.SalaryMax.Valid {
		res.SalaryMax = &p.SalaryMax.Int64
	}
	return res
}
