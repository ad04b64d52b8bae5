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

package web

import (
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/domain"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var errNotOwner = errors.New("不是职位的拥有者")

type PostingHandler struct {
	svc    service.PostingService
	logger *elog.Component
}

func NewPostingHandler(svc service.PostingService) *PostingHandler {
	return &PostingHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *PostingHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/job")
	g.POST("/list", ginx.B[SearchReq](h.Search))
	g.POST("/detail", ginx.B[IDReq](h.PublicDetail))
	g.POST("/closing-soon", ginx.B[DeadlineApproachingReq](h.DeadlineApproaching))
}

func (h *PostingHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/job")
	g.POST("/save", ginx.BS[CreatePostingReq](h.Create))
	g.POST("/publish", ginx.BS[PublishReq](h.Publish))
	g.POST("/close", ginx.BS[IDReq](h.Close))
	g.POST("/reopen", ginx.BS[PublishReq](h.Reopen))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/update/basic", ginx.BS[UpdateBasicInfoReq](h.UpdateBasicInfo))
	g.POST("/update/salary", ginx.BS[UpdateSalaryInfoReq](h.UpdateSalaryInfo))
	g.POST("/update/content", ginx.BS[UpdateContentReq](h.UpdateContent))
	g.POST("/update/working", ginx.BS[UpdateWorkingConditionsReq](h.UpdateWorkingConditions))
	g.POST("/update/contact", ginx.BS[UpdateContactInfoReq](h.UpdateContactInfo))
	g.POST("/mine", ginx.BS[Page](h.Mine))
	g.POST("/mine/closing-soon", ginx.BS[DeadlineApproachingReq](h.MineDeadlineApproaching))
	g.POST("/stats", ginx.BS[IDReq](h.Stats))
}

func (h *PostingHandler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	postings, total, err := h.svc.Search(ctx, h.toQuery(req), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PostingList{
			Total: total,
			Postings: slice.Map(postings, func(idx int, src domain.Posting) Posting {
				return newPosting(src)
			}),
		},
	}, nil
}

func (h *PostingHandler) PublicDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	posting, err := h.svc.PublicDetail(ctx, req.ID)
	if err != nil {
		if errors.Is(err, service.ErrPostingNotFound) {
			return postingNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPosting(posting)}, nil
}

func (h *PostingHandler) DeadlineApproaching(ctx *ginx.Context, req DeadlineApproachingReq) (ginx.Result, error) {
	postings, err := h.svc.DeadlineApproaching(ctx, req.Days)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDeadlineWindow) {
			return invalidDeadlineWindowResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(postings, func(idx int, src domain.Posting) Posting {
			return newPosting(src)
		}),
	}, nil
}

func (h *PostingHandler) Create(ctx *ginx.Context, req CreatePostingReq, sess session.Session) (ginx.Result, error) {
	posting, err := h.svc.Create(ctx, domain.Posting{
		OwnerID:          sess.Claims().Uid,
		Title:            req.Title,
		CompanyName:      req.CompanyName,
		Location:         req.Location,
		Department:       req.Department,
		Field:            req.Field,
		Description:      req.Description,
		Qualifications:   req.Qualifications,
		RequiredSkills:   req.RequiredSkills,
		Benefits:         req.Benefits,
		JobType:          domain.JobType(req.JobType),
		ExperienceLevel:  domain.ExperienceLevel(req.ExperienceLevel),
		WorkingHours:     req.WorkingHours,
		RemotePossible:   req.RemotePossible,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		SalaryNegotiable: req.SalaryNegotiable,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: newPosting(posting)}, nil
	case errors.Is(err, service.ErrOwnerNotFound):
		return ownerNotFoundResult, nil
	case errors.Is(err, service.ErrNotCompanyAccount):
		return permissionDeniedResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *PostingHandler) Publish(ctx *ginx.Context, req PublishReq, sess session.Session) (ginx.Result, error) {
	return h.ownerOp(ctx, sess, req.ID, func() (domain.Posting, error) {
		return h.svc.Publish(ctx, req.ID, time.UnixMilli(req.Deadline))
	})
}

func (h *PostingHandler) Close(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.ownerOp(ctx, sess, req.ID, func() (domain.Posting, error) {
		return h.svc.Close(ctx, req.ID)
	})
}

func (h *PostingHandler) Reopen(ctx *ginx.Context, req PublishReq, sess session.Session) (ginx.Result, error) {
	return h.ownerOp(ctx, sess, req.ID, func() (domain.Posting, error) {
		return h.svc.Reopen(ctx, req.ID, time.UnixMilli(req.Deadline))
	})
}

func (h *PostingHandler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.owned(ctx, sess, req.ID); err != nil {
		return h.ownerErr(err)
	}
	if err := h.svc.Delete(ctx, req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *PostingHandler) UpdateBasicInfo(ctx *ginx.Context, req UpdateBasicInfoReq, sess session.Session) (ginx.Result, error) {
	return h.ownerOp(ctx, sess, req.ID, func() (domain.Posting, error) {
		return h.svc.UpdateBasicInfo(ctx, req.ID, domain.PostingBasicInfo{
			Title:       req.Title,
			CompanyName: req.CompanyName,
			Location:    req.Location,
			Department:  req.Department,
			Field:       req.Field,
		})
	})
}

func (h *PostingHandler) UpdateSalaryInfo(ctx *ginx.Context, req UpdateSalaryInfoReq, sess session.Session) (ginx.Result, error) {
	return h.ownerOp(ctx, sess, req.ID, func() (domain.Posting, error) {
		return h.svc.UpdateSalaryInfo(ctx, req.ID, domain.PostingSalaryInfo{
			SalaryMin:        req.SalaryMin,
			SalaryMax:        req.SalaryMax,
			SalaryNegotiable: req.SalaryNegotiable,
		})
	})
}

func (h *PostingHandler) UpdateContent(ctx *ginx.Context, req UpdateContentReq, sess session.Session) (ginx.Result, error) {
	return h.ownerOp(ctx, sess, req.ID, func() (domain.Posting, error) {
		return h.svc.UpdateContent(ctx, req.ID, domain.PostingContent{
			Description:    req.Description,
			Qualifications: req.Qualifications,
			RequiredSkills: req.RequiredSkills,
			Benefits:       req.Benefits,
		})
	})
}

func (h *PostingHandler) UpdateWorkingConditions(ctx *ginx.Context, req UpdateWorkingConditionsReq, sess session.Session) (ginx.Result, error) {
	return h.ownerOp(ctx, sess, req.ID, func() (domain.Posting, error) {
		var cond domain.PostingWorkingConditions
		if req.JobType != nil {
			t := domain.JobType(*req.JobType)
			cond.JobType = &t
		}
		if req.ExperienceLevel != nil {
			l := domain.ExperienceLevel(*req.ExperienceLevel)
			cond.ExperienceLevel = &l
		}
		cond.WorkingHours = req.WorkingHours
		cond.RemotePossible = req.RemotePossible
		return h.svc.UpdateWorkingConditions(ctx, req.ID, cond)
	})
}

func (h *PostingHandler) UpdateContactInfo(ctx *ginx.Context, req UpdateContactInfoReq, sess session.Session) (ginx.Result, error) {
	return h.ownerOp(ctx, sess, req.ID, func() (domain.Posting, error) {
		return h.svc.UpdateContactInfo(ctx, req.ID, domain.PostingContactInfo{
			ContactEmail: req.ContactEmail,
			ContactPhone: req.ContactPhone,
		})
	})
}

func (h *PostingHandler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	postings, total, err := h.svc.ListByOwner(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PostingList{
			Total: total,
			Postings: slice.Map(postings, func(idx int, src domain.Posting) Posting {
				return newPosting(src)
			}),
		},
	}, nil
}

func (h *PostingHandler) MineDeadlineApproaching(ctx *ginx.Context, req DeadlineApproachingReq, sess session.Session) (ginx.Result, error) {
	postings, err := h.svc.DeadlineApproachingByOwner(ctx, sess.Claims().Uid, req.Days)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDeadlineWindow) {
			return invalidDeadlineWindowResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(postings, func(idx int, src domain.Posting) Posting {
			return newPosting(src)
		}),
	}, nil
}

func (h *PostingHandler) Stats(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.owned(ctx, sess, req.ID); err != nil {
		return h.ownerErr(err)
	}
	stats, err := h.svc.Stats(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PostingStats{
			PostingID:           stats.PostingID,
			Status:              stats.Status.ToUint8(),
			ViewCnt:             stats.ViewCount,
			ApplyCnt:            stats.ApplicationCount,
			ApplicationRate:     stats.ApplicationRate,
			DeadlineAt:          stats.DeadlineAt,
			DaysUntilDeadline:   stats.DaysUntilDeadline,
			DeadlineApproaching: stats.DeadlineApproaching,
			Expired:             stats.Expired,
			Active:              stats.Active,
		},
	}, nil
}

// ownerOp 先校验当前登录账号是职位拥有者，再执行目标操作
func (h *PostingHandler) ownerOp(ctx *ginx.Context, sess session.Session, id int64,
	op func() (domain.Posting, error)) (ginx.Result, error) {
	if _, err := h.owned(ctx, sess, id); err != nil {
		return h.ownerErr(err)
	}
	posting, err := op()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPosting(posting)}, nil
}

func (h *PostingHandler) owned(ctx *ginx.Context, sess session.Session, id int64) (domain.Posting, error) {
	posting, err := h.svc.Detail(ctx, id)
	if err != nil {
		return domain.Posting{}, err
	}
	if posting.OwnerID != sess.Claims().Uid {
		return domain.Posting{}, errNotOwner
	}
	return posting, nil
}

func (h *PostingHandler) ownerErr(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrPostingNotFound):
		return postingNotFoundResult, nil
	case errors.Is(err, errNotOwner):
		return permissionDeniedResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *PostingHandler) toQuery(req SearchReq) domain.PostingQuery {
	query := domain.PostingQuery{
		Title:     req.Title,
		Location:  req.Location,
		SalaryMin: req.SalaryMin,
		SalaryMax: req.SalaryMax,
	}
	if req.JobType != nil {
		t := domain.JobType(*req.JobType)
		query.JobType = &t
	}
	if req.ExperienceLevel != nil {
		l := domain.ExperienceLevel(*req.ExperienceLevel)
		query.ExperienceLevel = &l
	}
	if req.Status != nil {
		s := domain.PostingStatus(*req.Status)
		query.Status = &s
	}
	return query
}
