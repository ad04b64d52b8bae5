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
)

type ApplicationHandler struct {
	svc        service.ApplicationService
	postingSvc service.PostingService
}

func NewApplicationHandler(svc service.ApplicationService, postingSvc service.PostingService) *ApplicationHandler {
	return &ApplicationHandler{
		svc:        svc,
		postingSvc: postingSvc,
	}
}

func (h *ApplicationHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/job/apply", ginx.BS[ApplyReq](h.Apply))

	g := server.Group("/application")
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/mine", ginx.BS[Page](h.Mine))
	g.POST("/update", ginx.BS[UpdateApplicationReq](h.Update))
	g.POST("/withdraw", ginx.BS[IDReq](h.Withdraw))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))

	// 企业侧操作，要求当前账号是投递对应职位的拥有者
	g.POST("/list", ginx.BS[ListByPostingReq](h.ListByPosting))
	g.POST("/review", ginx.BS[IDReq](h.Review))
	g.POST("/pass-document", ginx.BS[IDReq](h.PassDocumentReview))
	g.POST("/interview/schedule", ginx.BS[ScheduleInterviewReq](h.ScheduleInterview))
	g.POST("/interview/pass", ginx.BS[IDReq](h.PassInterview))
	g.POST("/hire", ginx.BS[IDReq](h.Hire))
	g.POST("/reject", ginx.BS[RejectReq](h.Reject))
	g.POST("/notes", ginx.BS[InterviewerNotesReq](h.AddInterviewerNotes))
}

func (h *ApplicationHandler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Apply(ctx, domain.Application{
		PostingID:     req.PostingID,
		ApplicantID:   sess.Claims().Uid,
		CoverLetter:   req.CoverLetter,
		ResumeURL:     req.ResumeURL,
		PortfolioURLs: req.PortfolioURLs,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: newApplication(app)}, nil
	case errors.Is(err, service.ErrDuplicatedApplication):
		return duplicateApplicationResult, nil
	case errors.Is(err, service.ErrPostingNotAcceptable):
		return notAcceptableResult, nil
	case errors.Is(err, service.ErrPostingNotFound):
		return postingNotFoundResult, nil
	case errors.Is(err, service.ErrApplicantNotFound):
		return ownerNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *ApplicationHandler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Detail(ctx, req.ID)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return applicationNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	uid := sess.Claims().Uid
	if app.ApplicantID != uid {
		// 不是投递人，那必须是职位拥有者
		if _, err = h.ownedPosting(ctx, uid, app.PostingID); err != nil {
			return h.permissionErr(err)
		}
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *ApplicationHandler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	apps, total, err := h.svc.ListByApplicant(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ApplicationList{
			Total: total,
			Applications: slice.Map(apps, func(idx int, src domain.Application) Application {
				return newApplication(src)
			}),
		},
	}, nil
}

func (h *ApplicationHandler) Update(ctx *ginx.Context, req UpdateApplicationReq, sess session.Session) (ginx.Result, error) {
	app, err := h.applicantOwned(ctx, sess, req.ID)
	if err != nil {
		return h.permissionErr(err)
	}
	app, err = h.svc.UpdateDetails(ctx, app.ID, req.CoverLetter, req.ResumeURL, req.PortfolioURLs)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *ApplicationHandler) Withdraw(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	app, err := h.applicantOwned(ctx, sess, req.ID)
	if err != nil {
		return h.permissionErr(err)
	}
	app, err = h.svc.Withdraw(ctx, app.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *ApplicationHandler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.applicantOwned(ctx, sess, req.ID); err != nil {
		return h.permissionErr(err)
	}
	if err := h.svc.Delete(ctx, req.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *ApplicationHandler) ListByPosting(ctx *ginx.Context, req ListByPostingReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.ownedPosting(ctx, sess.Claims().Uid, req.PostingID); err != nil {
		return h.permissionErr(err)
	}
	apps, total, err := h.svc.ListByPosting(ctx, req.PostingID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ApplicationList{
			Total: total,
			Applications: slice.Map(apps, func(idx int, src domain.Application) Application {
				return newApplication(src)
			}),
		},
	}, nil
}

func (h *ApplicationHandler) Review(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.companyOp(ctx, sess, req.ID, func(id int64) (domain.Application, error) {
		return h.svc.Review(ctx, id)
	})
}

func (h *ApplicationHandler) PassDocumentReview(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.companyOp(ctx, sess, req.ID, func(id int64) (domain.Application, error) {
		return h.svc.PassDocumentReview(ctx, id)
	})
}

func (h *ApplicationHandler) ScheduleInterview(ctx *ginx.Context, req ScheduleInterviewReq, sess session.Session) (ginx.Result, error) {
	return h.companyOp(ctx, sess, req.ID, func(id int64) (domain.Application, error) {
		return h.svc.ScheduleInterview(ctx, id, time.UnixMilli(req.InterviewAt))
	})
}

func (h *ApplicationHandler) PassInterview(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.companyOp(ctx, sess, req.ID, func(id int64) (domain.Application, error) {
		return h.svc.PassInterview(ctx, id)
	})
}

func (h *ApplicationHandler) Hire(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.companyOp(ctx, sess, req.ID, func(id int64) (domain.Application, error) {
		return h.svc.Hire(ctx, id)
	})
}

func (h *ApplicationHandler) Reject(ctx *ginx.Context, req RejectReq, sess session.Session) (ginx.Result, error) {
	return h.companyOp(ctx, sess, req.ID, func(id int64) (domain.Application, error) {
		return h.svc.Reject(ctx, id, req.Reason)
	})
}

func (h *ApplicationHandler) AddInterviewerNotes(ctx *ginx.Context, req InterviewerNotesReq, sess session.Session) (ginx.Result, error) {
	return h.companyOp(ctx, sess, req.ID, func(id int64) (domain.Application, error) {
		return h.svc.AddInterviewerNotes(ctx, id, req.Notes)
	})
}

// companyOp 校验当前账号拥有投递对应的职位后执行状态过渡
func (h *ApplicationHandler) companyOp(ctx *ginx.Context, sess session.Session, id int64,
	op func(id int64) (domain.Application, error)) (ginx.Result, error) {
	app, err := h.svc.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			return applicationNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	if _, err = h.ownedPosting(ctx, sess.Claims().Uid, app.PostingID); err != nil {
		return h.permissionErr(err)
	}
	app, err = op(id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newApplication(app)}, nil
}

func (h *ApplicationHandler) applicantOwned(ctx *ginx.Context, sess session.Session, id int64) (domain.Application, error) {
	app, err := h.svc.Detail(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if app.ApplicantID != sess.Claims().Uid {
		return domain.Application{}, errNotOwner
	}
	return app, nil
}

func (h *ApplicationHandler) ownedPosting(ctx *ginx.Context, uid, postingID int64) (domain.Posting, error) {
	posting, err := h.postingSvc.Detail(ctx, postingID)
	if err != nil {
		return domain.Posting{}, err
	}
	if posting.OwnerID != uid {
		return domain.Posting{}, errNotOwner
	}
	return posting, nil
}

func (h *ApplicationHandler) permissionErr(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, errNotOwner):
		return permissionDeniedResult, nil
	case errors.Is(err, service.ErrApplicationNotFound):
		return applicationNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
