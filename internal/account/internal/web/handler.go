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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/account/internal/domain"
	"github.com/ecodeclub/jobboard/internal/account/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.AccountService
}

func NewHandler(svc service.AccountService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/account")
	g.POST("/register", ginx.B[RegisterReq](h.Register))
	g.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/account")
	g.POST("/profile", ginx.S(h.Profile))
	g.POST("/company-profile/save", ginx.BS[SaveCompanyProfileReq](h.SaveCompanyProfile))
	g.POST("/company-profile/detail", ginx.S(h.CompanyProfile))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	id, err := h.svc.Register(ctx, domain.Account{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		Type:     domain.AccountType(req.Type),
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicatedEmail) {
			return duplicateEmailResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	account, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return invalidCredentialsResult, nil
		}
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, account.ID).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newAccount(account)}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	account, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return accountNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: newAccount(account)}, nil
}

func (h *Handler) SaveCompanyProfile(ctx *ginx.Context, req SaveCompanyProfileReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	isCompany, err := h.svc.IsCompanyAccount(ctx, uid)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return accountNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	if !isCompany {
		return notCompanyAccountResult, nil
	}
	id, err := h.svc.SaveCompanyProfile(ctx, domain.CompanyProfile{
		AccountID: uid,
		Name:      req.Name,
		Industry:  req.Industry,
		Website:   req.Website,
		Address:   req.Address,
		Intro:     req.Intro,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) CompanyProfile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	profile, err := h.svc.CompanyProfileByAccountID(ctx, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return profileNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CompanyProfileVO{
			ID:       profile.ID,
			Name:     profile.Name,
			Industry: profile.Industry,
			Website:  profile.Website,
			Address:  profile.Address,
			Intro:    profile.Intro,
			Utime:    profile.Utime,
		},
	}, nil
}
