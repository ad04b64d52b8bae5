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
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.DashboardService
}

func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/dashboard")
	g.POST("/company", ginx.S(h.CompanySnapshot))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) CompanySnapshot(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	snapshot, err := h.svc.CompanySnapshot(ctx, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return profileNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCompanySnapshot(snapshot)}, nil
}
