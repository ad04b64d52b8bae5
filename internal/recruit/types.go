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

package recruit

import (
	"github.com/ecodeclub/jobboard/internal/recruit/internal/domain"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/job"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/service"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/web"
)

type (
	PostingHandler     = web.PostingHandler
	ApplicationHandler = web.ApplicationHandler

	PostingService     = service.PostingService
	ApplicationService = service.ApplicationService

	Posting                  = domain.Posting
	PostingStatus            = domain.PostingStatus
	PostingQuery             = domain.PostingQuery
	PostingStats             = domain.PostingStats
	PostingBasicInfo         = domain.PostingBasicInfo
	PostingSalaryInfo        = domain.PostingSalaryInfo
	PostingContent           = domain.PostingContent
	PostingWorkingConditions = domain.PostingWorkingConditions
	PostingContactInfo       = domain.PostingContactInfo

	Application       = domain.Application
	ApplicationStatus = domain.ApplicationStatus

	CloseExpiredPostingsJob = job.CloseExpiredPostingsJob
)

const (
	PostingStatusDraft     = domain.PostingStatusDraft
	PostingStatusPublished = domain.PostingStatusPublished
	PostingStatusClosed    = domain.PostingStatusClosed

	ApplicationStatusSubmitted          = domain.ApplicationStatusSubmitted
	ApplicationStatusReviewed           = domain.ApplicationStatusReviewed
	ApplicationStatusDocumentPassed     = domain.ApplicationStatusDocumentPassed
	ApplicationStatusInterviewScheduled = domain.ApplicationStatusInterviewScheduled
	ApplicationStatusInterviewPassed    = domain.ApplicationStatusInterviewPassed
	ApplicationStatusHired              = domain.ApplicationStatusHired
	ApplicationStatusRejected           = domain.ApplicationStatusRejected
	ApplicationStatusWithdrawn          = domain.ApplicationStatusWithdrawn
)

var (
	ErrPostingNotFound       = service.ErrPostingNotFound
	ErrApplicationNotFound   = service.ErrApplicationNotFound
	ErrDuplicatedApplication = service.ErrDuplicatedApplication
	ErrPostingNotAcceptable  = service.ErrPostingNotAcceptable
	ErrInvalidDeadlineWindow = service.ErrInvalidDeadlineWindow
)

type Module struct {
	PostingHdl     *PostingHandler
	ApplicationHdl *ApplicationHandler
	PostingSvc     PostingService
	ApplicationSvc ApplicationService
	CloseJob       *CloseExpiredPostingsJob
}
