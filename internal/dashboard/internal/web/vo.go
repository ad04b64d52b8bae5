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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobboard/internal/dashboard/internal/domain"
)

type CompanySnapshotVO struct {
	CompanyName            string                `json:"companyName"`
	TotalPostings          int64                 `json:"totalPostings"`
	ActivePostings         int64                 `json:"activePostings"`
	TotalApplicants        int64                 `json:"totalApplicants"`
	NewApplicantsToday     int64                 `json:"newApplicantsToday"`
	NewApplicantsThisWeek  int64                 `json:"newApplicantsThisWeek"`
	PendingReview          int64                 `json:"pendingReview"`
	InterviewScheduled     int64                 `json:"interviewScheduled"`
	HiredThisMonth         int64                 `json:"hiredThisMonth"`
	AverageApplicationRate float64               `json:"averageApplicationRate"`
	RecentApplications     []RecentApplicationVO `json:"recentApplications"`
	RecentPostings         []RecentPostingVO     `json:"recentPostings"`
	DeadlineApproaching    int64                 `json:"deadlineApproaching"`
}

type RecentApplicationVO struct {
	ID                 int64  `json:"id"`
	PostingID          int64  `json:"postingId"`
	PostingTitle       string `json:"postingTitle"`
	ApplicantID        int64  `json:"applicantId"`
	Status             uint8  `json:"status"`
	CoverLetterPreview string `json:"coverLetterPreview,omitempty"`
	AppliedAt          int64  `json:"appliedAt"`
}

type RecentPostingVO struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Status              uint8  `json:"status"`
	ViewCount           int64  `json:"viewCount"`
	ApplicationCount    int64  `json:"applicationCount"`
	Ctime               int64  `json:"ctime"`
	DeadlineAt          int64  `json:"deadlineAt,omitempty"`
	DaysUntilDeadline   int64  `json:"daysUntilDeadline"`
	DeadlineApproaching bool   `json:"deadlineApproaching"`
}

func newCompanySnapshot(s domain.CompanySnapshot) CompanySnapshotVO {
	return CompanySnapshotVO{
		CompanyName:            s.CompanyName,
		TotalPostings:          s.TotalPostings,
		ActivePostings:         s.ActivePostings,
		TotalApplicants:        s.TotalApplicants,
		NewApplicantsToday:     s.NewApplicantsToday,
		NewApplicantsThisWeek:  s.NewApplicantsThisWeek,
		PendingReview:          s.PendingReview,
		InterviewScheduled:     s.InterviewScheduled,
		HiredThisMonth:         s.HiredThisMonth,
		AverageApplicationRate: s.AverageApplicationRate,
		RecentApplications: slice.Map(s.RecentApplications, func(idx int, src domain.RecentApplication) RecentApplicationVO {
			return RecentApplicationVO{
				ID:                 src.ID,
				PostingID:          src.PostingID,
				PostingTitle:       src.PostingTitle,
				ApplicantID:        src.ApplicantID,
				Status:             src.Status,
				CoverLetterPreview: src.CoverLetterPreview,
				AppliedAt:          src.AppliedAt,
			}
		}),
		RecentPostings: slice.Map(s.RecentPostings, func(idx int, src domain.RecentPosting) RecentPostingVO {
			return RecentPostingVO{
				ID:                  src.ID,
				Title:               src.Title,
				Status:              src.Status,
				ViewCount:           src.ViewCount,
				ApplicationCount:    src.ApplicationCount,
				Ctime:               src.Ctime,
				DeadlineAt:          src.DeadlineAt,
				DaysUntilDeadline:   src.DaysUntilDeadline,
				DeadlineApproaching: src.DeadlineApproaching,
			}
		}),
		DeadlineApproaching: s.DeadlineApproaching,
	}
}
