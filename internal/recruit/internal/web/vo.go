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
	"github.com/ecodeclub/jobboard/internal/recruit/internal/domain"
)

type Posting struct {
	ID             int64  `json:"id"`
	SN             string `json:"sn"`
	OwnerID        int64  `json:"ownerId"`
	Title          string `json:"title"`
	CompanyName    string `json:"companyName"`
	Location       string `json:"location"`
	Department     string `json:"department,omitempty"`
	Field          string `json:"field,omitempty"`
	Description    string `json:"description,omitempty"`
	Qualifications string `json:"qualifications,omitempty"`
	RequiredSkills string `json:"requiredSkills,omitempty"`
	Benefits       string `json:"benefits,omitempty"`

	JobType         uint8  `json:"jobType"`
	ExperienceLevel uint8  `json:"experienceLevel"`
	WorkingHours    string `json:"workingHours,omitempty"`
	RemotePossible  bool   `json:"remotePossible"`

	SalaryMin        *int64 `json:"salaryMin,omitempty"`
	SalaryMax        *int64 `json:"salaryMax,omitempty"`
	SalaryNegotiable bool   `json:"salaryNegotiable"`

	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`

	Status      uint8 `json:"status"`
	PublishedAt int64 `json:"publishedAt"`
	DeadlineAt  int64 `json:"deadlineAt"`

	ViewCnt  int64 `json:"viewCnt"`
	ApplyCnt int64 `json:"applyCnt"`
	Utime    int64 `json:"utime"`
}

func newPosting(p domain.Posting) Posting {
	return Posting{
		ID:               p.ID,
		SN:               p.SN,
		OwnerID:          p.OwnerID,
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
		SalaryMin:        p.SalaryMin,
		SalaryMax:        p.SalaryMax,
		SalaryNegotiable: p.SalaryNegotiable,
		ContactEmail:     p.ContactEmail,
		ContactPhone:     p.ContactPhone,
		Status:           p.Status.ToUint8(),
		PublishedAt:      p.PublishedAt,
		DeadlineAt:       p.DeadlineAt,
		ViewCnt:          p.ViewCount,
		ApplyCnt:         p.ApplicationCount,
		Utime:            p.Utime,
	}
}

type PostingList struct {
	Total    int64     `json:"total"`
	Postings []Posting `json:"postings"`
}

type Application struct {
	ID            int64    `json:"id"`
	PostingID     int64    `json:"postingId"`
	ApplicantID   int64    `json:"applicantId"`
	CoverLetter   string   `json:"coverLetter,omitempty"`
	ResumeURL     string   `json:"resumeUrl,omitempty"`
	PortfolioURLs []string `json:"portfolioUrls,omitempty"`

	Status uint8 `json:"status"`

	AppliedAt            int64 `json:"appliedAt"`
	ReviewedAt           int64 `json:"reviewedAt,omitempty"`
	InterviewScheduledAt int64 `json:"interviewScheduledAt,omitempty"`
	FinalDecisionAt      int64 `json:"finalDecisionAt,omitempty"`

	InterviewerNotes string `json:"interviewerNotes,omitempty"`
	RejectionReason  string `json:"rejectionReason,omitempty"`
	Utime            int64  `json:"utime"`
}

func newApplication(app domain.Application) Application {
	return Application{
		ID:                   app.ID,
		PostingID:            app.PostingID,
		ApplicantID:          app.ApplicantID,
		CoverLetter:          app.CoverLetter,
		ResumeURL:            app.ResumeURL,
		PortfolioURLs:        app.PortfolioURLs,
		Status:               app.Status.ToUint8(),
		AppliedAt:            app.AppliedAt,
		ReviewedAt:           app.ReviewedAt,
		InterviewScheduledAt: app.InterviewScheduledAt,
		FinalDecisionAt:      app.FinalDecisionAt,
		InterviewerNotes:     app.InterviewerNotes,
		RejectionReason:      app.RejectionReason,
		Utime:                app.Utime,
	}
}

type ApplicationList struct {
	Total        int64         `json:"total"`
	Applications []Application `json:"applications"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type CreatePostingReq struct {
	Title          string `json:"title"`
	CompanyName    string `json:"companyName"`
	Location       string `json:"location"`
	Department     string `json:"department"`
	Field          string `json:"field"`
	Description    string `json:"description"`
	Qualifications string `json:"qualifications"`
	RequiredSkills string `json:"requiredSkills"`
	Benefits       string `json:"benefits"`

	JobType         uint8  `json:"jobType"`
	ExperienceLevel uint8  `json:"experienceLevel"`
	WorkingHours    string `json:"workingHours"`
	RemotePossible  bool   `json:"remotePossible"`

	SalaryMin        *int64 `json:"salaryMin"`
	SalaryMax        *int64 `json:"salaryMax"`
	SalaryNegotiable bool   `json:"salaryNegotiable"`

	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

type PublishReq struct {
	ID int64 `json:"id"`
	// Deadline 毫秒时间戳
	Deadline int64 `json:"deadline"`
}

type UpdateBasicInfoReq struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title"`
	CompanyName *string `json:"companyName"`
	Location    *string `json:"location"`
	Department  *string `json:"department"`
	Field       *string `json:"field"`
}

type UpdateSalaryInfoReq struct {
	ID               int64  `json:"id"`
	SalaryMin        *int64 `json:"salaryMin"`
	SalaryMax        *int64 `json:"salaryMax"`
	SalaryNegotiable *bool  `json:"salaryNegotiable"`
}

type UpdateContentReq struct {
	ID             int64   `json:"id"`
	Description    *string `json:"description"`
	Qualifications *string `json:"qualifications"`
	RequiredSkills *string `json:"requiredSkills"`
	Benefits       *string `json:"benefits"`
}

type UpdateWorkingConditionsReq struct {
	ID              int64   `json:"id"`
	JobType         *uint8  `json:"jobType"`
	ExperienceLevel *uint8  `json:"experienceLevel"`
	WorkingHours    *string `json:"workingHours"`
	RemotePossible  *bool   `json:"remotePossible"`
}

type UpdateContactInfoReq struct {
	ID           int64   `json:"id"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
}

type SearchReq struct {
	Title           *string `json:"title"`
	Location        *string `json:"location"`
	JobType         *uint8  `json:"jobType"`
	ExperienceLevel *uint8  `json:"experienceLevel"`
	SalaryMin       *int64  `json:"salaryMin"`
	SalaryMax       *int64  `json:"salaryMax"`
	Status          *uint8  `json:"status"`
	Offset          int     `json:"offset"`
	Limit           int     `json:"limit"`
}

type DeadlineApproachingReq struct {
	Days int `json:"days"`
}

type ApplyReq struct {
	PostingID     int64    `json:"postingId"`
	CoverLetter   string   `json:"coverLetter"`
	ResumeURL     string   `json:"resumeUrl"`
	PortfolioURLs []string `json:"portfolioUrls"`
}

type UpdateApplicationReq struct {
	ID            int64    `json:"id"`
	CoverLetter   string   `json:"coverLetter"`
	ResumeURL     string   `json:"resumeUrl"`
	PortfolioURLs []string `json:"portfolioUrls"`
}

type ScheduleInterviewReq struct {
	ID int64 `json:"id"`
	// InterviewAt 毫秒时间戳
	InterviewAt int64 `json:"interviewAt"`
}

type RejectReq struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type InterviewerNotesReq struct {
	ID    int64  `json:"id"`
	Notes string `json:"notes"`
}

type ListByPostingReq struct {
	PostingID int64 `json:"postingId"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

type PostingStats struct {
	PostingID           int64   `json:"postingId"`
	Status              uint8   `json:"status"`
	ViewCnt             int64   `json:"viewCnt"`
	ApplyCnt            int64   `json:"applyCnt"`
	ApplicationRate     float64 `json:"applicationRate"`
	DeadlineAt          int64   `json:"deadlineAt,omitempty"`
	DaysUntilDeadline   int64   `json:"daysUntilDeadline"`
	DeadlineApproaching bool    `json:"deadlineApproaching"`
	Expired             bool    `json:"expired"`
	Active              bool    `json:"active"`
}
