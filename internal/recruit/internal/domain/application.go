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

package domain

import "time"

type ApplicationStatus uint8

func (s ApplicationStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ApplicationStatusSubmitted          ApplicationStatus = 1
	ApplicationStatusReviewed           ApplicationStatus = 2
	ApplicationStatusDocumentPassed     ApplicationStatus = 3
	ApplicationStatusInterviewScheduled ApplicationStatus = 4
	ApplicationStatusInterviewPassed    ApplicationStatus = 5
	ApplicationStatusHired              ApplicationStatus = 6
	ApplicationStatusRejected           ApplicationStatus = 7
	ApplicationStatusWithdrawn          ApplicationStatus = 8
)

// Application is one candidate's attempt against one posting. Its status
// only changes through the guarded transition methods below. A transition
// whose guard fails leaves the application untouched and reports false;
// it is not an error.
type Application struct {
	ID          int64
	PostingID   int64
	ApplicantID int64

	CoverLetter   string
	ResumeURL     string
	PortfolioURLs []string

	Status ApplicationStatus

	AppliedAt            int64
	ReviewedAt           int64
	InterviewScheduledAt int64
	FinalDecisionAt      int64

	InterviewerNotes string
	RejectionReason  string

	Ctime int64
	Utime int64
}

func (a Application) InProgress() bool {
	switch a.Status {
	case ApplicationStatusHired, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return false
	default:
		return true
	}
}

func (a Application) CanBeWithdrawn() bool {
	switch a.Status {
	case ApplicationStatusSubmitted, ApplicationStatusReviewed,
		ApplicationStatusDocumentPassed, ApplicationStatusInterviewScheduled:
		return true
	default:
		return false
	}
}

// CanBeModified reports whether the candidate may still edit the
// submission content (cover letter, resume, portfolio).
func (a Application) CanBeModified() bool {
	return a.Status == ApplicationStatusSubmitted
}

func (a Application) PendingReview() bool {
	return a.Status == ApplicationStatusSubmitted || a.Status == ApplicationStatusReviewed
}

func (a *Application) Review(now time.Time) bool {
	if a.Status != ApplicationStatusSubmitted {
		return false
	}
	a.Status = ApplicationStatusReviewed
	a.ReviewedAt = now.UnixMilli()
	return true
}

func (a *Application) PassDocumentReview() bool {
	if a.Status != ApplicationStatusSubmitted && a.Status != ApplicationStatusReviewed {
		return false
	}
	a.Status = ApplicationStatusDocumentPassed
	return true
}

func (a *Application) ScheduleInterview(at time.Time) bool {
	if a.Status != ApplicationStatusDocumentPassed {
		return false
	}
	a.Status = ApplicationStatusInterviewScheduled
	a.InterviewScheduledAt = at.UnixMilli()
	return true
}

func (a *Application) PassInterview() bool {
	if a.Status != ApplicationStatusDocumentPassed && a.Status != ApplicationStatusInterviewScheduled {
		return false
	}
	a.Status = ApplicationStatusInterviewPassed
	return true
}

func (a *Application) Hire(now time.Time) bool {
	if a.Status != ApplicationStatusInterviewPassed {
		return false
	}
	a.Status = ApplicationStatusHired
	a.FinalDecisionAt = now.UnixMilli()
	return true
}

// Reject is allowed from every status except hired. Rejecting an already
// rejected application overwrites the previous reason.
func (a *Application) Reject(reason string, now time.Time) bool {
	if a.Status == ApplicationStatusHired {
		return false
	}
	a.Status = ApplicationStatusRejected
	a.RejectionReason = reason
	a.FinalDecisionAt = now.UnixMilli()
	return true
}

func (a *Application) Withdraw() bool {
	if a.Status == ApplicationStatusHired || a.Status == ApplicationStatusRejected {
		return false
	}
	a.Status = ApplicationStatusWithdrawn
	return true
}

func (a *Application) AddInterviewerNotes(notes string) {
	a.InterviewerNotes = notes
}

// UpdateDetails replaces the submission content. It does nothing once the
// application has moved past the submitted status.
func (a *Application) UpdateDetails(coverLetter, resumeURL string, portfolioURLs []string) bool {
	if !a.CanBeModified() {
		return false
	}
	a.CoverLetter = coverLetter
	a.ResumeURL = resumeURL
	a.PortfolioURLs = portfolioURLs
	return true
}
