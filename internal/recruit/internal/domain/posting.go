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

type PostingStatus uint8

func (s PostingStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PostingStatusDraft     PostingStatus = 1
	PostingStatusPublished PostingStatus = 2
	PostingStatusClosed    PostingStatus = 3
)

type JobType uint8

func (t JobType) ToUint8() uint8 {
	return uint8(t)
}

const (
	JobTypeFullTime   JobType = 1
	JobTypePartTime   JobType = 2
	JobTypeContract   JobType = 3
	JobTypeInternship JobType = 4
	JobTypeFreelance  JobType = 5
)

type ExperienceLevel uint8

func (l ExperienceLevel) ToUint8() uint8 {
	return uint8(l)
}

const (
	ExperienceLevelEntry     ExperienceLevel = 1
	ExperienceLevelJunior    ExperienceLevel = 2
	ExperienceLevelMid       ExperienceLevel = 3
	ExperienceLevelSenior    ExperienceLevel = 4
	ExperienceLevelLead      ExperienceLevel = 5
	ExperienceLevelExecutive ExperienceLevel = 6
)

type Posting struct {
	ID      int64
	SN      string
	OwnerID int64

	Title          string
	CompanyName    string
	Location       string
	Department     string
	Field          string
	Description    string
	Qualifications string
	RequiredSkills string
	Benefits       string

	JobType         JobType
	ExperienceLevel ExperienceLevel
	WorkingHours    string
	RemotePossible  bool

	// Salary bounds are optional. Nil means the bound is unspecified.
	SalaryMin        *int64
	SalaryMax        *int64
	SalaryNegotiable bool

	ContactEmail string
	ContactPhone string

	Status PostingStatus
	// PublishedAt and DeadlineAt stay zero until the posting is published.
	PublishedAt int64
	DeadlineAt  int64

	ViewCount        int64
	ApplicationCount int64

	Ctime int64
	Utime int64
}

func (p Posting) Draft() bool {
	return p.Status == PostingStatusDraft
}

func (p Posting) Published() bool {
	return p.Status == PostingStatusPublished
}

func (p Posting) Closed() bool {
	return p.Status == PostingStatusClosed
}

func (p Posting) Expired(now time.Time) bool {
	if p.DeadlineAt == 0 {
		return false
	}
	return p.DeadlineAt < now.UnixMilli()
}

// CanApply reports whether a candidate may submit an application right now.
func (p Posting) CanApply(now time.Time) bool {
	return p.Published() && !p.Expired(now)
}

// DaysUntilDeadline returns the number of calendar days from today until the
// deadline, negative once the deadline has passed. The second return value is
// false when the posting carries no deadline.
func (p Posting) DaysUntilDeadline(now time.Time) (int64, bool) {
	if p.DeadlineAt == 0 {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d := time.UnixMilli(p.DeadlineAt).In(now.Location())
	deadline := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	return int64(deadline.Sub(today) / (24 * time.Hour)), true
}

// DeadlineApproaching reports whether the deadline falls within the next
// seven days, today included.
func (p Posting) DeadlineApproaching(now time.Time) bool {
	days, ok := p.DaysUntilDeadline(now)
	return ok && days >= 0 && days <= 7
}

// Publish moves the posting to the published state. Publishing an already
// published posting just refreshes the publish timestamp and deadline.
func (p *Posting) Publish(deadline time.Time, now time.Time) {
	p.Status = PostingStatusPublished
	p.PublishedAt = now.UnixMilli()
	p.DeadlineAt = deadline.UnixMilli()
}

// Close moves the posting to the closed state regardless of its current state.
func (p *Posting) Close() {
	p.Status = PostingStatusClosed
}

// Reopen republishes a closed posting with a fresh deadline. It does nothing
// unless the posting is closed. Accumulated counters are kept.
func (p *Posting) Reopen(deadline time.Time, now time.Time) bool {
	if !p.Closed() {
		return false
	}
	p.Status = PostingStatusPublished
	p.PublishedAt = now.UnixMilli()
	p.DeadlineAt = deadline.UnixMilli()
	return true
}
