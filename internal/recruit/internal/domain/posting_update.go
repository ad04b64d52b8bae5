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

// Partial-update payloads. A nil field means "leave unchanged", so callers
// can never null-overwrite existing data. Updates are permitted in any
// status: postings remain editable after publication.

type PostingBasicInfo struct {
	Title       *string
	CompanyName *string
	Location    *string
	Department  *string
	Field       *string
}

type PostingSalaryInfo struct {
	SalaryMin        *int64
	SalaryMax        *int64
	SalaryNegotiable *bool
}

type PostingContent struct {
	Description    *string
	Qualifications *string
	RequiredSkills *string
	Benefits       *string
}

type PostingWorkingConditions struct {
	JobType         *JobType
	ExperienceLevel *ExperienceLevel
	WorkingHours    *string
	RemotePossible  *bool
}

type PostingContactInfo struct {
	ContactEmail *string
	ContactPhone *string
}

func (p *Posting) UpdateBasicInfo(info PostingBasicInfo) {
	if info.Title != nil {
		p.Title = *info.Title
	}
	if info.CompanyName != nil {
		p.CompanyName = *info.CompanyName
	}
	if info.Location != nil {
		p.Location = *info.Location
	}
	if info.Department != nil {
		p.Department = *info.Department
	}
	if info.Field != nil {
		p.Field = *info.Field
	}
}

func (p *Posting) UpdateSalaryInfo(info PostingSalaryInfo) {
	if info.SalaryMin != nil {
		p.SalaryMin = info.SalaryMin
	}
	if info.SalaryMax != nil {
		p.SalaryMax = info.SalaryMax
	}
	if info.SalaryNegotiable != nil {
		p.SalaryNegotiable = *info.SalaryNegotiable
	}
}

func (p *Posting) UpdateContent(content PostingContent) {
	if content.Description != nil {
		p.Description = *content.Description
	}
	if content.Qualifications != nil {
		p.Qualifications = *content.Qualifications
	}
	if content.RequiredSkills != nil {
		p.RequiredSkills = *content.RequiredSkills
	}
	if content.Benefits != nil {
		p.Benefits = *content.Benefits
	}
}

func (p *Posting) UpdateWorkingConditions(cond PostingWorkingConditions) {
	if cond.JobType != nil {
		p.JobType = *cond.JobType
	}
	if cond.ExperienceLevel != nil {
		p.ExperienceLevel = *cond.ExperienceLevel
	}
	if cond.WorkingHours != nil {
		p.WorkingHours = *cond.WorkingHours
	}
	if cond.RemotePossible != nil {
		p.RemotePossible = *cond.RemotePossible
	}
}

func (p *Posting) UpdateContactInfo(info PostingContactInfo) {
	if info.ContactEmail != nil {
		p.ContactEmail = *info.ContactEmail
	}
	if info.ContactPhone != nil {
		p.ContactPhone = *info.ContactPhone
	}
}
