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

// PostingQuery is a search filter. Every field is optional; nil means
// "don't filter on this field". Active predicates are combined with AND.
// When Status is nil, candidate-facing search defaults to published.
type PostingQuery struct {
	Title           *string
	Location        *string
	JobType         *JobType
	ExperienceLevel *ExperienceLevel
	SalaryMin       *int64
	SalaryMax       *int64
	Status          *PostingStatus
}

// PostingStats is a per-posting read-only summary.
type PostingStats struct {
	PostingID        int64
	Status           PostingStatus
	ViewCount        int64
	ApplicationCount int64
	// ApplicationRate is applications per hundred views, rounded to two
	// decimal places. It is zero when the posting has no views.
	ApplicationRate float64
	DeadlineAt      int64
	// DaysUntilDeadline is only meaningful when DeadlineAt is set. It goes
	// negative once the deadline date has passed.
	DaysUntilDeadline   int64
	DeadlineApproaching bool
	Expired             bool
	Active              bool
}
