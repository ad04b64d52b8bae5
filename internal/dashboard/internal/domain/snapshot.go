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

// CompanySnapshot 企业看板的一次性全量快照，现算现取，不落库
type CompanySnapshot struct {
	CompanyName string

	TotalPostings  int64
	ActivePostings int64

	TotalApplicants       int64
	NewApplicantsToday    int64
	NewApplicantsThisWeek int64
	PendingReview         int64
	InterviewScheduled    int64
	HiredThisMonth        int64

	// AverageApplicationRate 是各职位投递率的平均值（百分比，保留两位小数）。
	// 没有浏览量的职位不参与计算
	AverageApplicationRate float64

	RecentApplications []RecentApplication
	RecentPostings     []RecentPosting

	// DeadlineApproaching 七天内截止的发布中职位数
	DeadlineApproaching int64
}

type RecentApplication struct {
	ID           int64
	PostingID    int64
	PostingTitle string
	ApplicantID  int64
	Status       uint8
	// CoverLetterPreview 最多保留 100 个字符，截断时以 ... 结尾
	CoverLetterPreview string
	AppliedAt          int64
}

type RecentPosting struct {
	ID               int64
	Title            string
	Status           uint8
	ViewCount        int64
	ApplicationCount int64
	Ctime            int64
	DeadlineAt       int64
	// DaysUntilDeadline 没设置截止日期时恒为零，以 DeadlineAt 是否为零区分
	DaysUntilDeadline   int64
	DeadlineApproaching bool
}
