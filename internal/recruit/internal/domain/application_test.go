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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplication_Review(t *testing.T) {
	now := time.UnixMilli(1698750000000)

	testCases := []struct {
		name       string
		status     ApplicationStatus
		wantOK     bool
		wantStatus ApplicationStatus
	}{
		{
			name:       "已投递可以进入筛选",
			status:     ApplicationStatusSubmitted,
			wantOK:     true,
			wantStatus: ApplicationStatusReviewed,
		},
		{
			// 守卫失败静默忽略，状态不变
			name:       "已筛选不能重复筛选",
			status:     ApplicationStatusReviewed,
			wantOK:     false,
			wantStatus: ApplicationStatusReviewed,
		},
		{
			name:       "已录用不能筛选",
			status:     ApplicationStatusHired,
			wantOK:     false,
			wantStatus: ApplicationStatusHired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := Application{Status: tc.status}
			ok := a.Review(now)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantStatus, a.Status)
			if tc.wantOK {
				assert.Equal(t, now.UnixMilli(), a.ReviewedAt)
			}
		})
	}
}

func TestApplication_PassDocumentReview(t *testing.T) {
	testCases := []struct {
		name   string
		status ApplicationStatus
		wantOK bool
	}{
		{name: "已投递直接通过", status: ApplicationStatusSubmitted, wantOK: true},
		{name: "已筛选通过", status: ApplicationStatusReviewed, wantOK: true},
		{name: "已进入面试阶段", status: ApplicationStatusInterviewScheduled, wantOK: false},
		{name: "已拒绝", status: ApplicationStatusRejected, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := Application{Status: tc.status}
			ok := a.PassDocumentReview()
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, ApplicationStatusDocumentPassed, a.Status)
			} else {
				assert.Equal(t, tc.status, a.Status)
			}
		})
	}
}

func TestApplication_ScheduleInterview(t *testing.T) {
	at := time.UnixMilli(1699000000000)

	a := Application{Status: ApplicationStatusDocumentPassed}
	assert.True(t, a.ScheduleInterview(at))
	assert.Equal(t, ApplicationStatusInterviewScheduled, a.Status)
	assert.Equal(t, at.UnixMilli(), a.InterviewScheduledAt)

	// 重复安排面试无效
	assert.False(t, a.ScheduleInterview(at.Add(time.Hour)))
	assert.Equal(t, at.UnixMilli(), a.InterviewScheduledAt)

	b := Application{Status: ApplicationStatusSubmitted}
	assert.False(t, b.ScheduleInterview(at))
	assert.Equal(t, ApplicationStatusSubmitted, b.Status)
}

func TestApplication_PassInterview(t *testing.T) {
	testCases := []struct {
		name   string
		status ApplicationStatus
		wantOK bool
	}{
		// 材料通过后可以不经排期直接通过面试
		{name: "材料通过直接过面", status: ApplicationStatusDocumentPassed, wantOK: true},
		{name: "面试排期后过面", status: ApplicationStatusInterviewScheduled, wantOK: true},
		{name: "已投递", status: ApplicationStatusSubmitted, wantOK: false},
		{name: "已撤回", status: ApplicationStatusWithdrawn, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := Application{Status: tc.status}
			ok := a.PassInterview()
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, ApplicationStatusInterviewPassed, a.Status)
			}
		})
	}
}

func TestApplication_Hire(t *testing.T) {
	now := time.UnixMilli(1698750000000)

	a := Application{Status: ApplicationStatusInterviewPassed}
	assert.True(t, a.Hire(now))
	assert.Equal(t, ApplicationStatusHired, a.Status)
	assert.Equal(t, now.UnixMilli(), a.FinalDecisionAt)

	b := Application{Status: ApplicationStatusInterviewScheduled}
	assert.False(t, b.Hire(now))
	assert.Equal(t, ApplicationStatusInterviewScheduled, b.Status)
	assert.Equal(t, int64(0), b.FinalDecisionAt)
}

func TestApplication_Reject(t *testing.T) {
	now := time.UnixMilli(1698750000000)

	t.Run("任意非录用状态都可以拒绝", func(t *testing.T) {
		for _, status := range []ApplicationStatus{
			ApplicationStatusSubmitted,
			ApplicationStatusReviewed,
			ApplicationStatusDocumentPassed,
			ApplicationStatusInterviewScheduled,
			ApplicationStatusInterviewPassed,
			ApplicationStatusWithdrawn,
		} {
			a := Application{Status: status}
			assert.True(t, a.Reject("不合适", now))
			assert.Equal(t, ApplicationStatusRejected, a.Status)
			assert.Equal(t, "不合适", a.RejectionReason)
			assert.Equal(t, now.UnixMilli(), a.FinalDecisionAt)
		}
	})

	t.Run("已录用不能拒绝", func(t *testing.T) {
		a := Application{Status: ApplicationStatusHired}
		assert.False(t, a.Reject("不合适", now))
		assert.Equal(t, ApplicationStatusHired, a.Status)
		assert.Equal(t, "", a.RejectionReason)
	})

	// 守卫只检查非录用状态，所以重复拒绝会覆盖之前的理由
	t.Run("重复拒绝覆盖理由", func(t *testing.T) {
		a := Application{Status: ApplicationStatusSubmitted}
		assert.True(t, a.Reject("经验不足", now))
		assert.True(t, a.Reject("岗位已撤销", now.Add(time.Hour)))
		assert.Equal(t, ApplicationStatusRejected, a.Status)
		assert.Equal(t, "岗位已撤销", a.RejectionReason)
		assert.Equal(t, now.Add(time.Hour).UnixMilli(), a.FinalDecisionAt)
	})
}

func TestApplication_Withdraw(t *testing.T) {
	testCases := []struct {
		name   string
		status ApplicationStatus
		wantOK bool
	}{
		{name: "已投递可以撤回", status: ApplicationStatusSubmitted, wantOK: true},
		{name: "面试排期后也可以撤回", status: ApplicationStatusInterviewScheduled, wantOK: true},
		{name: "已录用不能撤回", status: ApplicationStatusHired, wantOK: false},
		{name: "已拒绝不能撤回", status: ApplicationStatusRejected, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := Application{Status: tc.status}
			ok := a.Withdraw()
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, ApplicationStatusWithdrawn, a.Status)
			} else {
				assert.Equal(t, tc.status, a.Status)
			}
		})
	}
}

func TestApplication_UpdateDetails(t *testing.T) {
	a := Application{
		Status:      ApplicationStatusSubmitted,
		CoverLetter: "求职信",
		ResumeURL:   "https://cdn.example.com/resume-v1.pdf",
	}
	assert.True(t, a.UpdateDetails("新的求职信", "https://cdn.example.com/resume-v2.pdf",
		[]string{"https://github.com/candidate"}))
	assert.Equal(t, "新的求职信", a.CoverLetter)
	assert.Equal(t, "https://cdn.example.com/resume-v2.pdf", a.ResumeURL)

	// 进入筛选之后就不允许再修改投递内容
	a.Status = ApplicationStatusReviewed
	assert.False(t, a.UpdateDetails("再改一次", "", nil))
	assert.Equal(t, "新的求职信", a.CoverLetter)
}

func TestApplication_Predicates(t *testing.T) {
	assert.True(t, Application{Status: ApplicationStatusSubmitted}.PendingReview())
	assert.True(t, Application{Status: ApplicationStatusReviewed}.PendingReview())
	assert.False(t, Application{Status: ApplicationStatusDocumentPassed}.PendingReview())

	assert.True(t, Application{Status: ApplicationStatusInterviewPassed}.InProgress())
	assert.False(t, Application{Status: ApplicationStatusWithdrawn}.InProgress())

	assert.True(t, Application{Status: ApplicationStatusDocumentPassed}.CanBeWithdrawn())
	assert.False(t, Application{Status: ApplicationStatusInterviewPassed}.CanBeWithdrawn())
}
