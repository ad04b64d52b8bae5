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

func TestPosting_Publish(t *testing.T) {
	now := time.UnixMilli(1698750000000)
	deadline := now.Add(30 * 24 * time.Hour)

	testCases := []struct {
		name    string
		posting Posting
	}{
		{
			name:    "草稿发布",
			posting: Posting{Status: PostingStatusDraft},
		},
		{
			// publish 是幂等的，重复发布只会刷新时间戳和截止日期
			name: "重复发布",
			posting: Posting{
				Status:      PostingStatusPublished,
				PublishedAt: now.Add(-24 * time.Hour).UnixMilli(),
				DeadlineAt:  now.Add(24 * time.Hour).UnixMilli(),
			},
		},
		{
			name:    "已关闭的也可以直接发布",
			posting: Posting{Status: PostingStatusClosed},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.posting
			p.Publish(deadline, now)
			assert.Equal(t, PostingStatusPublished, p.Status)
			assert.Equal(t, now.UnixMilli(), p.PublishedAt)
			assert.Equal(t, deadline.UnixMilli(), p.DeadlineAt)
		})
	}
}

func TestPosting_Reopen(t *testing.T) {
	now := time.UnixMilli(1698750000000)
	deadline := now.Add(7 * 24 * time.Hour)

	testCases := []struct {
		name       string
		posting    Posting
		wantOK     bool
		wantStatus PostingStatus
	}{
		{
			name:       "关闭后重新开放",
			posting:    Posting{Status: PostingStatusClosed, ViewCount: 10, ApplicationCount: 3},
			wantOK:     true,
			wantStatus: PostingStatusPublished,
		},
		{
			name:       "草稿不能重新开放",
			posting:    Posting{Status: PostingStatusDraft},
			wantOK:     false,
			wantStatus: PostingStatusDraft,
		},
		{
			name:       "发布中不能重新开放",
			posting:    Posting{Status: PostingStatusPublished},
			wantOK:     false,
			wantStatus: PostingStatusPublished,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.posting
			ok := p.Reopen(deadline, now)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantStatus, p.Status)
			if tc.wantOK {
				// 重新开放保留累计的浏览量和投递数
				assert.Equal(t, tc.posting.ViewCount, p.ViewCount)
				assert.Equal(t, tc.posting.ApplicationCount, p.ApplicationCount)
				assert.Equal(t, deadline.UnixMilli(), p.DeadlineAt)
			}
		})
	}
}

func TestPosting_Close(t *testing.T) {
	for _, status := range []PostingStatus{
		PostingStatusDraft,
		PostingStatusPublished,
		PostingStatusClosed,
	} {
		p := Posting{Status: status}
		p.Close()
		assert.Equal(t, PostingStatusClosed, p.Status)
	}
}

func TestPosting_CanApply(t *testing.T) {
	now := time.UnixMilli(1698750000000)

	testCases := []struct {
		name    string
		posting Posting
		want    bool
	}{
		{
			name:    "发布中且未过期",
			posting: Posting{Status: PostingStatusPublished, DeadlineAt: now.Add(24 * time.Hour).UnixMilli()},
			want:    true,
		},
		{
			name:    "发布中且截止日期就是现在",
			posting: Posting{Status: PostingStatusPublished, DeadlineAt: now.UnixMilli()},
			want:    true,
		},
		{
			// 没有截止日期视作未过期
			name:    "发布中但没有截止日期",
			posting: Posting{Status: PostingStatusPublished},
			want:    true,
		},
		{
			name:    "已过期",
			posting: Posting{Status: PostingStatusPublished, DeadlineAt: now.Add(-time.Millisecond).UnixMilli()},
			want:    false,
		},
		{
			name:    "草稿",
			posting: Posting{Status: PostingStatusDraft},
			want:    false,
		},
		{
			name:    "已关闭",
			posting: Posting{Status: PostingStatusClosed, DeadlineAt: now.Add(24 * time.Hour).UnixMilli()},
			want:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.posting.CanApply(now))
		})
	}
}

func TestPosting_Update(t *testing.T) {
	title := "Go 后端工程师"
	salaryMin := int64(20000)
	negotiable := true
	remote := true

	p := Posting{
		Title:       "后端工程师",
		CompanyName: "某公司",
		Location:    "北京",
		Description: "负责后端服务开发",
		SalaryMax:   ptr(int64(30000)),
	}

	// nil 字段保持原值，不会被覆盖成空
	p.UpdateBasicInfo(PostingBasicInfo{Title: &title})
	assert.Equal(t, "Go 后端工程师", p.Title)
	assert.Equal(t, "某公司", p.CompanyName)
	assert.Equal(t, "北京", p.Location)

	p.UpdateSalaryInfo(PostingSalaryInfo{SalaryMin: &salaryMin, SalaryNegotiable: &negotiable})
	assert.Equal(t, int64(20000), *p.SalaryMin)
	assert.Equal(t, int64(30000), *p.SalaryMax)
	assert.True(t, p.SalaryNegotiable)

	p.UpdateContent(PostingContent{})
	assert.Equal(t, "负责后端服务开发", p.Description)

	p.UpdateWorkingConditions(PostingWorkingConditions{RemotePossible: &remote})
	assert.True(t, p.RemotePossible)

	email := "hr@example.com"
	p.UpdateContactInfo(PostingContactInfo{ContactEmail: &email})
	assert.Equal(t, "hr@example.com", p.ContactEmail)
	assert.Equal(t, "", p.ContactPhone)
}

func ptr[T any](t T) *T {
	return &t
}
