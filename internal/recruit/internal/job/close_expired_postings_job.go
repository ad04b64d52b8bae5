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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/jobboard/internal/recruit/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// CloseExpiredPostingsJob 定时把已过截止日期的发布中职位关闭。
// 求职侧读路径本来就会用截止日期兜底，这里只是让状态尽快落到已关闭
type CloseExpiredPostingsJob struct {
	svc     service.PostingService
	timeout time.Duration
	logger  *elog.Component
}

func NewCloseExpiredPostingsJob(svc service.PostingService, timeout time.Duration) *CloseExpiredPostingsJob {
	return &CloseExpiredPostingsJob{
		svc:     svc,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (c *CloseExpiredPostingsJob) Name() string {
	return "CloseExpiredPostingsJob"
}

func (c *CloseExpiredPostingsJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	closed, err := c.svc.CloseExpired(ctx)
	if err != nil {
		return fmt.Errorf("关闭过期职位失败: %w", err)
	}
	if closed > 0 {
		c.logger.Info("关闭过期职位", elog.Int64("closed", closed))
	}
	return nil
}
