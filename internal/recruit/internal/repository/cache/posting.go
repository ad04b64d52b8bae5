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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/domain"
	"github.com/pkg/errors"
)

var ErrPostingNotCached = errors.New("职位不在缓存中")

const expiration = 24 * time.Hour

type PostingCache interface {
	SetPosting(ctx context.Context, posting domain.Posting) error
	GetPosting(ctx context.Context, id int64) (domain.Posting, error)
	DelPosting(ctx context.Context, id int64) error
}

type PostingECache struct {
	ec ecache.Cache
}

func NewPostingECache(ec ecache.Cache) PostingCache {
	return &PostingECache{
		ec: &ecache.NamespaceCache{
			Namespace: "posting:",
			C:         ec,
		},
	}
}

func (c *PostingECache) SetPosting(ctx context.Context, posting domain.Posting) error {
	data, err := json.Marshal(posting)
	if err != nil {
		return errors.Wrap(err, "序列化职位失败")
	}
	return c.ec.Set(ctx, c.postingKey(posting.ID), string(data), expiration)
}

func (c *PostingECache) GetPosting(ctx context.Context, id int64) (domain.Posting, error) {
	val := c.ec.Get(ctx, c.postingKey(id))
	if val.KeyNotFound() {
		return domain.Posting{}, ErrPostingNotCached
	}
	if val.Err != nil {
		return domain.Posting{}, errors.Wrap(val.Err, "查询职位缓存出错")
	}
	var posting domain.Posting
	err := json.Unmarshal([]byte(val.Val.(string)), &posting)
	if err != nil {
		return domain.Posting{}, errors.Wrap(err, "反序列化职位失败")
	}
	return posting, nil
}

func (c *PostingECache) DelPosting(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.postingKey(id))
	return err
}

func (c *PostingECache) postingKey(id int64) string {
	// 只缓存详情页，计数器不进缓存
	return fmt.Sprintf("detail:%d", id)
}
