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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// PostingStatus 的取值见 domain，落库用 tinyint
const (
	PostingStatusDraft     uint8 = 1
	PostingStatusPublished uint8 = 2
	PostingStatusClosed    uint8 = 3
)

type PostingDAO interface {
	Create(ctx context.Context, p Posting) (int64, error)
	FindById(ctx context.Context, id int64) (Posting, error)
	Update(ctx context.Context, p Posting) error
	IncrViewCnt(ctx context.Context, id int64) error
	// Delete 级联删除：先删投递，再删职位，同一事务
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query PostingQuery, offset, limit int) ([]Posting, error)
	SearchCount(ctx context.Context, query PostingQuery) (int64, error)
	ListByOwner(ctx context.Context, ownerId int64, offset, limit int) ([]Posting, error)
	CountByOwner(ctx context.Context, ownerId int64) (int64, error)
	AllByOwner(ctx context.Context, ownerId int64) ([]Posting, error)
	// DeadlineBetween 查找发布中且截止日期落在 [start, end] 内的职位，按截止日期升序
	DeadlineBetween(ctx context.Context, start, end int64) ([]Posting, error)
	DeadlineBetweenByOwner(ctx context.Context, ownerId int64, start, end int64) ([]Posting, error)
	// CloseExpired 把截止日期早于 before 的发布中职位批量关闭
	CloseExpired(ctx context.Context, before int64) (int64, error)
}

// PostingQuery 里的过滤条件都是可选的，nil 表示不过滤
type PostingQuery struct {
	Title           *string
	Location        *string
	JobType         *uint8
	ExperienceLevel *uint8
	SalaryMin       *int64
	SalaryMax       *int64
	Status          *uint8
}

type GORMPostingDAO struct {
	db *egorm.Component
}

func NewGORMPostingDAO(db *egorm.Component) PostingDAO {
	return &GORMPostingDAO{db: db}
}

func (g *GORMPostingDAO) Create(ctx context.Context, p Posting) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *GORMPostingDAO) FindById(ctx context.Context, id int64) (Posting, error) {
	var p Posting
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *GORMPostingDAO) Update(ctx context.Context, p Posting) error {
	p.Utime = time.Now().UnixMilli()
	// 计数器由单独的原子操作维护，全量更新不碰它们
	return g.db.WithContext(ctx).Model(&Posting{}).
		Where("id = ?", p.Id).
		Select("*").
		Omit("id", "sn", "owner_id", "view_cnt", "apply_cnt", "ctime").
		Updates(&p).Error
}

func (g *GORMPostingDAO) IncrViewCnt(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Model(&Posting{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"view_cnt": gorm.Expr("`view_cnt` + 1"),
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMPostingDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("posting_id = ?", id).Delete(&Application{}).Error
		if err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Posting{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}

func (g *GORMPostingDAO) searchBuilder(ctx context.Context, query PostingQuery) *gorm.DB {
	builder := g.db.WithContext(ctx).Model(&Posting{})
	if query.Status != nil {
		builder = builder.Where("status = ?", *query.Status)
	} else {
		// 面向求职者的搜索默认只看发布中的职位
		builder = builder.Where("status = ?", PostingStatusPublished)
	}
	if query.Title != nil {
		builder = builder.Where("title LIKE ?", "%"+*query.Title+"%")
	}
	if query.Location != nil {
		builder = builder.Where("location LIKE ?", "%"+*query.Location+"%")
	}
	if query.JobType != nil {
		builder = builder.Where("job_type = ?", *query.JobType)
	}
	if query.ExperienceLevel != nil {
		builder = builder.Where("experience_level = ?", *query.ExperienceLevel)
	}
	// 薪资条件和职位的薪资区间求交集，未填写薪资的职位不过滤掉
	if query.SalaryMin != nil {
		builder = builder.Where("salary_max IS NULL OR salary_max >= ?", *query.SalaryMin)
	}
	if query.SalaryMax != nil {
		builder = builder.Where("salary_min IS NULL OR salary_min <= ?", *query.SalaryMax)
	}
	return builder
}

func (g *GORMPostingDAO) Search(ctx context.Context, query PostingQuery, offset, limit int) ([]Posting, error) {
	var res []Posting
	err := g.searchBuilder(ctx, query).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMPostingDAO) SearchCount(ctx context.Context, query PostingQuery) (int64, error) {
	var count int64
	err := g.searchBuilder(ctx, query).Count(&count).Error
	return count, err
}

func (g *GORMPostingDAO) ListByOwner(ctx context.Context, ownerId int64, offset, limit int) ([]Posting, error) {
	var res []Posting
	err := g.db.WithContext(ctx).
		Where("owner_id = ?", ownerId).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMPostingDAO) CountByOwner(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Posting{}).
		Where("owner_id = ?", ownerId).Count(&count).Error
	return count, err
}

func (g *GORMPostingDAO) AllByOwner(ctx context.Context, ownerId int64) ([]Posting, error) {
	var res []Posting
	err := g.db.WithContext(ctx).
		Where("owner_id = ?", ownerId).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMPostingDAO) DeadlineBetween(ctx context.Context, start, end int64) ([]Posting, error) {
	var res []Posting
	err := g.db.WithContext(ctx).
		Where("status = ? AND deadline_at >= ? AND deadline_at <= ?",
			PostingStatusPublished, start, end).
		Order("deadline_at ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMPostingDAO) DeadlineBetweenByOwner(ctx context.Context, ownerId int64, start, end int64) ([]Posting, error) {
	var res []Posting
	err := g.db.WithContext(ctx).
		Where("owner_id = ? AND status = ? AND deadline_at >= ? AND deadline_at <= ?",
			ownerId, PostingStatusPublished, start, end).
		Order("deadline_at ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMPostingDAO) CloseExpired(ctx context.Context, before int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Posting{}).
		Where("status = ? AND deadline_at > 0 AND deadline_at < ?",
			PostingStatusPublished, before).
		Updates(map[string]any{
			"status": PostingStatusClosed,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

type Posting struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:职位自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_posting_sn;comment:职位序列号"`
	OwnerId int64  `gorm:"not null;index:idx_owner_id;comment:发布职位的企业账号ID"`

	Title          string `gorm:"type:varchar(255);not null;comment:职位名称"`
	CompanyName    string `gorm:"type:varchar(255);not null;comment:公司名称"`
	Location       string `gorm:"type:varchar(255);not null;comment:工作地点"`
	Department     string `gorm:"type:varchar(255);comment:所属部门"`
	Field          string `gorm:"type:varchar(255);comment:行业领域"`
	Description    string `gorm:"type:text;comment:职位描述"`
	Qualifications string `gorm:"type:text;comment:任职要求"`
	RequiredSkills string `gorm:"type:text;comment:技能要求"`
	Benefits       string `gorm:"type:text;comment:福利待遇"`

	JobType         uint8  `gorm:"type:tinyint unsigned;not null;comment:工作类型 1=全职 2=兼职 3=合同工 4=实习 5=自由职业"`
	ExperienceLevel uint8  `gorm:"type:tinyint unsigned;not null;comment:经验要求 1=应届 2=初级 3=中级 4=高级 5=负责人 6=高管"`
	WorkingHours    string `gorm:"type:varchar(255);comment:工作时间说明"`
	RemotePossible  bool   `gorm:"not null;default:0;comment:是否可远程"`

	SalaryMin        sql.NullInt64 `gorm:"comment:最低薪资，可为空"`
	SalaryMax        sql.NullInt64 `gorm:"comment:最高薪资，可为空"`
	SalaryNegotiable bool          `gorm:"not null;default:0;comment:薪资是否面议"`

	ContactEmail string `gorm:"type:varchar(255);comment:联系邮箱"`
	ContactPhone string `gorm:"type:varchar(64);comment:联系电话"`

	Status      uint8 `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_deadline,priority:1;comment:状态 1=草稿 2=发布中 3=已关闭"`
	PublishedAt int64 `gorm:"not null;default:0;comment:发布时间，0表示尚未发布"`
	DeadlineAt  int64 `gorm:"not null;default:0;index:idx_status_deadline,priority:2;comment:截止时间，0表示未设置"`

	ViewCnt  int64 `gorm:"not null;default:0;comment:浏览量"`
	ApplyCnt int64 `gorm:"not null;default:0;comment:投递数"`

	Ctime int64
	Utime int64
}

func (Posting) TableName() string {
	return "job_postings"
}
