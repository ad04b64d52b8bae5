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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDuplicatedApplication = errors.New("重复投递同一职位")

type ApplicationDAO interface {
	// Insert 写入投递记录并在同一事务里增加职位的投递计数
	Insert(ctx context.Context, app Application) (int64, error)
	FindById(ctx context.Context, id int64) (Application, error)
	Update(ctx context.Context, app Application) error
	Exist(ctx context.Context, applicantId, postingId int64) (bool, error)
	ListByApplicant(ctx context.Context, applicantId int64, offset, limit int) ([]Application, error)
	CountByApplicant(ctx context.Context, applicantId int64) (int64, error)
	ListByPosting(ctx context.Context, postingId int64, offset, limit int) ([]Application, error)
	CountByPosting(ctx context.Context, postingId int64) (int64, error)
	AllByPosting(ctx context.Context, postingId int64) ([]Application, error)
	// Delete 删除投递记录并在同一事务里减少职位的投递计数，计数不会降到 0 以下
	Delete(ctx context.Context, id int64) error
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Insert(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime, app.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicatedApplication
				}
			}
			return err
		}
		return tx.Model(&Posting{}).
			Where("id = ?", app.PostingId).
			Updates(map[string]any{
				"apply_cnt": gorm.Expr("`apply_cnt` + 1"),
				"utime":     now,
			}).Error
	})
	if err != nil {
		return 0, err
	}
	return app.Id, nil
}

func (g *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) Update(ctx context.Context, app Application) error {
	app.Utime = time.Now().UnixMilli()
	return g.db.WithContext(ctx).Model(&Application{}).
		Where("id = ?", app.Id).
		Select("*").
		Omit("id", "posting_id", "applicant_id", "ctime").
		Updates(&app).Error
}

func (g *GORMApplicationDAO) Exist(ctx context.Context, applicantId, postingId int64) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("applicant_id = ? AND posting_id = ?", applicantId, postingId).
		Count(&count).Error
	return count > 0, err
}

func (g *GORMApplicationDAO) ListByApplicant(ctx context.Context, applicantId int64, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("applicant_id = ?", applicantId).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) CountByApplicant(ctx context.Context, applicantId int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("applicant_id = ?", applicantId).Count(&count).Error
	return count, err
}

func (g *GORMApplicationDAO) ListByPosting(ctx context.Context, postingId int64, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("posting_id = ?", postingId).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) CountByPosting(ctx context.Context, postingId int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Application{}).
		Where("posting_id = ?", postingId).Count(&count).Error
	return count, err
}

func (g *GORMApplicationDAO) AllByPosting(ctx context.Context, postingId int64) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("posting_id = ?", postingId).
		Order("applied_at DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app Application
		if err := tx.Where("id = ?", id).First(&app).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&Application{}).Error; err != nil {
			return err
		}
		return tx.Model(&Posting{}).
			Where("id = ? AND apply_cnt > 0", app.PostingId).
			Updates(map[string]any{
				"apply_cnt": gorm.Expr("`apply_cnt` - 1"),
				"utime":     time.Now().UnixMilli(),
			}).Error
	})
}

type Application struct {
	Id          int64 `gorm:"primaryKey;autoIncrement;comment:投递自增ID"`
	PostingId   int64 `gorm:"not null;uniqueIndex:uniq_applicant_posting,priority:2;index:idx_posting_id;comment:职位ID"`
	ApplicantId int64 `gorm:"not null;uniqueIndex:uniq_applicant_posting,priority:1;comment:求职者账号ID"`

	CoverLetter   string                    `gorm:"type:text;comment:求职信"`
	ResumeURL     string                    `gorm:"type:varchar(512);comment:简历链接"`
	PortfolioURLs sqlx.JsonColumn[[]string] `gorm:"type:text;comment:作品集链接列表"`

	Status uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=已投递 2=已筛选 3=材料通过 4=面试排期 5=面试通过 6=已录用 7=已拒绝 8=已撤回"`

	AppliedAt            int64 `gorm:"not null;index:idx_applied_at;comment:投递时间"`
	ReviewedAt           int64 `gorm:"not null;default:0;comment:筛选时间"`
	InterviewScheduledAt int64 `gorm:"not null;default:0;comment:面试时间"`
	FinalDecisionAt      int64 `gorm:"not null;default:0;comment:最终决定时间"`

	InterviewerNotes string `gorm:"type:text;comment:面试官备注"`
	RejectionReason  string `gorm:"type:text;comment:拒绝理由"`

	Ctime int64
	Utime int64
}

func (Application) TableName() string {
	return "job_applications"
}
