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

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrDuplicatedEmail = errors.New("邮箱冲突")
)

type AccountDAO interface {
	Insert(ctx context.Context, a Account) (int64, error)
	FindById(ctx context.Context, id int64) (Account, error)
	FindByEmail(ctx context.Context, email string) (Account, error)
	// SaveProfile 新增或整体覆盖公司资料
	SaveProfile(ctx context.Context, p CompanyProfile) (int64, error)
	ProfileByAccountId(ctx context.Context, accountId int64) (CompanyProfile, error)
}

type GORMAccountDAO struct {
	db *egorm.Component
}

func NewGORMAccountDAO(db *egorm.Component) AccountDAO {
	return &GORMAccountDAO{db: db}
}

func (g *GORMAccountDAO) Insert(ctx context.Context, a Account) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := g.db.WithContext(ctx).Create(&a).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedEmail
			}
		}
		return 0, err
	}
	return a.Id, nil
}

func (g *GORMAccountDAO) FindById(ctx context.Context, id int64) (Account, error) {
	var a Account
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (g *GORMAccountDAO) FindByEmail(ctx context.Context, email string) (Account, error) {
	var a Account
	err := g.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	return a, err
}

func (g *GORMAccountDAO) SaveProfile(ctx context.Context, p CompanyProfile) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":     p.Name,
			"industry": p.Industry,
			"website":  p.Website,
			"address":  p.Address,
			"intro":    p.Intro,
			"utime":    p.Utime,
		}),
	}).Create(&p).Error
	if err != nil {
		return 0, err
	}
	return p.Id, nil
}

func (g *GORMAccountDAO) ProfileByAccountId(ctx context.Context, accountId int64) (CompanyProfile, error) {
	var p CompanyProfile
	err := g.db.WithContext(ctx).Where("account_id = ?", accountId).First(&p).Error
	return p, err
}

type Account struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:账号自增ID"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_account_email;comment:登录邮箱"`
	Password string `gorm:"type:varchar(255);not null;comment:密码哈希"`
	Nickname string `gorm:"type:varchar(255);comment:昵称"`
	Type     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:账号类型 1=求职者 2=企业"`
	Ctime    int64
	Utime    int64
}

func (Account) TableName() string {
	return "accounts"
}

type CompanyProfile struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:公司资料自增ID"`
	AccountId int64  `gorm:"not null;uniqueIndex:uniq_profile_account_id;comment:所属企业账号ID"`
	Name      string `gorm:"type:varchar(255);not null;comment:公司名称"`
	Industry  string `gorm:"type:varchar(255);comment:所属行业"`
	Website   string `gorm:"type:varchar(512);comment:官网"`
	Address   string `gorm:"type:varchar(512);comment:地址"`
	Intro     string `gorm:"type:text;comment:公司简介"`
	Ctime     int64
	Utime     int64
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}
