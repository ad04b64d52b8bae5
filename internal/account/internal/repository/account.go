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

package repository

import (
	"context"

	"github.com/ecodeclub/jobboard/internal/account/internal/domain"
	"github.com/ecodeclub/jobboard/internal/account/internal/repository/dao"
)

var (
	ErrAccountNotFound = dao.ErrRecordNotFound
	ErrDuplicatedEmail = dao.ErrDuplicatedEmail
)

//go:generate mockgen -source=./account.go -destination=./mocks/account.mock.go -package=repomocks -typed=true AccountRepository
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Account, error)
	FindByEmail(ctx context.Context, email string) (domain.Account, error)
	SaveProfile(ctx context.Context, profile domain.CompanyProfile) (int64, error)
	ProfileByAccountID(ctx context.Context, accountID int64) (domain.CompanyProfile, error)
}

type accountRepository struct {
	dao dao.AccountDAO
}

func NewAccountRepository(d dao.AccountDAO) AccountRepository {
	return &accountRepository{dao: d}
}

func (r *accountRepository) Create(ctx context.Context, account domain.Account) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(account))
}

func (r *accountRepository) FindById(ctx context.Context, id int64) (domain.Account, error) {
	a, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomain(a), nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (domain.Account, error) {
	a, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomain(a), nil
}

func (r *accountRepository) SaveProfile(ctx context.Context, profile domain.CompanyProfile) (int64, error) {
	return r.dao.SaveProfile(ctx, dao.CompanyProfile{
		Id:        profile.ID,
		AccountId: profile.AccountID,
		Name:      profile.Name,
		Industry:  profile.Industry,
		Website:   profile.Website,
		Address:   profile.Address,
		Intro:     profile.Intro,
	})
}

func (r *accountRepository) ProfileByAccountID(ctx context.Context, accountID int64) (domain.CompanyProfile, error) {
	p, err := r.dao.ProfileByAccountId(ctx, accountID)
	if err != nil {
		return domain.CompanyProfile{}, err
	}
	return domain.CompanyProfile{
		ID:        p.Id,
		AccountID: p.AccountId,
		Name:      p.Name,
		Industry:  p.Industry,
		Website:   p.Website,
		Address:   p.Address,
		Intro:     p.Intro,
		Ctime:     p.Ctime,
		Utime:     p.Utime,
	}, nil
}

func (r *accountRepository) toEntity(a domain.Account) dao.Account {
	return dao.Account{
		Id:       a.ID,
		Email:    a.Email,
		Password: a.Password,
		Nickname: a.Nickname,
		Type:     a.Type.ToUint8(),
	}
}

func (r *accountRepository) toDomain(a dao.Account) domain.Account {
	return domain.Account{
		ID:       a.Id,
		Email:    a.Email,
		Password: a.Password,
		Nickname: a.Nickname,
		Type:     domain.AccountType(a.Type),
		Ctime:    a.Ctime,
		Utime:    a.Utime,
	}
}
