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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/jobboard/internal/account/internal/domain"
	"github.com/ecodeclub/jobboard/internal/account/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAccountNotFound    = repository.ErrAccountNotFound
	ErrDuplicatedEmail    = repository.ErrDuplicatedEmail
	ErrInvalidCredentials = errors.New("账号或密码错误")
	ErrProfileNotFound    = errors.New("公司资料不存在")
)

//go:generate mockgen -source=./account.go -destination=../../mocks/account.mock.go -package=accountmocks -typed=true AccountService
type AccountService interface {
	// Register 注册账号，密码落库前会先散列
	Register(ctx context.Context, account domain.Account) (int64, error)
	// Login 校验邮箱密码，成功返回账号信息
	Login(ctx context.Context, email, password string) (domain.Account, error)
	Profile(ctx context.Context, id int64) (domain.Account, error)
	// IsCompanyAccount 给其他模块用的账号目录查询
	IsCompanyAccount(ctx context.Context, id int64) (bool, error)
	SaveCompanyProfile(ctx context.Context, profile domain.CompanyProfile) (int64, error)
	CompanyProfileByAccountID(ctx context.Context, accountID int64) (domain.CompanyProfile, error)
}

type accountService struct {
	repo repository.AccountRepository
}

func NewAccountService(repo repository.AccountRepository) AccountService {
	return &accountService{repo: repo}
}

func (s *accountService) Register(ctx context.Context, account domain.Account) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	account.Password = string(hash)
	if account.Type != domain.AccountTypeCompany {
		account.Type = domain.AccountTypeGeneral
	}
	return s.repo.Create(ctx, account)
}

func (s *accountService) Login(ctx context.Context, email, password string) (domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			// 不向外暴露账号是否存在
			return domain.Account{}, ErrInvalidCredentials
		}
		return domain.Account{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return domain.Account{}, ErrInvalidCredentials
	}
	account.Password = ""
	return account, nil
}

func (s *accountService) Profile(ctx context.Context, id int64) (domain.Account, error) {
	account, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	account.Password = ""
	return account, nil
}

func (s *accountService) IsCompanyAccount(ctx context.Context, id int64) (bool, error) {
	account, err := s.repo.FindById(ctx, id)
	if err != nil {
		return false, err
	}
	return account.IsCompany(), nil
}

func (s *accountService) SaveCompanyProfile(ctx context.Context, profile domain.CompanyProfile) (int64, error) {
	return s.repo.SaveProfile(ctx, profile)
}

func (s *accountService) CompanyProfileByAccountID(ctx context.Context, accountID int64) (domain.CompanyProfile, error) {
	profile, err := s.repo.ProfileByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domain.CompanyProfile{}, ErrProfileNotFound
		}
		return domain.CompanyProfile{}, err
	}
	return profile, nil
}
