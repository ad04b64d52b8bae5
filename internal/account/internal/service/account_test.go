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
	"testing"

	"github.com/ecodeclub/jobboard/internal/account/internal/domain"
	"github.com/ecodeclub/jobboard/internal/account/internal/repository"
	repomocks "github.com/ecodeclub/jobboard/internal/account/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountService_Register(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		account  domain.Account
		wantType domain.AccountType
	}{
		{
			name:     "注册企业账号",
			account:  domain.Account{Email: "hr@daming.com", Password: "hello#world123", Type: domain.AccountTypeCompany},
			wantType: domain.AccountTypeCompany,
		},
		{
			name:     "类型非法时按求职者处理",
			account:  domain.Account{Email: "tom@daming.com", Password: "hello#world123", Type: domain.AccountType(9)},
			wantType: domain.AccountTypeGeneral,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockAccountRepository(ctrl)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, a domain.Account) (int64, error) {
					assert.Equal(t, tc.wantType, a.Type)
					// 密码要散列之后才能落库
					assert.NotEqual(t, tc.account.Password, a.Password)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(tc.account.Password)))
					return int64(1), nil
				})
			svc := NewAccountService(repo)
			id, err := svc.Register(context.Background(), tc.account)
			require.NoError(t, err)
			assert.Equal(t, int64(1), id)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	t.Parallel()
	const password = "hello#world123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.AccountRepository
		email    string
		password string
		wantErr  error
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.AccountRepository {
				repo := repomocks.NewMockAccountRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "hr@daming.com").
					Return(domain.Account{ID: 1, Email: "hr@daming.com", Password: string(hash)}, nil)
				return repo
			},
			email:    "hr@daming.com",
			password: password,
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) repository.AccountRepository {
				repo := repomocks.NewMockAccountRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "hr@daming.com").
					Return(domain.Account{ID: 1, Email: "hr@daming.com", Password: string(hash)}, nil)
				return repo
			},
			email:    "hr@daming.com",
			password: "wrong-password",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name: "账号不存在时不暴露细节",
			mock: func(ctrl *gomock.Controller) repository.AccountRepository {
				repo := repomocks.NewMockAccountRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "nobody@daming.com").
					Return(domain.Account{}, repository.ErrAccountNotFound)
				return repo
			},
			email:    "nobody@daming.com",
			password: password,
			wantErr:  ErrInvalidCredentials,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAccountService(tc.mock(ctrl))
			account, err := svc.Login(context.Background(), tc.email, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, int64(1), account.ID)
				// 密码不能带出去
				assert.Empty(t, account.Password)
			}
		})
	}
}

func TestAccountService_CompanyProfileByAccountID(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.AccountRepository
		wantErr error
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) repository.AccountRepository {
				repo := repomocks.NewMockAccountRepository(ctrl)
				repo.EXPECT().ProfileByAccountID(gomock.Any(), int64(1)).
					Return(domain.CompanyProfile{ID: 2, AccountID: 1, Name: "大明科技"}, nil)
				return repo
			},
		},
		{
			name: "没有公司资料",
			mock: func(ctrl *gomock.Controller) repository.AccountRepository {
				repo := repomocks.NewMockAccountRepository(ctrl)
				repo.EXPECT().ProfileByAccountID(gomock.Any(), int64(1)).
					Return(domain.CompanyProfile{}, repository.ErrAccountNotFound)
				return repo
			},
			wantErr: ErrProfileNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAccountService(tc.mock(ctrl))
			profile, err := svc.CompanyProfileByAccountID(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, "大明科技", profile.Name)
			}
		})
	}
}
