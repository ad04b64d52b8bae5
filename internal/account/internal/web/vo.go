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

package web

import "github.com/ecodeclub/jobboard/internal/account/internal/domain"

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	// 1-求职者，2-企业
	Type uint8 `json:"type"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SaveCompanyProfileReq struct {
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Website  string `json:"website,omitempty"`
	Address  string `json:"address,omitempty"`
	Intro    string `json:"intro,omitempty"`
}

type AccountVO struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Type     uint8  `json:"type"`
}

type CompanyProfileVO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Website  string `json:"website,omitempty"`
	Address  string `json:"address,omitempty"`
	Intro    string `json:"intro,omitempty"`
	Utime    int64  `json:"utime"`
}

func newAccount(a domain.Account) AccountVO {
	return AccountVO{
		ID:       a.ID,
		Email:    a.Email,
		Nickname: a.Nickname,
		Type:     a.Type.ToUint8(),
	}
}
