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

type AccountType uint8

func (t AccountType) ToUint8() uint8 {
	return uint8(t)
}

const (
	// AccountTypeGeneral 求职者账号
	AccountTypeGeneral AccountType = 1
	// AccountTypeCompany 企业账号，可以发布职位
	AccountTypeCompany AccountType = 2
)

type Account struct {
	ID       int64
	Email    string
	Password string
	Nickname string
	Type     AccountType
	Ctime    int64
	Utime    int64
}

func (a Account) IsCompany() bool {
	return a.Type == AccountTypeCompany
}

// CompanyProfile 企业账号的公司资料，一个企业账号最多一份
type CompanyProfile struct {
	ID        int64
	AccountID int64
	Name      string
	Industry  string
	Website   string
	Address   string
	Intro     string
	Ctime     int64
	Utime     int64
}
