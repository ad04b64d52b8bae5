package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/account/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	accountNotFoundResult = ginx.Result{
		Code: errs.AccountNotFound.Code,
		Msg:  errs.AccountNotFound.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
	profileNotFoundResult = ginx.Result{
		Code: errs.ProfileNotFound.Code,
		Msg:  errs.ProfileNotFound.Msg,
	}
	notCompanyAccountResult = ginx.Result{
		Code: errs.NotCompanyAccount.Code,
		Msg:  errs.NotCompanyAccount.Msg,
	}
)
