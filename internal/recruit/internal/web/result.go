package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobboard/internal/recruit/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	postingNotFoundResult = ginx.Result{
		Code: errs.PostingNotFound.Code,
		Msg:  errs.PostingNotFound.Msg,
	}
	applicationNotFoundResult = ginx.Result{
		Code: errs.ApplicationNotFound.Code,
		Msg:  errs.ApplicationNotFound.Msg,
	}
	duplicateApplicationResult = ginx.Result{
		Code: errs.DuplicateApplication.Code,
		Msg:  errs.DuplicateApplication.Msg,
	}
	notAcceptableResult = ginx.Result{
		Code: errs.PostingNotAcceptable.Code,
		Msg:  errs.PostingNotAcceptable.Msg,
	}
	invalidDeadlineWindowResult = ginx.Result{
		Code: errs.InvalidDeadlineWindow.Code,
		Msg:  errs.InvalidDeadlineWindow.Msg,
	}
	ownerNotFoundResult = ginx.Result{
		Code: errs.OwnerNotFound.Code,
		Msg:  errs.OwnerNotFound.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PostingPermissionDenied.Code,
		Msg:  errs.PostingPermissionDenied.Msg,
	}
)
