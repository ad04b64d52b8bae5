package errs

var (
	SystemError = ErrorCode{Code: 518001, Msg: "系统错误"}
	// 业务失败统一用 418xxx，方便前端和网关区分
	PostingNotFound         = ErrorCode{Code: 418001, Msg: "职位不存在"}
	ApplicationNotFound     = ErrorCode{Code: 418002, Msg: "投递记录不存在"}
	DuplicateApplication    = ErrorCode{Code: 418003, Msg: "你已经投递过该职位"}
	PostingNotAcceptable    = ErrorCode{Code: 418004, Msg: "该职位当前不接受投递"}
	InvalidDeadlineWindow   = ErrorCode{Code: 418005, Msg: "天数必须在 1 到 30 之间"}
	PostingPermissionDenied = ErrorCode{Code: 418006, Msg: "无权操作该职位"}
	OwnerNotFound           = ErrorCode{Code: 418007, Msg: "账号不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
