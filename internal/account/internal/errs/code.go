package errs

var (
	SystemError        = ErrorCode{Code: 517001, Msg: "系统错误"}
	AccountNotFound    = ErrorCode{Code: 417001, Msg: "账号不存在"}
	DuplicateEmail     = ErrorCode{Code: 417002, Msg: "邮箱已被注册"}
	InvalidCredentials = ErrorCode{Code: 417003, Msg: "账号或密码错误"}
	ProfileNotFound    = ErrorCode{Code: 417004, Msg: "公司资料不存在"}
	NotCompanyAccount  = ErrorCode{Code: 417005, Msg: "不是企业账号"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
