package errs

var (
	SystemError     = ErrorCode{Code: 519001, Msg: "系统错误"}
	ProfileNotFound = ErrorCode{Code: 419001, Msg: "公司资料不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
