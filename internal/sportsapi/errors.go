package sportsapi

import (
	"errors"
	"fmt"
)

// ErrorKind 远程调用失败类型
type ErrorKind string

const (
	KindTransport ErrorKind = "transport"  // 网络/请求构造失败
	KindStatus    ErrorKind = "status"     // 非 2xx
	KindEmptyBody ErrorKind = "empty_body" // 响应体为空
	KindDecode    ErrorKind = "decode"     // JSON 解析失败
	KindUpstream  ErrorKind = "upstream"   // 上游在 errors 字段中报告错误
)

// Error 所有远程失败统一返回该类型，从不以 nil 结果表示失败
type Error struct {
	Kind       ErrorKind
	LeagueID   string
	Season     string
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("sportsapi %s 失败 (league=%s season=%s endpoint=%s)", e.Kind, e.LeagueID, e.Season, e.Endpoint)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind 判断 err 链中是否存在指定类型的远程错误
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}
