package service

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrContentEmpty      = errors.New("内容不能为空")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrEmailExist        = errors.New("邮箱已被注册")
	ErrPasswordIncorrect = errors.New("邮箱或密码错误")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCommentForbidden  = errors.New("只能操作自己的评论")
	ErrPostForbidden     = errors.New("无权删除该帖子")
	ErrReportNotFound    = errors.New("举报记录不存在")
	ErrReportDuplicate   = errors.New("已举报过该帖子")
	ErrBanDuplicate      = errors.New("该用户已被封禁")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

// ErrorMap 业务错误到状态码的映射，response.Error 据此落到 HTTP 状态
var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrContentEmpty:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrEmailExist:        Conflict,
	ErrPasswordIncorrect: BadRequest,
	ErrPostNotFound:      NotFound,
	ErrCommentForbidden:  Forbidden,
	ErrPostForbidden:     Forbidden,
	ErrReportNotFound:    NotFound,
	ErrReportDuplicate:   Conflict,
	ErrBanDuplicate:      Conflict,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}

// isDuplicateError 判断是否命中 MySQL 唯一索引冲突
func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
