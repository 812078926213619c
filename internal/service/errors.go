package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrSongNotFound        = errors.New("歌曲不存在")
	ErrTagNotFound         = errors.New("标签不存在")
	ErrTagTypeInvalid      = errors.New("标签类型无效")
	ErrTagSlugExist        = errors.New("标签slug已存在")
	ErrTagInvalid          = errors.New("存在无效的标签")
	ErrSearchQueryNotFound = errors.New("搜索记录不存在")
	ErrRankKindInvalid     = errors.New("未知的榜单类型")
	ErrActionDuplicate     = errors.New("重复操作")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrSongNotFound:        NotFound,
	ErrTagNotFound:         NotFound,
	ErrTagTypeInvalid:      BadRequest,
	ErrTagSlugExist:        Conflict,
	ErrTagInvalid:          BadRequest,
	ErrSearchQueryNotFound: NotFound,
	ErrRankKindInvalid:     BadRequest,
	ErrActionDuplicate:     BadRequest,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
