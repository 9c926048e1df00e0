// Package apperr 定义了跨层传递的错误类别。
// Service 层用 fmt.Errorf("%w: ...") 包装具体原因，
// Handler 层通过 errors.Is 将类别映射为 HTTP 状态码。
package apperr

import "errors"

var (
	// ErrValidation 表示请求输入缺失或不合法。
	ErrValidation = errors.New("validation error")
	// ErrConflict 表示资源已存在，例如重复的 email 身份记录。
	ErrConflict = errors.New("conflict")
	// ErrNotFound 表示目标实体不存在。
	ErrNotFound = errors.New("not found")
	// ErrUpstream 表示外部服务（语音合成、对象存储）调用失败。
	ErrUpstream = errors.New("upstream service error")
	// ErrInternal 表示数据库或其他未预期的内部故障。
	ErrInternal = errors.New("internal error")
)
