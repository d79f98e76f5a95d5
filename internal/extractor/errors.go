package extractor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrEmptyDocument   = errors.New("文档内容为空或过短")
	ErrFieldResolution = errors.New("字段解析失败")
)

// ExtractError 包含文档与字段上下文的自定义错误
type ExtractError struct {
	DocumentID string
	Field      string
	BaseErr    error
	Detail     string
}

func (e *ExtractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (字段:%s, 文档:%s): %s", e.BaseErr, e.Field, e.DocumentID, e.Detail)
	}
	return fmt.Sprintf("%s (字段:%s, 文档:%s)", e.BaseErr, e.Field, e.DocumentID)
}

func (e *ExtractError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewFieldError 构造字段解析失败错误
func NewFieldError(docID, field, detail string) error {
	return &ExtractError{
		DocumentID: docID,
		Field:      field,
		BaseErr:    ErrFieldResolution,
		Detail:     detail,
	}
}

// NewEmptyDocumentError 构造文档级前置条件错误
func NewEmptyDocumentError(docID string) error {
	return &ExtractError{
		DocumentID: docID,
		Field:      "document",
		BaseErr:    ErrEmptyDocument,
	}
}
