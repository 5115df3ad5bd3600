package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ValidationError 参数校验失败，创建前即可发现的错误
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError 创建校验错误
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError 目标记录不存在
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d 不存在", e.Entity, e.ID)
}

// ConstraintError 引用完整性冲突（唯一键重复、外键保护等）
type ConstraintError struct {
	Message string
	Err     error
}

func (e *ConstraintError) Error() string {
	return e.Message
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// translateConstraint 把引擎层冲突错误转成 ConstraintError，其余原样返回
func translateConstraint(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ConstraintError{Message: message, Err: err}
	}
	return err
}
