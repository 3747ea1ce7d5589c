package errorx

import (
	"errors"
	"fmt"
)

// CodeError is an error carrying a business code.
// It wraps an optional cause so errors.Is/errors.As can walk the chain.
type CodeError struct {
	Code  int    // business code
	Msg   string // message returned to the client
	cause error  // wrapped error, never exposed to the client
}

// Error returns "msg: cause" when a cause is present, otherwise just the message.
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap exposes the cause to errors.Is/errors.As.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a business code and message to err.
// Usage: errorx.Wrap(err, CodeNotFound, "usuario nao encontrado")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf is Wrap with a formatted message.
// Usage: errorx.Wrapf(err, CodeNotFound, "usuario id=%d", id)
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code, CodeServerBusy for plain errors.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// Business codes
const (
	CodeSuccess      = 1000 // ok
	CodeInvalidParam = 1001 // bad request parameters
	CodeUserExist    = 1002 // email already registered
	CodeUserNotExist = 1003 // unknown user
	// 1004 unused: a wrong password answers CodeForbidden, like an unknown email
	CodeServerBusy   = 1005 // generic failure
	CodeUnauthorized = 1006 // missing or invalid token
	CodeForbidden    = 1007 // authenticated but refused
	CodeNotFound     = 1008 // resource not found
	CodeConflict     = 1009 // optimistic lock lost
	CodeDBError      = 1010 // database error
	CodeCacheError   = 1011 // cache error
	CodeMQError      = 1012 // message queue error
)

// Predefined errors, usable directly or with errors.Is.
var (
	ErrInvalidParam = New(CodeInvalidParam, "parametros invalidos")
	ErrServerBusy   = New(CodeServerBusy, "servico indisponivel")
	ErrForbidden    = New(CodeForbidden, "credenciais invalidas")
)

// IsNotFound reports whether err is a not-found error (including gorm.ErrRecordNotFound).
func IsNotFound(err error) bool {
	var codeErr *CodeError
	if errors.As(err, &codeErr) && codeErr.Code == CodeNotFound {
		return true
	}
	return err != nil && err.Error() == "record not found"
}
