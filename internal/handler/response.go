package handler

import (
	"errors"
	"net/http"

	"cadastro_api/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResponseData envelope of every JSON response
type ResponseData struct {
	Code int `json:"code"`           // business code, see errorx
	Msg  any `json:"msg"`            // message, or field -> message on validation errors
	Data any `json:"data,omitempty"` // payload
}

// HandleSuccess 200 with data
func HandleSuccess(c *gin.Context, data any) {
	HandleSuccessStatus(c, http.StatusOK, data)
}

// HandleSuccessStatus success envelope with a custom status, e.g. 201
func HandleSuccessStatus(c *gin.Context, status int, data any) {
	c.JSON(status, ResponseData{
		Code: errorx.CodeSuccess,
		Msg:  "success",
		Data: data,
	})
}

// statusOf maps a business code to the HTTP status
func statusOf(code int) int {
	switch code {
	case errorx.CodeInvalidParam:
		return http.StatusBadRequest
	case errorx.CodeUserExist, errorx.CodeConflict:
		return http.StatusConflict
	case errorx.CodeUserNotExist, errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeForbidden:
		return http.StatusForbidden
	case errorx.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes a *errorx.CodeError with its code and message.
// Any other error is logged and answered as CodeServerBusy.
//
//	if err := h.svc.DoSomething(ctx); err != nil {
//	    HandleError(c, err)
//	    return
//	}
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(statusOf(codeErr.Code), ResponseData{
			Code: codeErr.Code,
			Msg:  codeErr.Msg,
		})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ResponseData{
		Code: errorx.ErrServerBusy.Code,
		Msg:  errorx.ErrServerBusy.Msg,
	})
}

// HandleParamError binding errors, translated when they come from the validator
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, ResponseData{
			Code: errorx.ErrInvalidParam.Code,
			Msg:  RemoveTopStruct(validationErrs.Translate(Trans)),
		})
		return
	}

	// malformed JSON, wrong types
	zap.L().Warn("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, ResponseData{
		Code: errorx.ErrInvalidParam.Code,
		Msg:  errorx.ErrInvalidParam.Msg,
	})
}
