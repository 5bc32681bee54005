package util

import (
	"estudo_backend/pkg/logger"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Details string      `json:"details,omitempty"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := int64(0)
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

var developmentMode atomic.Bool

// SetDevelopmentMode toggles internal error details in responses.
func SetDevelopmentMode(enabled bool) {
	developmentMode.Store(enabled)
}

func DevelopmentMode() bool {
	return developmentMode.Load()
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{Success: false, Error: message, Code: code})
}

func Unauthorized(c *gin.Context) {
	HandleError(c, ErrUnauthorized)
}

func Forbidden(c *gin.Context) {
	HandleError(c, ErrForbidden)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeValidation, message)
}

// HandleError writes the response for err. Server-side failures are logged;
// the internal cause is only exposed in development mode.
func HandleError(c *gin.Context, err error) {
	appErr := AsAppError(err)
	resp := Response{Success: false, Error: appErr.Message, Code: appErr.Code}

	if appErr.Status >= http.StatusInternalServerError {
		logger.Log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}
	if DevelopmentMode() && appErr.Err != nil {
		resp.Details = appErr.Err.Error()
	}

	c.JSON(appErr.Status, resp)
}
