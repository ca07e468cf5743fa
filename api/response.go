package api

import (
	"net/http"

	"ledger/config"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Detail string `json:"detail" example:"Category not found"`
}

// HealthResponse 健康检查响应结构
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Success 成功响应，直接返回数据本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应
func Error(c *gin.Context, code int, detail string) {
	c.JSON(code, ErrorResponse{Detail: detail})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// UnprocessableEntity 422 错误响应，请求参数缺失或格式错误
func UnprocessableEntity(c *gin.Context, detail string) {
	Error(c, http.StatusUnprocessableEntity, detail)
}

// InternalError 500 错误响应，release 模式下隐藏错误详情
func InternalError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, config.SafeErrorMessage(err, fallback))
}
