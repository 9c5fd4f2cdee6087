// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"ai-content-writer/internal/interfaces/http/dto"
	"ai-content-writer/pkg/errors"
	"ai-content-writer/pkg/logger"
)

// writeError AppError 按其状态码输出，其余错误记录日志后返回 500
func writeError(c *gin.Context, err error, msg string) {
	if errors.IsAppError(err) {
		dto.AppError(c, errors.AsAppError(err))
		return
	}
	logger.Error(c.Request.Context(), msg, err)
	dto.InternalError(c, msg)
}
