package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// BindSessionID 从 URI 绑定会话 ID
func BindSessionID(c *gin.Context) string {
	return c.Param("sid")
}

// BindParagraphNumber 从 URI 绑定段落序号
func BindParagraphNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		return 0, false
	}
	return n, true
}
