package router

import (
	"github.com/gin-gonic/gin"

	"ai-content-writer/internal/interfaces/http/handler"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, contentHandler *handler.ContentHandler) {
	v1.GET("/options", contentHandler.Options)

	sessions := v1.Group("/sessions")
	{
		sessions.POST("", contentHandler.CreateSession)
		sessions.GET("/:sid", contentHandler.GetSession)
		sessions.DELETE("/:sid", contentHandler.DeleteSession)
		sessions.POST("/:sid/generate", contentHandler.Generate)

		// 段落展开与折叠
		sessions.POST("/:sid/paragraphs/:n/expand", contentHandler.ExpandParagraph)
		sessions.POST("/:sid/paragraphs/:n/collapse", contentHandler.CollapseParagraph)
	}
}
