package handler

import (
	"github.com/gin-gonic/gin"

	"ai-content-writer/internal/application/content"
	"ai-content-writer/internal/interfaces/http/dto"
	"ai-content-writer/pkg/errors"
)

// ContentHandler 内容生成会话处理器
type ContentHandler struct {
	registry *content.Registry
}

// NewContentHandler 创建内容生成处理器
func NewContentHandler(registry *content.Registry) *ContentHandler {
	return &ContentHandler{registry: registry}
}

// Options 获取控件可选值
// @Summary 获取控件可选值
// @Tags Content
// @Produce json
// @Success 200 {object} dto.Response[dto.OptionsResponse]
// @Router /v1/options [get]
func (h *ContentHandler) Options(c *gin.Context) {
	dto.Success(c, dto.NewOptionsResponse())
}

// CreateSession 创建会话
// @Summary 创建会话
// @Tags Content
// @Produce json
// @Success 201 {object} dto.Response[dto.SessionResponse]
// @Failure 503 {object} dto.ErrorResponse "会话数达到上限"
// @Router /v1/sessions [post]
func (h *ContentHandler) CreateSession(c *gin.Context) {
	s, err := h.registry.Create()
	if err != nil {
		writeError(c, err, "failed to create session")
		return
	}
	dto.Created(c, dto.ToSessionResponse(s.Snapshot()))
}

// GetSession 获取会话快照
// @Summary 获取会话快照
// @Tags Content
// @Produce json
// @Param sid path string true "会话 ID"
// @Success 200 {object} dto.Response[dto.SessionResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sessions/{sid} [get]
func (h *ContentHandler) GetSession(c *gin.Context) {
	s, err := h.registry.Get(dto.BindSessionID(c))
	if err != nil {
		writeError(c, err, "failed to get session")
		return
	}
	dto.Success(c, dto.ToSessionResponse(s.Snapshot()))
}

// DeleteSession 删除会话
// @Summary 删除会话
// @Tags Content
// @Param sid path string true "会话 ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/sessions/{sid} [delete]
func (h *ContentHandler) DeleteSession(c *gin.Context) {
	if err := h.registry.Delete(dto.BindSessionID(c)); err != nil {
		writeError(c, err, "failed to delete session")
		return
	}
	dto.NoContent(c)
}

// Generate 触发内容生成
// @Summary 触发内容生成
// @Description 主题为空或 pressed=false 时不发起调用，triggered 返回 false
// @Tags Content
// @Accept json
// @Produce json
// @Param sid path string true "会话 ID"
// @Param body body dto.GenerateRequest true "生成参数"
// @Success 200 {object} dto.Response[dto.GenerateResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "生成中"
// @Failure 502 {object} dto.ErrorResponse "生成服务调用失败"
// @Router /v1/sessions/{sid}/generate [post]
func (h *ContentHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.registry.Get(dto.BindSessionID(c))
	if err != nil {
		writeError(c, err, "failed to get session")
		return
	}

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	cfg, err := req.ToGenerationConfig()
	if err != nil {
		dto.AppError(c, errors.ErrInvalidParam.WithDetail(err.Error()))
		return
	}

	view := content.NewTranscript()
	res, err := s.Trigger(ctx, content.TriggerRequest{Config: cfg, Pressed: req.IsPressed()}, view)
	if err != nil {
		writeError(c, err, "failed to generate content")
		return
	}

	dto.Success(c, &dto.GenerateResponse{
		Triggered: res.Triggered,
		Session:   dto.ToSessionResponse(s.Snapshot()),
		Blocks:    view.Blocks(),
	})
}

// ExpandParagraph 展开段落并改写
// @Summary 展开段落并改写
// @Description 每次调用都会重新请求改写；改写失败时 error 字段非空
// @Tags Content
// @Produce json
// @Param sid path string true "会话 ID"
// @Param n path int true "段落序号"
// @Success 200 {object} dto.Response[dto.ParaphraseResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "尚未生成内容"
// @Router /v1/sessions/{sid}/paragraphs/{n}/expand [post]
func (h *ContentHandler) ExpandParagraph(c *gin.Context) {
	s, n, ok := h.paragraphTarget(c)
	if !ok {
		return
	}
	res, err := s.Expand(c.Request.Context(), n, nil)
	if err != nil {
		writeError(c, err, "failed to expand paragraph")
		return
	}
	dto.Success(c, dto.ToParaphraseResponse(res))
}

// CollapseParagraph 折叠段落
// @Summary 折叠段落
// @Tags Content
// @Produce json
// @Param sid path string true "会话 ID"
// @Param n path int true "段落序号"
// @Success 200 {object} dto.Response[dto.SessionResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "尚未生成内容"
// @Router /v1/sessions/{sid}/paragraphs/{n}/collapse [post]
func (h *ContentHandler) CollapseParagraph(c *gin.Context) {
	s, n, ok := h.paragraphTarget(c)
	if !ok {
		return
	}
	if err := s.Collapse(n); err != nil {
		writeError(c, err, "failed to collapse paragraph")
		return
	}
	dto.Success(c, dto.ToSessionResponse(s.Snapshot()))
}

func (h *ContentHandler) paragraphTarget(c *gin.Context) (*content.Session, int, bool) {
	s, err := h.registry.Get(dto.BindSessionID(c))
	if err != nil {
		writeError(c, err, "failed to get session")
		return nil, 0, false
	}
	n, ok := dto.BindParagraphNumber(c)
	if !ok {
		dto.BadRequest(c, "paragraph number must be an integer")
		return nil, 0, false
	}
	return s, n, true
}
