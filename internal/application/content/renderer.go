package content

import (
	"context"
	"time"

	"ai-content-writer/internal/domain/entity"
	llmctx "ai-content-writer/internal/domain/service"
	workflowport "ai-content-writer/internal/workflow/port"
	workflowprompt "ai-content-writer/internal/workflow/prompt"
	apperrors "ai-content-writer/pkg/errors"
	"ai-content-writer/pkg/logger"
	"ai-content-writer/pkg/metrics"
)

const (
	progressExplaining   = "Explaining style..."
	progressParaphrasing = "Paraphrasing paragraph..."
)

// Renderer 输出段落并发起改写、风格说明两类后续调用
type Renderer struct {
	gen workflowport.TextGenerator
	now func() time.Time
}

func NewRenderer(gen workflowport.TextGenerator) *Renderer {
	return &Renderer{gen: gen, now: time.Now}
}

// Render 依次输出全部段落，再请求一次风格说明
// 说明失败只作为内联错误输出，已输出的段落不受影响。
func (r *Renderer) Render(ctx context.Context, cfg entity.GenerationConfig, doc *entity.GeneratedDocument, view View) *entity.StyleExplanation {
	view = viewOrDiscard(view)
	for _, p := range doc.Paragraphs() {
		view.Paragraph(p)
	}

	view.Progress(progressExplaining)
	ctx = llmctx.WithWorkflow(ctx, llmctx.WorkflowStyleExplanation)
	text, err := r.gen.Generate(ctx, workflowprompt.BuildExplanationPrompt(cfg.ContentType(), cfg.Style(), cfg.Tone()))
	metrics.ExplanationTotal.WithLabelValues(metrics.StatusLabel(err)).Inc()

	out := &entity.StyleExplanation{Heading: entity.ExplanationHeading}
	if err != nil {
		out.Err = apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "style explanation failed")
		logger.Warn(ctx, "style explanation failed", "error", err)
		view.Failure(UnitExplanation, 0, out.Err)
		return out
	}
	out.Text = text
	view.Explanation(out.Heading, text)
	return out
}

// Paraphrase 每次调用都发起一次新的外部请求
func (r *Renderer) Paraphrase(ctx context.Context, p entity.Paragraph, view View) *entity.ParaphraseResult {
	view = viewOrDiscard(view)
	view.Progress(progressParaphrasing)

	ctx = llmctx.WithWorkflow(ctx, llmctx.WorkflowParagraphParaphrase)
	text, err := r.gen.Generate(ctx, workflowprompt.BuildParaphrasePrompt(p.Text))
	metrics.ParaphraseTotal.WithLabelValues(metrics.StatusLabel(err)).Inc()

	res := &entity.ParaphraseResult{ParagraphNumber: p.Number, CreatedAt: r.now()}
	if err != nil {
		res.Err = apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "paraphrase failed")
		logger.Warn(ctx, "paraphrase failed", "paragraph", p.Number, "error", err)
		view.Failure(UnitParaphrase, p.Number, res.Err)
		return res
	}
	res.Text = text
	view.Paraphrase(p.Number, text)
	return res
}
