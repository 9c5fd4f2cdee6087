package content

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ai-content-writer/internal/domain/entity"
	llmctx "ai-content-writer/internal/domain/service"
	workflowport "ai-content-writer/internal/workflow/port"
	workflowprompt "ai-content-writer/internal/workflow/prompt"
	apperrors "ai-content-writer/pkg/errors"
	"ai-content-writer/pkg/logger"
	"ai-content-writer/pkg/metrics"
	"ai-content-writer/pkg/tracer"
)

// State 会话状态
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateRendered   State = "rendered"
)

const progressGenerating = "Generating content..."

// TriggerRequest 一次"生成"按钮的输入
type TriggerRequest struct {
	Config  entity.GenerationConfig
	Pressed bool
}

// TriggerResult Triggered 为 false 表示空操作，未发起任何调用
type TriggerResult struct {
	Triggered   bool
	Document    *entity.GeneratedDocument
	Explanation *entity.StyleExplanation
}

// ParagraphState 段落及其展开状态
type ParagraphState struct {
	entity.Paragraph
	Expanded bool
	// Paraphrase 最近一次改写结果，仅用于展示，再次展开仍会重新请求
	Paraphrase *entity.ParaphraseResult
}

// Snapshot 会话的只读视图
type Snapshot struct {
	ID          string
	State       State
	Config      *entity.GenerationConfig
	Raw         string
	WordCount   int
	Paragraphs  []ParagraphState
	Explanation *entity.StyleExplanation
	LastError   error
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Session 单个用户的生成状态机：Idle -> Generating -> Rendered
// 互斥锁只保护状态，不跨外部调用持有。
type Session struct {
	id       string
	gen      workflowport.TextGenerator
	renderer *Renderer
	now      func() time.Time

	mu          sync.Mutex
	state       State
	cfg         *entity.GenerationConfig
	doc         *entity.GeneratedDocument
	explanation *entity.StyleExplanation
	expanded    map[int]bool
	paraphrases map[int]*entity.ParaphraseResult
	lastErr     error
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSession 创建处于 Idle 状态的会话
func NewSession(id string, gen workflowport.TextGenerator) *Session {
	return newSession(id, gen, time.Now)
}

func newSession(id string, gen workflowport.TextGenerator, now func() time.Time) *Session {
	ts := now()
	r := NewRenderer(gen)
	r.now = now
	return &Session{
		id:          id,
		gen:         gen,
		renderer:    r,
		now:         now,
		state:       StateIdle,
		expanded:    make(map[int]bool),
		paraphrases: make(map[int]*entity.ParaphraseResult),
		createdAt:   ts,
		updatedAt:   ts,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Trigger 处理一次生成请求
// 主题为空或按钮未按下时为空操作；生成中再次触发返回冲突错误。
func (s *Session) Trigger(ctx context.Context, req TriggerRequest, view View) (*TriggerResult, error) {
	if !req.Pressed || !req.Config.HasTopic() {
		return &TriggerResult{}, nil
	}
	if err := req.Config.Validate(); err != nil {
		return nil, apperrors.ErrInvalidParam.WithDetail(err.Error())
	}
	view = viewOrDiscard(view)

	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		return nil, apperrors.ErrGenerationInProgress
	}
	s.state = StateGenerating
	s.updatedAt = s.now()
	s.mu.Unlock()

	cfg := req.Config
	contentType := string(cfg.ContentType())
	ctx = logger.WithContext(ctx, logger.SessionIDKey, s.id)
	ctx, span := tracer.Start(ctx, "content.generate", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.String("content.type", contentType),
		attribute.String("content.length", string(cfg.Length())),
	))
	defer span.End()

	view.Progress(progressGenerating)
	start := s.now()
	text, err := s.gen.Generate(
		llmctx.WithWorkflow(ctx, llmctx.WorkflowContentGenerate),
		workflowprompt.BuildMainPrompt(cfg),
	)
	metrics.ContentGenerationTotal.WithLabelValues(contentType, metrics.StatusLabel(err)).Inc()
	metrics.ContentGenerationDuration.WithLabelValues(contentType).Observe(s.now().Sub(start).Seconds())

	if err != nil {
		appErr := apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "content generation failed")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "content generation failed", err)
		view.Failure(UnitMain, 0, appErr)

		s.mu.Lock()
		s.reset()
		s.lastErr = appErr
		s.mu.Unlock()
		return nil, appErr
	}

	doc := entity.NewGeneratedDocument(text)
	metrics.ContentWordCount.WithLabelValues(contentType, string(cfg.Length())).Observe(float64(doc.WordCount()))
	metrics.ContentParagraphs.Observe(float64(doc.Len()))
	span.SetAttributes(attribute.Int("content.paragraphs", doc.Len()))
	logger.Info(ctx, "content generated", "paragraphs", doc.Len(), "words", doc.WordCount())

	explanation := s.renderer.Render(ctx, cfg, doc, view)

	s.mu.Lock()
	s.reset()
	s.state = StateRendered
	s.cfg = &cfg
	s.doc = doc
	s.explanation = explanation
	s.mu.Unlock()

	return &TriggerResult{Triggered: true, Document: doc, Explanation: explanation}, nil
}

// Expand 展开段落并发起一次新的改写请求，重复展开会重复请求
// 改写失败体现在返回结果的 Err 中，不作为方法错误返回。
func (s *Session) Expand(ctx context.Context, number int, view View) (*entity.ParaphraseResult, error) {
	s.mu.Lock()
	p, err := s.paragraphLocked(number)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.expanded[number] = true
	s.updatedAt = s.now()
	doc := s.doc
	s.mu.Unlock()

	ctx = logger.WithContext(ctx, logger.SessionIDKey, s.id)
	ctx, span := tracer.Start(ctx, "content.paraphrase", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("paragraph.number", number),
	))
	defer span.End()

	res := s.renderer.Paraphrase(ctx, p, view)
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
	}

	s.mu.Lock()
	// 期间若已重新生成，旧文档的改写结果直接丢弃
	if s.doc == doc {
		s.paraphrases[number] = res
	}
	s.mu.Unlock()
	return res, nil
}

// Collapse 折叠段落，不发起调用
func (s *Session) Collapse(number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.paragraphLocked(number); err != nil {
		return err
	}
	s.expanded[number] = false
	s.updatedAt = s.now()
	return nil
}

// Snapshot 返回当前状态的副本
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          s.id,
		State:       s.state,
		Raw:         s.doc.Raw(),
		WordCount:   s.doc.WordCount(),
		Explanation: s.explanation,
		LastError:   s.lastErr,
		CreatedAt:   s.createdAt,
		UpdatedAt:   s.updatedAt,
	}
	if s.cfg != nil {
		cfg := *s.cfg
		snap.Config = &cfg
	}
	for _, p := range s.doc.Paragraphs() {
		snap.Paragraphs = append(snap.Paragraphs, ParagraphState{
			Paragraph:  p,
			Expanded:   s.expanded[p.Number],
			Paraphrase: s.paraphrases[p.Number],
		})
	}
	return snap
}

// idleSince 返回最近活动时间；生成中的会话不参与过期
func (s *Session) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt, s.state != StateGenerating
}

func (s *Session) paragraphLocked(number int) (entity.Paragraph, error) {
	if s.state != StateRendered {
		return entity.Paragraph{}, apperrors.ErrNotRendered
	}
	p, ok := s.doc.Paragraph(number)
	if !ok {
		return entity.Paragraph{}, apperrors.ErrParagraphNotFound.WithDetail(
			"paragraph number out of range",
		)
	}
	return p, nil
}

// reset 回到 Idle 并清空已渲染内容，调用方需持有锁
func (s *Session) reset() {
	s.state = StateIdle
	s.cfg = nil
	s.doc = nil
	s.explanation = nil
	s.expanded = make(map[int]bool)
	s.paraphrases = make(map[int]*entity.ParaphraseResult)
	s.lastErr = nil
	s.updatedAt = s.now()
}
