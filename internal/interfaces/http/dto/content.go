package dto

import (
	"strconv"
	"time"

	"ai-content-writer/internal/application/content"
	"ai-content-writer/internal/domain/entity"
)

// GenerateRequest 生成请求，未填写的控件取默认值
type GenerateRequest struct {
	ContentType    string `json:"content_type"`
	Length         string `json:"length"`
	Style          string `json:"style"`
	Tone           string `json:"tone"`
	IncludeSummary bool   `json:"include_summary"`
	// Keywords 逗号分隔的关键词
	Keywords string `json:"keywords"`
	Topic    string `json:"topic"`
	// Pressed 省略时视为已按下
	Pressed *bool `json:"pressed,omitempty"`
}

// ToGenerationConfig 解析控件取值
func (r *GenerateRequest) ToGenerationConfig() (entity.GenerationConfig, error) {
	contentType, err := entity.ParseContentType(orDefault(r.ContentType, string(entity.ContentTypeBlog)))
	if err != nil {
		return entity.GenerationConfig{}, err
	}
	length, err := entity.ParseLength(orDefault(r.Length, string(entity.LengthConcise)))
	if err != nil {
		return entity.GenerationConfig{}, err
	}
	style, err := entity.ParseStyle(orDefault(r.Style, string(entity.StyleFormal)))
	if err != nil {
		return entity.GenerationConfig{}, err
	}
	tone, err := entity.ParseTone(orDefault(r.Tone, string(entity.ToneInformative)))
	if err != nil {
		return entity.GenerationConfig{}, err
	}
	return entity.NewGenerationConfig(entity.GenerationOptions{
		ContentType:    contentType,
		Length:         length,
		Style:          style,
		Tone:           tone,
		IncludeSummary: r.IncludeSummary,
		Keywords:       entity.ParseKeywords(r.Keywords),
		Topic:          r.Topic,
	}), nil
}

// IsPressed 触发按钮状态
func (r *GenerateRequest) IsPressed() bool {
	return r.Pressed == nil || *r.Pressed
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// LengthOption 篇幅选项
type LengthOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// OptionsResponse 各控件的可选值
type OptionsResponse struct {
	ContentTypes []string       `json:"content_types"`
	Lengths      []LengthOption `json:"lengths"`
	Styles       []string       `json:"styles"`
	Tones        []string       `json:"tones"`
}

// NewOptionsResponse 第一个选项即默认值
func NewOptionsResponse() *OptionsResponse {
	resp := &OptionsResponse{}
	for _, v := range entity.ContentTypes {
		resp.ContentTypes = append(resp.ContentTypes, string(v))
	}
	for _, v := range entity.Lengths {
		resp.Lengths = append(resp.Lengths, LengthOption{Key: string(v), Label: v.Label()})
	}
	for _, v := range entity.Styles {
		resp.Styles = append(resp.Styles, string(v))
	}
	for _, v := range entity.Tones {
		resp.Tones = append(resp.Tones, string(v))
	}
	return resp
}

// ConfigResponse 生成参数
type ConfigResponse struct {
	ContentType    string   `json:"content_type"`
	Length         string   `json:"length"`
	LengthLabel    string   `json:"length_label"`
	Style          string   `json:"style"`
	Tone           string   `json:"tone"`
	IncludeSummary bool     `json:"include_summary"`
	Keywords       []string `json:"keywords,omitempty"`
	Topic          string   `json:"topic"`
}

// ParaphraseResponse 段落改写结果，失败时 Error 非空
type ParaphraseResponse struct {
	ParagraphNumber int    `json:"paragraph_number"`
	Text            string `json:"text,omitempty"`
	Error           string `json:"error,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// ParagraphResponse 段落及展开状态
type ParagraphResponse struct {
	Number     int                 `json:"number"`
	Label      string              `json:"label"`
	Text       string              `json:"text"`
	Expanded   bool                `json:"expanded"`
	Paraphrase *ParaphraseResponse `json:"paraphrase,omitempty"`
}

// ExplanationResponse 风格说明
type ExplanationResponse struct {
	Heading string `json:"heading"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SessionResponse 会话快照
type SessionResponse struct {
	ID          string               `json:"id"`
	State       string               `json:"state"`
	Config      *ConfigResponse      `json:"config,omitempty"`
	WordCount   int                  `json:"word_count,omitempty"`
	Paragraphs  []*ParagraphResponse `json:"paragraphs"`
	Explanation *ExplanationResponse `json:"explanation,omitempty"`
	LastError   string               `json:"last_error,omitempty"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// GenerateResponse 一次触发的结果；triggered 为 false 表示空操作
type GenerateResponse struct {
	Triggered bool             `json:"triggered"`
	Session   *SessionResponse `json:"session"`
	Blocks    []content.Block  `json:"blocks,omitempty"`
}

// ToSessionResponse 转换会话快照
func ToSessionResponse(snap content.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		ID:         snap.ID,
		State:      string(snap.State),
		WordCount:  snap.WordCount,
		Paragraphs: make([]*ParagraphResponse, 0, len(snap.Paragraphs)),
		CreatedAt:  formatTime(snap.CreatedAt),
		UpdatedAt:  formatTime(snap.UpdatedAt),
	}
	if snap.Config != nil {
		resp.Config = toConfigResponse(*snap.Config)
	}
	for _, p := range snap.Paragraphs {
		resp.Paragraphs = append(resp.Paragraphs, &ParagraphResponse{
			Number:     p.Number,
			Label:      ParagraphLabel(p.Number),
			Text:       p.Text,
			Expanded:   p.Expanded,
			Paraphrase: ToParaphraseResponse(p.Paraphrase),
		})
	}
	if snap.Explanation != nil {
		resp.Explanation = &ExplanationResponse{
			Heading: snap.Explanation.Heading,
			Text:    snap.Explanation.Text,
			Error:   errorString(snap.Explanation.Err),
		}
	}
	resp.LastError = errorString(snap.LastError)
	return resp
}

// ToParaphraseResponse 转换改写结果
func ToParaphraseResponse(res *entity.ParaphraseResult) *ParaphraseResponse {
	if res == nil {
		return nil
	}
	return &ParaphraseResponse{
		ParagraphNumber: res.ParagraphNumber,
		Text:            res.Text,
		Error:           errorString(res.Err),
		CreatedAt:       formatTime(res.CreatedAt),
	}
}

// ParagraphLabel 段落的展示标签
func ParagraphLabel(number int) string {
	return "Paragraph " + strconv.Itoa(number)
}

func toConfigResponse(cfg entity.GenerationConfig) *ConfigResponse {
	return &ConfigResponse{
		ContentType:    string(cfg.ContentType()),
		Length:         string(cfg.Length()),
		LengthLabel:    cfg.Length().Label(),
		Style:          string(cfg.Style()),
		Tone:           string(cfg.Tone()),
		IncludeSummary: cfg.IncludeSummary(),
		Keywords:       cfg.Keywords(),
		Topic:          cfg.Topic(),
	}
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
