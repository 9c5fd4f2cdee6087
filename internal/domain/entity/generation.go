// Package entity 定义内容生成领域实体
package entity

import (
	"fmt"
	"slices"
	"strings"
)

// ContentType 内容类型
type ContentType string

const (
	ContentTypeBlog  ContentType = "Blog"
	ContentTypeEssay ContentType = "Essay"
)

// Length 篇幅档位
type Length string

const (
	LengthConcise  Length = "concise"
	LengthStandard Length = "standard"
	LengthExtended Length = "extended"
)

// Style 写作风格
type Style string

const (
	StyleFormal         Style = "Formal"
	StyleInformal       Style = "Informal"
	StyleConversational Style = "Conversational"
	StyleAcademic       Style = "Academic"
)

// Tone 语气
type Tone string

const (
	ToneInformative Tone = "Informative"
	TonePersuasive  Tone = "Persuasive"
	ToneNeutral     Tone = "Neutral"
	ToneDescriptive Tone = "Descriptive"
)

var (
	ContentTypes = []ContentType{ContentTypeBlog, ContentTypeEssay}
	Lengths      = []Length{LengthConcise, LengthStandard, LengthExtended}
	Styles       = []Style{StyleFormal, StyleInformal, StyleConversational, StyleAcademic}
	Tones        = []Tone{ToneInformative, TonePersuasive, ToneNeutral, ToneDescriptive}
)

var lengthLabels = map[Length]string{
	LengthConcise:  "Concise (500–700 words)",
	LengthStandard: "Standard (1000–1500 words)",
	LengthExtended: "Extended (up to 3000 words)",
}

// Label 返回提示词中使用的篇幅描述
func (l Length) Label() string {
	return lengthLabels[l]
}

// Lower 返回小写形式，用于 "Write a blog ..." 这类句子
func (t ContentType) Lower() string {
	return strings.ToLower(string(t))
}

// ParseContentType 解析内容类型（忽略大小写）
func ParseContentType(s string) (ContentType, error) {
	for _, t := range ContentTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown content type %q", s)
}

// ParseLength 解析篇幅，接受 concise|standard|extended 或完整标签
func ParseLength(s string) (Length, error) {
	v := strings.TrimSpace(s)
	for _, l := range Lengths {
		if strings.EqualFold(v, string(l)) || v == l.Label() {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown length %q", s)
}

// ParseStyle 解析写作风格（忽略大小写）
func ParseStyle(s string) (Style, error) {
	for _, st := range Styles {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown style %q", s)
}

// ParseTone 解析语气（忽略大小写）
func ParseTone(s string) (Tone, error) {
	for _, t := range Tones {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

// ParseKeywords 解析逗号分隔的关键词列表，去除空白与空项，保持顺序
func ParseKeywords(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// GenerationConfig 一次生成请求的参数，创建后不可变
type GenerationConfig struct {
	contentType    ContentType
	length         Length
	style          Style
	tone           Tone
	includeSummary bool
	keywords       []string
	topic          string
}

// GenerationOptions 构造 GenerationConfig 的输入
type GenerationOptions struct {
	ContentType    ContentType
	Length         Length
	Style          Style
	Tone           Tone
	IncludeSummary bool
	Keywords       []string
	Topic          string
}

// NewGenerationConfig 根据当前选择创建配置；关键词切片会被复制
func NewGenerationConfig(opts GenerationOptions) GenerationConfig {
	var keywords []string
	if len(opts.Keywords) > 0 {
		keywords = make([]string, len(opts.Keywords))
		copy(keywords, opts.Keywords)
	}
	return GenerationConfig{
		contentType:    opts.ContentType,
		length:         opts.Length,
		style:          opts.Style,
		tone:           opts.Tone,
		includeSummary: opts.IncludeSummary,
		keywords:       keywords,
		topic:          opts.Topic,
	}
}

func (c GenerationConfig) ContentType() ContentType { return c.contentType }
func (c GenerationConfig) Length() Length           { return c.length }
func (c GenerationConfig) Style() Style             { return c.style }
func (c GenerationConfig) Tone() Tone               { return c.tone }
func (c GenerationConfig) IncludeSummary() bool     { return c.includeSummary }
func (c GenerationConfig) Topic() string            { return c.topic }

// Keywords 返回关键词副本
func (c GenerationConfig) Keywords() []string {
	if len(c.keywords) == 0 {
		return nil
	}
	out := make([]string, len(c.keywords))
	copy(out, c.keywords)
	return out
}

// HasTopic 主题去除空白后是否非空
func (c GenerationConfig) HasTopic() bool {
	return strings.TrimSpace(c.topic) != ""
}

// Validate 校验枚举取值，要求均为规范写法
func (c GenerationConfig) Validate() error {
	if !slices.Contains(ContentTypes, c.contentType) {
		return fmt.Errorf("unknown content type %q", c.contentType)
	}
	if !slices.Contains(Lengths, c.length) {
		return fmt.Errorf("unknown length %q", c.length)
	}
	if !slices.Contains(Styles, c.style) {
		return fmt.Errorf("unknown style %q", c.style)
	}
	if !slices.Contains(Tones, c.tone) {
		return fmt.Errorf("unknown tone %q", c.tone)
	}
	return nil
}
