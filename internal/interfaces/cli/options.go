package cli

import (
	"fmt"
	"strconv"
	"strings"

	"ai-content-writer/internal/domain/entity"
)

// Options 命令行给出的控件取值
type Options struct {
	ContentType string
	Length      string
	Style       string
	Tone        string
	Summary     bool
	Keywords    string
	Topic       string
	// Paraphrase 渲染完成后依次展开的段落序号
	Paraphrase []int
}

// DefaultOptions 与界面下拉框的首项一致
func DefaultOptions() Options {
	return Options{
		ContentType: string(entity.ContentTypeBlog),
		Length:      string(entity.LengthConcise),
		Style:       string(entity.StyleFormal),
		Tone:        string(entity.ToneInformative),
	}
}

// GenerationConfig 解析并校验控件取值
func (o Options) GenerationConfig() (entity.GenerationConfig, error) {
	contentType, err := entity.ParseContentType(o.ContentType)
	if err != nil {
		return entity.GenerationConfig{}, err
	}
	length, err := entity.ParseLength(o.Length)
	if err != nil {
		return entity.GenerationConfig{}, err
	}
	style, err := entity.ParseStyle(o.Style)
	if err != nil {
		return entity.GenerationConfig{}, err
	}
	tone, err := entity.ParseTone(o.Tone)
	if err != nil {
		return entity.GenerationConfig{}, err
	}
	return entity.NewGenerationConfig(entity.GenerationOptions{
		ContentType:    contentType,
		Length:         length,
		Style:          style,
		Tone:           tone,
		IncludeSummary: o.Summary,
		Keywords:       entity.ParseKeywords(o.Keywords),
		Topic:          o.Topic,
	}), nil
}

// ParseParagraphNumbers 解析 "1,3" 形式的段落序号列表
func ParseParagraphNumbers(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid paragraph number %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}
