package entity

import (
	"strings"
	"time"
)

// ExplanationHeading 风格说明区块的固定标题
const ExplanationHeading = "Why This Writing Is Stylistically Effective"

const paragraphSeparator = "\n\n"

// Paragraph 生成内容中的一个非空段落
type Paragraph struct {
	// Number 在过滤后序列中的序号，从 1 开始
	Number int
	Text   string
}

// GeneratedDocument 一次生成得到的完整文本及其段落
type GeneratedDocument struct {
	raw        string
	paragraphs []Paragraph
}

// NewGeneratedDocument 按空行切分补全文本；空白段落被丢弃且不占用序号
func NewGeneratedDocument(raw string) *GeneratedDocument {
	return &GeneratedDocument{
		raw:        raw,
		paragraphs: SplitParagraphs(raw),
	}
}

// SplitParagraphs 以双换行切分文本，返回按原顺序编号的非空段落
func SplitParagraphs(text string) []Paragraph {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	var out []Paragraph
	for _, segment := range strings.Split(normalized, paragraphSeparator) {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		out = append(out, Paragraph{
			Number: len(out) + 1,
			Text:   strings.Trim(segment, "\n"),
		})
	}
	return out
}

// Raw 返回原始补全文本
func (d *GeneratedDocument) Raw() string {
	if d == nil {
		return ""
	}
	return d.raw
}

// Paragraphs 返回段落副本
func (d *GeneratedDocument) Paragraphs() []Paragraph {
	if d == nil {
		return nil
	}
	out := make([]Paragraph, len(d.paragraphs))
	copy(out, d.paragraphs)
	return out
}

// Paragraph 按序号查找段落
func (d *GeneratedDocument) Paragraph(number int) (Paragraph, bool) {
	if d == nil || number < 1 || number > len(d.paragraphs) {
		return Paragraph{}, false
	}
	return d.paragraphs[number-1], true
}

// Len 返回段落数
func (d *GeneratedDocument) Len() int {
	if d == nil {
		return 0
	}
	return len(d.paragraphs)
}

// WordCount 统计原始文本的词数
func (d *GeneratedDocument) WordCount() int {
	if d == nil {
		return 0
	}
	return len(strings.Fields(d.raw))
}

// ParaphraseResult 某个段落的一次改写结果，不做缓存
type ParaphraseResult struct {
	ParagraphNumber int
	Text            string
	Err             error
	CreatedAt       time.Time
}

// StyleExplanation 每次生成附带的一段风格说明
type StyleExplanation struct {
	Heading string
	Text    string
	Err     error
}

// Failed 是否生成失败
func (e *StyleExplanation) Failed() bool {
	return e != nil && e.Err != nil
}
