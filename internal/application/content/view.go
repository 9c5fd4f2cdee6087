// Package content 编排一次内容生成：主生成、段落改写与风格说明
package content

import (
	"sync"

	"ai-content-writer/internal/domain/entity"
)

// Unit 失败所属的展示单元
type Unit string

const (
	UnitMain        Unit = "main"
	UnitParaphrase  Unit = "paraphrase"
	UnitExplanation Unit = "explanation"
)

// View 与展示层无关的输出端，终端和 HTTP 各有实现
type View interface {
	// Progress 阻塞调用开始前的进度提示
	Progress(message string)
	Paragraph(p entity.Paragraph)
	Paraphrase(paragraphNumber int, text string)
	Explanation(heading, text string)
	// Failure 某个展示单元的内联错误；paragraphNumber 仅对 UnitParaphrase 有意义
	Failure(unit Unit, paragraphNumber int, err error)
}

// BlockKind Transcript 中记录的块类型
type BlockKind string

const (
	BlockProgress    BlockKind = "progress"
	BlockParagraph   BlockKind = "paragraph"
	BlockParaphrase  BlockKind = "paraphrase"
	BlockExplanation BlockKind = "explanation"
	BlockFailure     BlockKind = "failure"
)

// Block 一次 View 输出
type Block struct {
	Kind            BlockKind `json:"kind"`
	Unit            Unit      `json:"unit,omitempty"`
	ParagraphNumber int       `json:"paragraph_number,omitempty"`
	Heading         string    `json:"heading,omitempty"`
	Text            string    `json:"text,omitempty"`
	Error           string    `json:"error,omitempty"`
}

// Transcript 按顺序记录所有输出块的 View
type Transcript struct {
	mu     sync.Mutex
	blocks []Block
}

var _ View = (*Transcript)(nil)

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Progress(message string) {
	t.append(Block{Kind: BlockProgress, Text: message})
}

func (t *Transcript) Paragraph(p entity.Paragraph) {
	t.append(Block{Kind: BlockParagraph, ParagraphNumber: p.Number, Text: p.Text})
}

func (t *Transcript) Paraphrase(paragraphNumber int, text string) {
	t.append(Block{Kind: BlockParaphrase, Unit: UnitParaphrase, ParagraphNumber: paragraphNumber, Text: text})
}

func (t *Transcript) Explanation(heading, text string) {
	t.append(Block{Kind: BlockExplanation, Unit: UnitExplanation, Heading: heading, Text: text})
}

func (t *Transcript) Failure(unit Unit, paragraphNumber int, err error) {
	b := Block{Kind: BlockFailure, Unit: unit, ParagraphNumber: paragraphNumber}
	if err != nil {
		b.Error = err.Error()
	}
	t.append(b)
}

// Blocks 返回已记录块的副本
func (t *Transcript) Blocks() []Block {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Block, len(t.blocks))
	copy(out, t.blocks)
	return out
}

// Kinds 按顺序返回块类型
func (t *Transcript) Kinds() []BlockKind {
	blocks := t.Blocks()
	out := make([]BlockKind, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Kind)
	}
	return out
}

func (t *Transcript) append(b Block) {
	t.mu.Lock()
	t.blocks = append(t.blocks, b)
	t.mu.Unlock()
}

// discardView 丢弃所有输出
type discardView struct{}

func (discardView) Progress(string)            {}
func (discardView) Paragraph(entity.Paragraph) {}
func (discardView) Paraphrase(int, string)     {}
func (discardView) Explanation(string, string) {}
func (discardView) Failure(Unit, int, error)   {}

func viewOrDiscard(v View) View {
	if v == nil {
		return discardView{}
	}
	return v
}
