// Package cli 终端形态的内容生成工具
package cli

import (
	"fmt"
	"io"
	"strings"

	"ai-content-writer/internal/application/content"
	"ai-content-writer/internal/domain/entity"
)

const divider = "----------------------------------------"

// TerminalView 将生成过程逐块写到终端
type TerminalView struct {
	w io.Writer
}

var _ content.View = (*TerminalView)(nil)

func NewTerminalView(w io.Writer) *TerminalView {
	return &TerminalView{w: w}
}

func (v *TerminalView) Progress(message string) {
	fmt.Fprintf(v.w, "... %s\n", message)
}

func (v *TerminalView) Paragraph(p entity.Paragraph) {
	fmt.Fprintf(v.w, "\nParagraph %d:\n%s\n", p.Number, p.Text)
}

func (v *TerminalView) Paraphrase(paragraphNumber int, text string) {
	fmt.Fprintf(v.w, "\nParaphrase of paragraph %d:\n%s\n", paragraphNumber, indent(text))
}

func (v *TerminalView) Explanation(heading, text string) {
	fmt.Fprintf(v.w, "\n%s\n%s\n%s\n", divider, heading, text)
}

func (v *TerminalView) Failure(unit content.Unit, paragraphNumber int, err error) {
	switch unit {
	case content.UnitParaphrase:
		fmt.Fprintf(v.w, "\n[error] paraphrase of paragraph %d failed: %v\n", paragraphNumber, err)
	case content.UnitExplanation:
		fmt.Fprintf(v.w, "\n%s\n%s\n[error] explanation failed: %v\n", divider, entity.ExplanationHeading, err)
	default:
		fmt.Fprintf(v.w, "\n[error] content generation failed: %v\n", err)
	}
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}
