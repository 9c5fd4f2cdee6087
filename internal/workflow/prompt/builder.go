// Package prompt 将生成参数渲染为提示词
package prompt

import (
	"fmt"
	"strings"

	"ai-content-writer/internal/domain/entity"
)

const (
	summaryClause  = "Include a brief summary at the end."
	keywordsPrefix = "Include these keywords: "

	closingInstructions = "Structure content in clear paragraphs. Label each paragraph for paraphrasing. " +
		"Explain why the generated content is stylistically good at the end."

	paraphraseInstruction = "Paraphrase this paragraph more simply or differently:\n"
)

// BuildMainPrompt 渲染主生成提示词
// 未请求摘要或关键词时，对应行整行省略，不留空行。
func BuildMainPrompt(cfg entity.GenerationConfig) string {
	var b strings.Builder
	b.WriteString("You are an expert content writer.\n\n")
	fmt.Fprintf(&b, "Write a %s on the topic: \"%s\".\n\n", cfg.ContentType().Lower(), cfg.Topic())
	fmt.Fprintf(&b, "Length: %s\n", cfg.Length().Label())
	fmt.Fprintf(&b, "Style: %s\n", cfg.Style())
	fmt.Fprintf(&b, "Tone: %s\n", cfg.Tone())
	if cfg.IncludeSummary() {
		b.WriteString(summaryClause + "\n")
	}
	if kws := cfg.Keywords(); len(kws) > 0 {
		b.WriteString(keywordsPrefix + strings.Join(kws, ",") + "\n")
	}
	b.WriteString("\n" + closingInstructions)
	return b.String()
}

// BuildParaphrasePrompt 包装单个段落的改写指令
func BuildParaphrasePrompt(paragraph string) string {
	return paraphraseInstruction + paragraph
}

// BuildExplanationPrompt 请求对生成内容的风格做点评
func BuildExplanationPrompt(contentType entity.ContentType, style entity.Style, tone entity.Tone) string {
	return fmt.Sprintf(
		"Explain why this generated %s is stylistically good. "+
			"Highlight structure, tone, readability, and engagement based on %s style and %s tone.",
		contentType.Lower(), style, tone,
	)
}
