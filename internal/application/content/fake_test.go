package content

import (
	"context"
	"strings"
	"sync"

	"ai-content-writer/internal/domain/entity"
	llmctx "ai-content-writer/internal/domain/service"
)

// call 一次记录下来的生成请求
type call struct {
	Workflow string
	Prompt   string
}

// fakeGenerator 按工作流返回预设结果，并记录全部请求
type fakeGenerator struct {
	mu    sync.Mutex
	calls []call

	mainText    string
	mainErr     error
	explainText string
	explainErr  error
	// paraphrase 为空时返回 "simpler: " + 段落原文
	paraphrase func(prompt string) (string, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	workflow := llmctx.WorkflowFromContext(ctx)
	f.mu.Lock()
	f.calls = append(f.calls, call{Workflow: workflow, Prompt: prompt})
	f.mu.Unlock()

	switch workflow {
	case llmctx.WorkflowContentGenerate:
		return f.mainText, f.mainErr
	case llmctx.WorkflowStyleExplanation:
		return f.explainText, f.explainErr
	case llmctx.WorkflowParagraphParaphrase:
		if f.paraphrase != nil {
			return f.paraphrase(prompt)
		}
		return "simpler: " + prompt[strings.Index(prompt, "\n")+1:], nil
	}
	return "", nil
}

func (f *fakeGenerator) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]call, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeGenerator) CallsFor(workflow string) []call {
	var out []call
	for _, c := range f.Calls() {
		if c.Workflow == workflow {
			out = append(out, c)
		}
	}
	return out
}

func blogConfig(topic string) entity.GenerationConfig {
	return entity.NewGenerationConfig(entity.GenerationOptions{
		ContentType: entity.ContentTypeBlog,
		Length:      entity.LengthStandard,
		Style:       entity.StyleFormal,
		Tone:        entity.ToneInformative,
		Topic:       topic,
	})
}
