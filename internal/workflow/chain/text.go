package chain

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	einocallbacks "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/schema"

	llmctx "ai-content-writer/internal/domain/service"
	workflowport "ai-content-writer/internal/workflow/port"
	"ai-content-writer/pkg/logger"
)

const promptPreviewRunes = 80

// TextChain 将单条提示词发送给 ChatModel 并返回补全文本，实现 port.TextGenerator。
type TextChain struct {
	factory  workflowport.ChatModelFactory
	provider string
}

var _ workflowport.TextGenerator = (*TextChain)(nil)

// NewTextChain provider 为空时使用工厂的默认提供商
func NewTextChain(factory workflowport.ChatModelFactory, provider string) *TextChain {
	return &TextChain{factory: factory, provider: strings.TrimSpace(provider)}
}

func (c *TextChain) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.factory == nil {
		return "", fmt.Errorf("llm factory not configured")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}

	workflow := llmctx.WorkflowFromContext(ctx)
	ctx = llmctx.WithProvider(ctx, c.provider)
	chatModel, err := c.factory.Get(ctx, c.provider)
	if err != nil {
		return "", err
	}

	ctx = einocallbacks.InitCallbacks(ctx, &einocallbacks.RunInfo{
		Name:      workflow,
		Type:      "ChatModel",
		Component: components.ComponentOfChatModel,
	})

	logger.Debug(ctx, "llm call",
		"workflow", workflow,
		"provider", llmctx.ProviderFromContext(ctx),
		"prompt_preview", truncateByRunes(prompt, promptPreviewRunes),
	)

	outMsg, err := chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", err
	}
	if outMsg == nil {
		return "", fmt.Errorf("empty llm response")
	}

	content := strings.TrimSpace(outMsg.Content)
	if content == "" {
		return "", fmt.Errorf("empty completion for %s", workflow)
	}
	return content, nil
}

func truncateByRunes(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + "…"
		}
		n++
	}
	return s
}
