package chain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmctx "ai-content-writer/internal/domain/service"
)

type fakeChatModel struct {
	reply    *schema.Message
	err      error
	inputs   [][]*schema.Message
	provider string
}

func (m *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.inputs = append(m.inputs, input)
	m.provider = llmctx.ProviderFromContext(ctx)
	return m.reply, m.err
}

func (m *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

type fakeFactory struct {
	models    map[string]model.BaseChatModel
	requested []string
}

func (f *fakeFactory) Get(_ context.Context, name string) (model.BaseChatModel, error) {
	f.requested = append(f.requested, name)
	m, ok := f.models[name]
	if !ok {
		return nil, errors.New("provider not found")
	}
	return m, nil
}

func TestTextChain_Generate(t *testing.T) {
	cm := &fakeChatModel{reply: schema.AssistantMessage("  Para one.\n\nPara two.\n", nil)}
	factory := &fakeFactory{models: map[string]model.BaseChatModel{"gemini": cm}}
	c := NewTextChain(factory, " gemini ")

	ctx := llmctx.WithWorkflow(context.Background(), llmctx.WorkflowContentGenerate)
	got, err := c.Generate(ctx, "Write something")

	require.NoError(t, err)
	assert.Equal(t, "Para one.\n\nPara two.", got)
	assert.Equal(t, []string{"gemini"}, factory.requested)
	assert.Equal(t, "gemini", cm.provider)

	require.Len(t, cm.inputs, 1)
	require.Len(t, cm.inputs[0], 1)
	assert.Equal(t, schema.User, cm.inputs[0][0].Role)
	assert.Equal(t, "Write something", cm.inputs[0][0].Content)
}

func TestTextChain_Errors(t *testing.T) {
	tests := []struct {
		name    string
		chain   *TextChain
		prompt  string
		wantErr string
	}{
		{
			name:    "nil factory",
			chain:   NewTextChain(nil, ""),
			prompt:  "x",
			wantErr: "factory",
		},
		{
			name:    "blank prompt",
			chain:   NewTextChain(&fakeFactory{}, ""),
			prompt:  "  ",
			wantErr: "prompt is required",
		},
		{
			name:    "unknown provider",
			chain:   NewTextChain(&fakeFactory{}, "other"),
			prompt:  "x",
			wantErr: "provider not found",
		},
		{
			name: "model error",
			chain: NewTextChain(&fakeFactory{models: map[string]model.BaseChatModel{
				"": &fakeChatModel{err: errors.New("quota exceeded")},
			}}, ""),
			prompt:  "x",
			wantErr: "quota exceeded",
		},
		{
			name: "nil reply",
			chain: NewTextChain(&fakeFactory{models: map[string]model.BaseChatModel{
				"": &fakeChatModel{},
			}}, ""),
			prompt:  "x",
			wantErr: "empty llm response",
		},
		{
			name: "blank completion",
			chain: NewTextChain(&fakeFactory{models: map[string]model.BaseChatModel{
				"": &fakeChatModel{reply: schema.AssistantMessage(" \n ", nil)},
			}}, ""),
			prompt:  "x",
			wantErr: "empty completion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.chain.Generate(context.Background(), tt.prompt)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTruncateByRunes(t *testing.T) {
	assert.Equal(t, "short", truncateByRunes("short", 10))
	assert.Equal(t, "ab…", truncateByRunes("abcdef", 2))
	assert.Equal(t, "日本…", truncateByRunes("日本語テキスト", 2))
	assert.True(t, strings.HasSuffix(truncateByRunes(strings.Repeat("x", 100), promptPreviewRunes), "…"))
}
