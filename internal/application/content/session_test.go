package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-content-writer/internal/domain/entity"
	llmctx "ai-content-writer/internal/domain/service"
	workflowport "ai-content-writer/internal/workflow/port"
	apperrors "ai-content-writer/pkg/errors"
)

func TestSession_TriggerNoop(t *testing.T) {
	tests := []struct {
		name string
		req  TriggerRequest
	}{
		{name: "empty topic", req: TriggerRequest{Config: blogConfig(""), Pressed: true}},
		{name: "blank topic", req: TriggerRequest{Config: blogConfig("   "), Pressed: true}},
		{name: "not pressed", req: TriggerRequest{Config: blogConfig("Climate change"), Pressed: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{mainText: "ignored"}
			s := NewSession("s1", gen)
			view := NewTranscript()

			res, err := s.Trigger(context.Background(), tt.req, view)

			require.NoError(t, err)
			assert.False(t, res.Triggered)
			assert.Empty(t, gen.Calls())
			assert.Empty(t, view.Blocks())

			snap := s.Snapshot()
			assert.Equal(t, StateIdle, snap.State)
			assert.Empty(t, snap.Paragraphs)
			assert.Nil(t, snap.Explanation)
		})
	}
}

func TestSession_TriggerRendersDocument(t *testing.T) {
	gen := &fakeGenerator{
		mainText:    "First paragraph.\n\nSecond paragraph.",
		explainText: "Well structured.",
	}
	s := NewSession("s1", gen)
	view := NewTranscript()

	res, err := s.Trigger(context.Background(), TriggerRequest{Config: blogConfig("Climate change"), Pressed: true}, view)

	require.NoError(t, err)
	require.True(t, res.Triggered)
	assert.Equal(t, 2, res.Document.Len())
	assert.Equal(t, "Well structured.", res.Explanation.Text)

	mains := gen.CallsFor(llmctx.WorkflowContentGenerate)
	require.Len(t, mains, 1)
	assert.Contains(t, mains[0].Prompt, `Write a blog on the topic: "Climate change".`)
	assert.Len(t, gen.CallsFor(llmctx.WorkflowStyleExplanation), 1)
	assert.Empty(t, gen.CallsFor(llmctx.WorkflowParagraphParaphrase))

	assert.Equal(t, []BlockKind{
		BlockProgress, BlockParagraph, BlockParagraph, BlockProgress, BlockExplanation,
	}, view.Kinds())

	snap := s.Snapshot()
	assert.Equal(t, StateRendered, snap.State)
	require.NotNil(t, snap.Config)
	assert.Equal(t, "Climate change", snap.Config.Topic())
	require.Len(t, snap.Paragraphs, 2)
	for _, p := range snap.Paragraphs {
		assert.False(t, p.Expanded)
		assert.Nil(t, p.Paraphrase)
	}
}

func TestSession_ExpandIssuesFreshCallEachTime(t *testing.T) {
	gen := &fakeGenerator{
		mainText:    "First paragraph.\n\nSecond paragraph.",
		explainText: "ok",
	}
	s := NewSession("s1", gen)
	_, err := s.Trigger(context.Background(), TriggerRequest{Config: blogConfig("Climate change"), Pressed: true}, nil)
	require.NoError(t, err)

	res, err := s.Expand(context.Background(), 2, nil)
	require.NoError(t, err)
	require.NoError(t, res.Err)
	assert.Equal(t, "simpler: Second paragraph.", res.Text)

	calls := gen.CallsFor(llmctx.WorkflowParagraphParaphrase)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, "Second paragraph.")
	assert.NotContains(t, calls[0].Prompt, "First paragraph.")

	_, err = s.Expand(context.Background(), 2, nil)
	require.NoError(t, err)
	assert.Len(t, gen.CallsFor(llmctx.WorkflowParagraphParaphrase), 2)

	snap := s.Snapshot()
	assert.False(t, snap.Paragraphs[0].Expanded)
	assert.True(t, snap.Paragraphs[1].Expanded)
	require.NotNil(t, snap.Paragraphs[1].Paraphrase)
}

func TestSession_CollapseIsReversibleWithoutCalls(t *testing.T) {
	gen := &fakeGenerator{mainText: "A.\n\nB.", explainText: "ok"}
	s := NewSession("s1", gen)
	_, err := s.Trigger(context.Background(), TriggerRequest{Config: blogConfig("t"), Pressed: true}, nil)
	require.NoError(t, err)

	_, err = s.Expand(context.Background(), 1, nil)
	require.NoError(t, err)
	before := len(gen.Calls())

	require.NoError(t, s.Collapse(1))
	assert.Len(t, gen.Calls(), before)
	assert.False(t, s.Snapshot().Paragraphs[0].Expanded)

	_, err = s.Expand(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.True(t, s.Snapshot().Paragraphs[0].Expanded)
}

func TestSession_ExpandErrors(t *testing.T) {
	gen := &fakeGenerator{mainText: "Only one.", explainText: "ok"}
	s := NewSession("s1", gen)

	_, err := s.Expand(context.Background(), 1, nil)
	assert.ErrorIs(t, err, apperrors.ErrNotRendered)
	assert.ErrorIs(t, s.Collapse(1), apperrors.ErrNotRendered)

	_, err = s.Trigger(context.Background(), TriggerRequest{Config: blogConfig("t"), Pressed: true}, nil)
	require.NoError(t, err)

	for _, n := range []int{0, 2, -1} {
		_, err = s.Expand(context.Background(), n, nil)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeParagraphNotFound), "n=%d", n)
	}
	assert.Empty(t, gen.CallsFor(llmctx.WorkflowParagraphParaphrase))
}

func TestSession_MainFailureReturnsToIdle(t *testing.T) {
	gen := &fakeGenerator{mainErr: errors.New("quota exceeded")}
	s := NewSession("s1", gen)
	view := NewTranscript()

	res, err := s.Trigger(context.Background(), TriggerRequest{Config: blogConfig("t"), Pressed: true}, view)

	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeLLMCallFailed))
	assert.Empty(t, gen.CallsFor(llmctx.WorkflowStyleExplanation))

	blocks := view.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, BlockFailure, blocks[1].Kind)
	assert.Equal(t, UnitMain, blocks[1].Unit)

	snap := s.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.Paragraphs)
	assert.Error(t, snap.LastError)

	gen.mainErr = nil
	gen.mainText = "Recovered."
	res, err = s.Trigger(context.Background(), TriggerRequest{Config: blogConfig("t"), Pressed: true}, nil)
	require.NoError(t, err)
	assert.True(t, res.Triggered)
	assert.Equal(t, StateRendered, s.State())
	assert.NoError(t, s.Snapshot().LastError)
}

func TestSession_TriggerWhileGeneratingConflicts(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	gen := workflowport.TextGeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		if llmctx.WorkflowFromContext(ctx) == llmctx.WorkflowContentGenerate {
			close(entered)
			<-release
		}
		return "done", nil
	})
	s := NewSession("s1", gen)
	req := TriggerRequest{Config: blogConfig("t"), Pressed: true}

	errCh := make(chan error, 1)
	go func() {
		_, err := s.Trigger(context.Background(), req, nil)
		errCh <- err
	}()

	<-entered
	assert.Equal(t, StateGenerating, s.State())
	_, err := s.Trigger(context.Background(), req, nil)
	assert.ErrorIs(t, err, apperrors.ErrGenerationInProgress)

	close(release)
	require.NoError(t, <-errCh)
	assert.Equal(t, StateRendered, s.State())
}

func TestSession_InvalidConfig(t *testing.T) {
	gen := &fakeGenerator{}
	s := NewSession("s1", gen)
	cfg := entity.NewGenerationConfig(entity.GenerationOptions{
		ContentType: "Poem",
		Length:      entity.LengthConcise,
		Style:       entity.StyleFormal,
		Tone:        entity.ToneNeutral,
		Topic:       "t",
	})

	_, err := s.Trigger(context.Background(), TriggerRequest{Config: cfg, Pressed: true}, nil)

	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidParam))
	assert.Empty(t, gen.Calls())
}

func TestSession_EndToEndPrompt(t *testing.T) {
	gen := &fakeGenerator{mainText: "Body.", explainText: "ok"}
	s := NewSession("s1", gen)
	cfg := entity.NewGenerationConfig(entity.GenerationOptions{
		ContentType:    entity.ContentTypeBlog,
		Length:         entity.LengthStandard,
		Style:          entity.StyleFormal,
		Tone:           entity.ToneInformative,
		IncludeSummary: true,
		Keywords:       []string{"solar", "energy"},
		Topic:          "Solar power",
	})

	_, err := s.Trigger(context.Background(), TriggerRequest{Config: cfg, Pressed: true}, nil)
	require.NoError(t, err)

	mains := gen.CallsFor(llmctx.WorkflowContentGenerate)
	require.Len(t, mains, 1)
	prompt := mains[0].Prompt
	for _, want := range []string{
		"Solar power",
		"Standard (1000–1500 words)",
		"Formal",
		"Informative",
		"Include a brief summary at the end.",
		"Include these keywords: solar,energy",
	} {
		assert.Contains(t, prompt, want)
	}
}
