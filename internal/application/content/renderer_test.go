package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-content-writer/internal/domain/entity"
	llmctx "ai-content-writer/internal/domain/service"
	apperrors "ai-content-writer/pkg/errors"
)

func TestRenderer_Render(t *testing.T) {
	gen := &fakeGenerator{explainText: "Clear structure."}
	r := NewRenderer(gen)
	view := NewTranscript()
	doc := entity.NewGeneratedDocument("Para one.\n\nPara two.\n\n\nPara three.")

	exp := r.Render(context.Background(), blogConfig("Climate change"), doc, view)

	require.NotNil(t, exp)
	assert.False(t, exp.Failed())
	assert.Equal(t, entity.ExplanationHeading, exp.Heading)
	assert.Equal(t, "Clear structure.", exp.Text)

	want := []BlockKind{BlockParagraph, BlockParagraph, BlockParagraph, BlockProgress, BlockExplanation}
	if diff := cmp.Diff(want, view.Kinds()); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}

	blocks := view.Blocks()
	for i, text := range []string{"Para one.", "Para two.", "Para three."} {
		assert.Equal(t, i+1, blocks[i].ParagraphNumber)
		assert.Equal(t, text, blocks[i].Text)
	}

	calls := gen.CallsFor(llmctx.WorkflowStyleExplanation)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, "Explain why this generated blog is stylistically good")
	assert.Contains(t, calls[0].Prompt, "Formal style and Informative tone")
}

func TestRenderer_RenderExplanationFailureKeepsParagraphs(t *testing.T) {
	gen := &fakeGenerator{explainErr: errors.New("quota exceeded")}
	view := NewTranscript()
	doc := entity.NewGeneratedDocument("One.\n\nTwo.")

	exp := NewRenderer(gen).Render(context.Background(), blogConfig("x"), doc, view)

	require.True(t, exp.Failed())
	assert.True(t, apperrors.HasCode(exp.Err, apperrors.CodeLLMCallFailed))
	assert.Empty(t, exp.Text)

	want := []BlockKind{BlockParagraph, BlockParagraph, BlockProgress, BlockFailure}
	if diff := cmp.Diff(want, view.Kinds()); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
	last := view.Blocks()[3]
	assert.Equal(t, UnitExplanation, last.Unit)
	assert.Contains(t, last.Error, "quota exceeded")
}

func TestRenderer_ParaphraseNeverCaches(t *testing.T) {
	gen := &fakeGenerator{}
	r := NewRenderer(gen)
	p := entity.Paragraph{Number: 2, Text: "Second paragraph."}

	first := r.Paraphrase(context.Background(), p, nil)
	second := r.Paraphrase(context.Background(), p, nil)

	require.NoError(t, first.Err)
	require.NoError(t, second.Err)
	assert.Equal(t, 2, first.ParagraphNumber)
	assert.Equal(t, "simpler: Second paragraph.", first.Text)

	calls := gen.CallsFor(llmctx.WorkflowParagraphParaphrase)
	require.Len(t, calls, 2)
	for _, c := range calls {
		assert.Equal(t, "Paraphrase this paragraph more simply or differently:\nSecond paragraph.", c.Prompt)
	}
}

func TestRenderer_ParaphraseFailureIsInline(t *testing.T) {
	gen := &fakeGenerator{paraphrase: func(string) (string, error) {
		return "", errors.New("network down")
	}}
	view := NewTranscript()

	res := NewRenderer(gen).Paraphrase(context.Background(), entity.Paragraph{Number: 1, Text: "A."}, view)

	require.Error(t, res.Err)
	assert.True(t, apperrors.HasCode(res.Err, apperrors.CodeLLMCallFailed))
	blocks := view.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, BlockFailure, blocks[1].Kind)
	assert.Equal(t, UnitParaphrase, blocks[1].Unit)
	assert.Equal(t, 1, blocks[1].ParagraphNumber)
}
