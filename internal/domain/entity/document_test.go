package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Paragraph
	}{
		{
			name: "triple newline does not consume a label",
			in:   "Para one.\n\nPara two.\n\n\nPara three.",
			want: []Paragraph{
				{Number: 1, Text: "Para one."},
				{Number: 2, Text: "Para two."},
				{Number: 3, Text: "Para three."},
			},
		},
		{
			name: "whitespace-only segments dropped",
			in:   "\n\nA\n\n   \n\nB\n\n",
			want: []Paragraph{
				{Number: 1, Text: "A"},
				{Number: 2, Text: "B"},
			},
		},
		{
			name: "crlf normalised",
			in:   "First\r\nline\r\n\r\nSecond",
			want: []Paragraph{
				{Number: 1, Text: "First\nline"},
				{Number: 2, Text: "Second"},
			},
		},
		{
			name: "single paragraph",
			in:   "Only one.",
			want: []Paragraph{{Number: 1, Text: "Only one."}},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitParagraphs(tt.in)); diff != "" {
				t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGeneratedDocument(t *testing.T) {
	doc := NewGeneratedDocument("One two.\n\nThree four five.")

	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, 5, doc.WordCount())
	assert.Equal(t, "One two.\n\nThree four five.", doc.Raw())

	p, ok := doc.Paragraph(2)
	assert.True(t, ok)
	assert.Equal(t, "Three four five.", p.Text)

	_, ok = doc.Paragraph(0)
	assert.False(t, ok)
	_, ok = doc.Paragraph(3)
	assert.False(t, ok)

	ps := doc.Paragraphs()
	ps[0].Text = "mutated"
	p, _ = doc.Paragraph(1)
	assert.Equal(t, "One two.", p.Text)
}

func TestGeneratedDocument_NilSafe(t *testing.T) {
	var doc *GeneratedDocument
	assert.Equal(t, 0, doc.Len())
	assert.Equal(t, 0, doc.WordCount())
	assert.Empty(t, doc.Raw())
	assert.Nil(t, doc.Paragraphs())
	_, ok := doc.Paragraph(1)
	assert.False(t, ok)

	var exp *StyleExplanation
	assert.False(t, exp.Failed())
}
