package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    Length
		wantErr bool
	}{
		{in: "concise", want: LengthConcise},
		{in: "Standard", want: LengthStandard},
		{in: " extended ", want: LengthExtended},
		{in: "Standard (1000–1500 words)", want: LengthStandard},
		{in: "Extended (up to 3000 words)", want: LengthExtended},
		{in: "long", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLengthLabels(t *testing.T) {
	assert.Equal(t, "Concise (500–700 words)", LengthConcise.Label())
	assert.Equal(t, "Standard (1000–1500 words)", LengthStandard.Label())
	assert.Equal(t, "Extended (up to 3000 words)", LengthExtended.Label())
}

func TestParseEnumsIgnoreCase(t *testing.T) {
	ct, err := ParseContentType("essay")
	require.NoError(t, err)
	assert.Equal(t, ContentTypeEssay, ct)
	assert.Equal(t, "essay", ct.Lower())

	st, err := ParseStyle("CONVERSATIONAL")
	require.NoError(t, err)
	assert.Equal(t, StyleConversational, st)

	tone, err := ParseTone("persuasive")
	require.NoError(t, err)
	assert.Equal(t, TonePersuasive, tone)

	_, err = ParseContentType("Poem")
	assert.Error(t, err)
	_, err = ParseStyle("Poetic")
	assert.Error(t, err)
	_, err = ParseTone("Angry")
	assert.Error(t, err)
}

func TestParseKeywords(t *testing.T) {
	if diff := cmp.Diff([]string{"a", "b", "c"}, ParseKeywords("a, b,,c")); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, ParseKeywords(""))
	assert.Empty(t, ParseKeywords(" , ,"))
}

func TestGenerationConfig_CopiesKeywords(t *testing.T) {
	kws := []string{"solar", "energy"}
	cfg := NewGenerationConfig(GenerationOptions{
		ContentType: ContentTypeBlog,
		Length:      LengthConcise,
		Style:       StyleFormal,
		Tone:        ToneInformative,
		Keywords:    kws,
		Topic:       "Solar power",
	})

	kws[0] = "mutated"
	assert.Equal(t, []string{"solar", "energy"}, cfg.Keywords())

	got := cfg.Keywords()
	got[1] = "mutated"
	assert.Equal(t, []string{"solar", "energy"}, cfg.Keywords())
}

func TestGenerationConfig_HasTopic(t *testing.T) {
	assert.False(t, NewGenerationConfig(GenerationOptions{}).HasTopic())
	assert.False(t, NewGenerationConfig(GenerationOptions{Topic: " \t"}).HasTopic())
	assert.True(t, NewGenerationConfig(GenerationOptions{Topic: "x"}).HasTopic())
}

func TestGenerationConfig_Validate(t *testing.T) {
	valid := GenerationOptions{
		ContentType: ContentTypeEssay,
		Length:      LengthExtended,
		Style:       StyleAcademic,
		Tone:        ToneDescriptive,
	}
	require.NoError(t, NewGenerationConfig(valid).Validate())

	tests := []struct {
		name   string
		mutate func(*GenerationOptions)
	}{
		{name: "content type", mutate: func(o *GenerationOptions) { o.ContentType = "blog" }},
		{name: "length", mutate: func(o *GenerationOptions) { o.Length = "huge" }},
		{name: "style", mutate: func(o *GenerationOptions) { o.Style = "" }},
		{name: "tone", mutate: func(o *GenerationOptions) { o.Tone = "Sad" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			assert.Error(t, NewGenerationConfig(opts).Validate())
		})
	}
}
