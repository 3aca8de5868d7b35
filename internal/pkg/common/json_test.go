package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	var analysis RecipeAnalysis
	err := ParseJSON(`{"ingredients":[{"name":"flour"}],"confidence":0.8}`, &analysis)
	require.NoError(t, err)
	assert.Len(t, analysis.Ingredients, 1)

	// 結尾多餘資料視為錯誤
	err = ParseJSON(`{"confidence":0.8}{"confidence":0.9}`, &analysis)
	assert.Error(t, err)
}

func TestParseJSONStrict(t *testing.T) {
	t.Parallel()

	var ing ExtractedIngredient
	err := ParseJSONStrict(`{"name":"flour","bogus_field":1}`, &ing)
	assert.Error(t, err)
}

func TestQuoteJSONKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unquoted object keys",
			input: `{name:"flour",quantity:"2"}`,
			want:  `{"name":"flour","quantity":"2"}`,
		},
		{
			name:  "already quoted untouched",
			input: `{"name":"flour"}`,
			want:  `{"name":"flour"}`,
		},
		{
			name:  "colon inside string value untouched",
			input: `{"note":"ratio 1:2"}`,
			want:  `{"note":"ratio 1:2"}`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, QuoteJSONKeys(tc.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "object amid prose",
			input: `Here you go: {"a":1} hope that helps`,
			want:  `{"a":1}`,
		},
		{
			name:  "bare object",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "no object returns input",
			input: "nothing here",
			want:  "nothing here",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExtractJSONObject(tc.input))
		})
	}
}

func TestClampConfidence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, ClampConfidence(-1))
	assert.Equal(t, 1.0, ClampConfidence(3.2))
	assert.Equal(t, 0.42, ClampConfidence(0.42))
}
