package classifier

import (
	"os"
	"testing"

	"shoplist-generator/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func TestParseContentValidJSON(t *testing.T) {
	t.Parallel()

	content := `{"ingredients":[{"name":"flour","quantity":"2","unit":"cups","category":"Pantry"},` +
		`{"name":"chicken breast","quantity":"1","unit":"lb","category":""}],` +
		`"servings":"4","cook_time":"30 minutes","difficulty":"easy","cuisine":"american","confidence":0.9}`

	analysis, err := ParseContent(content)
	require.NoError(t, err)
	require.Len(t, analysis.Ingredients, 2)
	assert.Equal(t, "flour", analysis.Ingredients[0].Name)
	assert.Equal(t, "2", analysis.Ingredients[0].Quantity)
	assert.Equal(t, "cups", analysis.Ingredients[0].Unit)
	assert.Equal(t, "4", analysis.Servings)
	assert.Equal(t, "30 minutes", analysis.CookTime)
	assert.InDelta(t, 0.9, analysis.Confidence, 1e-9)
}

func TestParseContentJSONAmidProse(t *testing.T) {
	t.Parallel()

	content := `Sure! Here is the extraction:
{"ingredients":[{"name":"basil","quantity":"","unit":"","category":"Produce"}],"confidence":0.6}
Let me know if you need anything else.`

	analysis, err := ParseContent(content)
	require.NoError(t, err)
	require.Len(t, analysis.Ingredients, 1)
	assert.Equal(t, "basil", analysis.Ingredients[0].Name)
}

func TestParseContentRepairsUnquotedKeys(t *testing.T) {
	t.Parallel()

	content := `{ingredients:[{name:"sugar",quantity:"1",unit:"cup",category:""}],confidence:0.7}`

	analysis, err := ParseContent(content)
	require.NoError(t, err)
	require.Len(t, analysis.Ingredients, 1)
	assert.Equal(t, "sugar", analysis.Ingredients[0].Name)
	assert.InDelta(t, 0.7, analysis.Confidence, 1e-9)
}

func TestParseContentClampsConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "above one", raw: 2.5, want: 1},
		{name: "below zero", raw: -0.3, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			content, err := common.ToJSON(map[string]interface{}{
				"ingredients": []map[string]string{{"name": "rice"}},
				"confidence":  tc.raw,
			})
			require.NoError(t, err)

			analysis, err := ParseContent(content)
			require.NoError(t, err)
			assert.Equal(t, tc.want, analysis.Confidence)
		})
	}
}

func TestParseContentMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "I could not find any ingredients."},
		{name: "no ingredients field", content: `{"confidence":0.8}`},
		{name: "empty ingredients", content: `{"ingredients":[],"confidence":0.8}`},
		{name: "only unnamed ingredients", content: `{"ingredients":[{"name":"  "}],"confidence":0.8}`},
		{name: "truncated object", content: `{"ingredients":[{"name":"flour"`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			analysis, err := ParseContent(tc.content)
			assert.Nil(t, analysis)
			require.Error(t, err)

			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, ReasonMalformed, cerr.Reason)
		})
	}
}
