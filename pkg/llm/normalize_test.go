package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced json tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n {\"a\":1} \n ", `{"a":1}`},
		{"fence without newline", "```json{\"a\":1}```", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripFences(tc.in))
		})
	}
}

func TestDecodeObjectRoundTrip(t *testing.T) {
	type payload struct {
		Skills []string `json:"skills"`
		Match  float64  `json:"match"`
	}
	raw := `{"skills":["Go","SQL"],"match":50}`

	var plain payload
	require.NoError(t, DecodeObject(raw, &plain))

	var fenced payload
	require.NoError(t, DecodeObject("```json\n"+raw+"\n```", &fenced))

	assert.Equal(t, plain, fenced)
	assert.Equal(t, []string{"Go", "SQL"}, plain.Skills)
	assert.Equal(t, 50.0, plain.Match)
}

func TestDecodeObjectExtractsEmbeddedJSON(t *testing.T) {
	var out map[string]any
	err := DecodeObject(`Here is the result: {"a":"b"} hope it helps`, &out)
	require.NoError(t, err)
	assert.Equal(t, "b", out["a"])
}

func TestDecodeObjectNotJSON(t *testing.T) {
	var out map[string]any
	assert.ErrorIs(t, DecodeObject("not json", &out), ErrNotJSON)
}

func TestDecodeArray(t *testing.T) {
	type item struct {
		Skill string `json:"skill"`
	}

	t.Run("array round trip", func(t *testing.T) {
		var items []item
		require.NoError(t, DecodeArray(`[{"skill":"SQL"},{"skill":"Go"}]`, &items))
		assert.Len(t, items, 2)
		assert.Equal(t, "SQL", items[0].Skill)
	})

	t.Run("fenced equals unfenced", func(t *testing.T) {
		var a, b []item
		require.NoError(t, DecodeArray(`[{"skill":"SQL"}]`, &a))
		require.NoError(t, DecodeArray("```json\n[{\"skill\":\"SQL\"}]\n```", &b))
		assert.Equal(t, a, b)
	})

	t.Run("bare object wrapped into one-element array", func(t *testing.T) {
		var items []item
		require.NoError(t, DecodeArray(`{"skill":"SQL"}`, &items))
		require.Len(t, items, 1)
		assert.Equal(t, "SQL", items[0].Skill)
	})

	t.Run("embedded array extracted", func(t *testing.T) {
		var items []item
		require.NoError(t, DecodeArray(`The roadmap: [{"skill":"SQL"}] done.`, &items))
		assert.Len(t, items, 1)
	})

	t.Run("not json", func(t *testing.T) {
		var items []item
		assert.ErrorIs(t, DecodeArray("sorry, I cannot help with that", &items), ErrNotJSON)
	})
}
