package ai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTone(t *testing.T) {
	tone, err := ParseTone("")
	require.NoError(t, err)
	assert.Equal(t, ToneFriendly, tone)

	tone, err = ParseTone("  Professional ")
	require.NoError(t, err)
	assert.Equal(t, ToneProfessional, tone)

	_, err = ParseTone("angry")
	assert.Error(t, err)
}

func TestMockDrafter_DraftReply(t *testing.T) {
	d := NewMockDrafter()

	t.Run("caps snippets at three and truncates them", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		draft := d.DraftReply(DraftContext{
			Subject:    "Billing question",
			KBSnippets: []string{"one", "two", "three", "four", long},
			Tone:       ToneProfessional,
		})

		assert.Contains(t, draft, "- one\n")
		assert.Contains(t, draft, "- three\n")
		assert.NotContains(t, draft, "- four")
		assert.NotContains(t, draft, long)
	})

	t.Run("truncation keeps multibyte text valid", func(t *testing.T) {
		draft := d.DraftReply(DraftContext{
			Subject:    "Unicode subject",
			KBSnippets: []string{strings.Repeat("é", 200)},
			Tone:       ToneProfessional,
		})

		assert.True(t, utf8.ValidString(draft))
		assert.Contains(t, draft, "- "+strings.Repeat("é", 140)+"\n")
	})

	t.Run("summarizes only the last two messages", func(t *testing.T) {
		draft := d.DraftReply(DraftContext{
			Subject:      "Login loop",
			LastMessages: []string{"first", "second", "third"},
			Tone:         ToneFriendly,
		})

		assert.Contains(t, draft, "second third")
		assert.NotContains(t, draft, "first second third")
	})

	t.Run("omits the summary line without messages", func(t *testing.T) {
		draft := d.DraftReply(DraftContext{Subject: "Empty", Tone: ToneProfessional})
		assert.NotContains(t, draft, "Summary of your latest message(s)")
	})
}
