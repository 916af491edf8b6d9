package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, r *strings.Reader) ([]uint32, error) {
	t.Helper()
	var words []uint32
	for woe := range StartLoading(r) {
		if woe.Err != nil {
			return words, woe.Err
		}
		words = append(words, woe.Word)
	}
	return words, nil
}

func TestSkipsBlankAndCommentLines(t *testing.T) {
	src := "00000013\n\n# a comment\n000000ab # trailing comment\n   \nFF\n"
	words, err := drain(t, strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x00000013, 0x000000ab, 0xFF}, words)
}

func TestMalformedHexFails(t *testing.T) {
	words, err := drain(t, strings.NewReader("not-hex"))
	require.Error(t, err)
	assert.Empty(t, words)

	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 1, le.Line)
}

func TestEmptyInputYieldsNoWords(t *testing.T) {
	words, err := drain(t, strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}
