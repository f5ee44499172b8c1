package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestParse$ ./internal/expr -count 1
func TestParse(t *testing.T) {
	terms, err := Parse("Position, !Frozen, ?Health, [in] Velocity, [none] game.Player")
	require.NoError(t, err)
	assert.Equal(t, []Term{
		{Name: "Position"},
		{Name: "Frozen", Oper: Not},
		{Name: "Health", Oper: Optional},
		{Name: "Velocity", Access: "in"},
		{Name: "game.Player", Access: "none"},
	}, terms)
}

func TestParseQualifiedName(t *testing.T) {
	terms, err := Parse("!github.com/edwinsyarief/kumiai.Position, [in] example.org/my-game/v2.Player")
	require.NoError(t, err)
	assert.Equal(t, []Term{
		{Name: "github.com/edwinsyarief/kumiai.Position", Oper: Not},
		{Name: "example.org/my-game/v2.Player", Access: "in"},
	}, terms)
}

func TestParseInOutIsDefault(t *testing.T) {
	terms, err := Parse("[inout] Position")
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "", terms[0].Access)
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "   ", "Position,", "!", "[sideways] Position", "Position Velocity"} {
		_, err := Parse(s)
		assert.Error(t, err, "expression %q", s)
	}
	_, err := Parse("Position Velocity")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse query expression")
}

func TestFormat(t *testing.T) {
	const s = "Position, !Frozen, ?Health, [out] Velocity"
	terms, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, s, Format(terms))
}
