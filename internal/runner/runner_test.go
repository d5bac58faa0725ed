package runner

import (
	"bytes"
	"strings"
	"testing"

	"simplecross/internal/dispatch"
	"simplecross/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tomb "gopkg.in/tomb.v2"
)

func TestRun_ProcessesEveryLineInOrder(t *testing.T) {
	tb := new(tomb.Tomb)
	d := dispatch.New(engine.New())
	in := strings.NewReader("O 1 IBM B 10 100.00000\nO 2 IBM S 10 100.00000\n")
	var out bytes.Buffer

	err := Run(tb, d, in, &out)
	require.NoError(t, err)

	assert.Equal(t, "F 2 IBM 10 100.00000\nF 1 IBM 10 100.00000\n", out.String())
}

func TestRun_EmptyInputProducesNoOutput(t *testing.T) {
	tb := new(tomb.Tomb)
	d := dispatch.New(engine.New())
	var out bytes.Buffer

	err := Run(tb, d, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRun_StopsWhenTombDying(t *testing.T) {
	tb := new(tomb.Tomb)
	tb.Kill(nil)
	d := dispatch.New(engine.New())
	in := strings.NewReader("O 1 IBM B 10 100.00000\n")
	var out bytes.Buffer

	err := Run(tb, d, in, &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}
