package dispatch

import (
	"testing"

	"simplecross/internal/engine"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_ScenarioA(t *testing.T) {
	d := New(engine.New())

	assert.Empty(t, d.Dispatch("O 10000 IBM B 10 100.00000"))
	assert.Empty(t, d.Dispatch("O 10001 IBM B 10 99.00000"))
	assert.Empty(t, d.Dispatch("O 10002 IBM S 5 101.00000"))

	out := d.Dispatch("O 10003 IBM S 5 100.00000")
	assert.Equal(t, []string{
		"F 10003 IBM 5 100.00000",
		"F 10000 IBM 5 100.00000",
	}, out)
}

func TestDispatch_ScenarioBAndC(t *testing.T) {
	d := New(engine.New())
	d.Dispatch("O 10000 IBM B 10 100.00000")
	d.Dispatch("O 10001 IBM B 10 99.00000")
	d.Dispatch("O 10002 IBM S 5 101.00000")
	d.Dispatch("O 10003 IBM S 5 100.00000")

	out := d.Dispatch("O 10004 IBM S 5 100.00000")
	assert.Equal(t, []string{
		"F 10004 IBM 5 100.00000",
		"F 10000 IBM 5 100.00000",
	}, out)

	assert.Equal(t, []string{"X 10002"}, d.Dispatch("X 10002"))

	d.Dispatch("O 10005 IBM B 10 99.00000")
	d.Dispatch("O 10006 IBM B 10 100.00000")
	d.Dispatch("O 10007 IBM S 10 101.00000")
	d.Dispatch("O 10008 IBM S 10 102.00000")

	assert.Equal(t, []string{"E 10008 Duplicate order id"}, d.Dispatch("O 10008 IBM S 10 102.00000"))

	d.Dispatch("O 10009 IBM S 10 102.00000")

	snap := d.Dispatch("P")
	assert.Equal(t, []string{
		"P 10009 IBM S 10 102.00000",
		"P 10008 IBM S 10 102.00000",
		"P 10007 IBM S 10 101.00000",
		"P 10006 IBM B 10 100.00000",
		"P 10001 IBM B 10 99.00000",
		"P 10005 IBM B 10 99.00000",
	}, snap)
}

func TestDispatch_ScenarioD(t *testing.T) {
	d := New(engine.New())
	for _, line := range []string{
		"O 10000 IBM B 10 100.00000",
		"O 10001 IBM B 10 99.00000",
		"O 10002 IBM S 5 101.00000",
		"O 10003 IBM S 5 100.00000",
		"O 10004 IBM S 5 100.00000",
		"X 10002",
		"O 10005 IBM B 10 99.00000",
		"O 10006 IBM B 10 100.00000",
		"O 10007 IBM S 10 101.00000",
		"O 10008 IBM S 10 102.00000",
		"O 10009 IBM S 10 102.00000",
	} {
		d.Dispatch(line)
	}

	out := d.Dispatch("O 10010 IBM B 13 102.00000")
	assert.Equal(t, []string{
		"F 10010 IBM 10 101.00000",
		"F 10007 IBM 10 101.00000",
		"F 10010 IBM 3 102.00000",
		"F 10008 IBM 3 102.00000",
	}, out)
}

func TestDispatch_CancelUnknown(t *testing.T) {
	d := New(engine.New())
	assert.Equal(t, []string{"E 99999 Order ID not on book"}, d.Dispatch("X 99999"))
}

func TestDispatch_EmptyLine(t *testing.T) {
	d := New(engine.New())
	out := d.Dispatch("")
	assert.Equal(t, []string{"E 0 empty line"}, out)
}

func TestDispatch_InvalidSide(t *testing.T) {
	d := New(engine.New())
	out := d.Dispatch("O 1 IBM X 10 100.00000")
	assert.Equal(t, []string{"E 1 Invalid side"}, out)
}

func TestDispatch_InvalidQuantity(t *testing.T) {
	d := New(engine.New())
	out := d.Dispatch("O 1 IBM B 0 100.00000")
	assert.Equal(t, []string{"E 1 Invalid quantity"}, out)
}

func TestDispatch_InvalidPrice(t *testing.T) {
	d := New(engine.New())
	out := d.Dispatch("O 1 IBM B 10 100.0")
	assert.Equal(t, []string{"E 1 Invalid price"}, out)
}

func TestDispatch_InvalidSymbolTooLong(t *testing.T) {
	d := New(engine.New())
	out := d.Dispatch("O 1 TOOLONGSYM B 10 100.00000")
	assert.Equal(t, []string{"E 1 Invalid symbol"}, out)
}

func TestDispatch_SymbolBoundaryLengths(t *testing.T) {
	d := New(engine.New())
	assert.Empty(t, d.Dispatch("O 1 A B 10 100.00000"))
	assert.Empty(t, d.Dispatch("O 2 ABCDEFGH B 10 100.00000"))
}

func TestDispatch_UnrecognizedAction(t *testing.T) {
	d := New(engine.New())
	out := d.Dispatch("Z 1")
	assert.Equal(t, []string{`E 0 unrecognized action "Z"`}, out)
}

func TestDispatch_BoundaryMinMaxOID(t *testing.T) {
	d := New(engine.New())
	assert.Empty(t, d.Dispatch("O 1 IBM B 1 0.00001"))
	assert.Empty(t, d.Dispatch("O 4294967295 IBM B 65535 9999999.99999"))
}
