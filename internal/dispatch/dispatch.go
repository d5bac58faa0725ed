// Package dispatch implements the action dispatcher and formatter of
// spec.md §4.1: it parses one raw action line into a typed command,
// drives internal/engine, and formats the engine's outcome records back
// into result lines. Grounded on internal/net/messages.go's parse/format
// split, retargeted from the teacher's binary wire protocol onto the
// spec's space-delimited text grammar (§6).
package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"simplecross/internal/engine"
	"simplecross/internal/price"
)

// Dispatcher drives one Engine from a stream of action lines.
type Dispatcher struct {
	engine *engine.Engine
}

// New returns a Dispatcher bound to e.
func New(e *engine.Engine) *Dispatcher {
	return &Dispatcher{engine: e}
}

// Stats exposes the underlying engine's book statistics for operational
// logging, without otherwise widening the engine's surface to callers.
func (d *Dispatcher) Stats() engine.Stats {
	return d.engine.Stats()
}

// Dispatch implements the `action(line) -> results` contract of §4.1: it
// is total — any parse or semantic failure produces exactly one formatted
// error line rather than aborting — and synchronous, returning every
// result line for this one action before the next line may be processed.
func (d *Dispatcher) Dispatch(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return []string{formatErr(0, "empty line")}
	}

	switch fields[0] {
	case "O":
		return d.dispatchPlace(fields[1:])
	case "X":
		return d.dispatchCancel(fields[1:])
	case "P":
		return d.dispatchSnapshot(fields[1:])
	default:
		return []string{formatErr(0, fmt.Sprintf("unrecognized action %q", fields[0]))}
	}
}

func (d *Dispatcher) dispatchPlace(fields []string) []string {
	if len(fields) != 5 {
		return []string{formatErr(oidOrZero(fields), "wrong number of fields for O")}
	}

	oid, err := parseOID(fields[0])
	if err != nil {
		return []string{formatErr(0, "Invalid order id")}
	}
	symbol := fields[1]
	if err := validateSymbol(symbol); err != nil {
		return []string{formatErr(oid, "Invalid symbol")}
	}
	side, err := parseSide(fields[2])
	if err != nil {
		return []string{formatErr(oid, "Invalid side")}
	}
	qty, err := parseQuantity(fields[3])
	if err != nil {
		return []string{formatErr(oid, "Invalid quantity")}
	}
	p, err := price.Parse(fields[4])
	if err != nil {
		return []string{formatErr(oid, "Invalid price")}
	}

	results := d.engine.Place(engine.Order{
		ID:       engine.OrderID(oid),
		Symbol:   symbol,
		Side:     side,
		Quantity: engine.Quantity(qty),
		Open:     engine.Quantity(qty),
		Price:    p,
	})
	return formatResults(results)
}

func (d *Dispatcher) dispatchCancel(fields []string) []string {
	if len(fields) != 1 {
		return []string{formatErr(oidOrZero(fields), "wrong number of fields for X")}
	}
	oid, err := parseOID(fields[0])
	if err != nil {
		return []string{formatErr(0, "Invalid order id")}
	}
	return formatResults(d.engine.Cancel(engine.OrderID(oid)))
}

func (d *Dispatcher) dispatchSnapshot(fields []string) []string {
	if len(fields) != 0 {
		return []string{formatErr(0, "P takes no fields")}
	}
	return formatResults(d.engine.Snapshot())
}

// oidOrZero best-efforts an identifier out of a malformed field list, so a
// wrong-arity line still reports the OID when one is recoverable (§4.1).
func oidOrZero(fields []string) engine.OrderID {
	if len(fields) == 0 {
		return 0
	}
	if oid, err := parseOID(fields[0]); err == nil {
		return oid
	}
	return 0
}

func parseOID(s string) (engine.OrderID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, fmt.Errorf("order id must be positive")
	}
	return engine.OrderID(v), nil
}

func parseQuantity(s string) (engine.Quantity, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, fmt.Errorf("quantity must be positive")
	}
	return engine.Quantity(v), nil
}

func parseSide(s string) (engine.Side, error) {
	switch s {
	case "B":
		return engine.Buy, nil
	case "S":
		return engine.Sell, nil
	default:
		return 0, fmt.Errorf("side must be B or S")
	}
}

func validateSymbol(s string) error {
	if len(s) < 1 || len(s) > 8 {
		return fmt.Errorf("symbol must be 1-8 characters")
	}
	for _, r := range s {
		alnum := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			return fmt.Errorf("symbol must be alphanumeric")
		}
	}
	return nil
}
