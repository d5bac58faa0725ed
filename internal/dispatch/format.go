package dispatch

import (
	"fmt"

	"simplecross/internal/engine"
)

// formatResults renders a slice of engine outcome records into the wire
// lines of §6's output grammar.
func formatResults(results []engine.Result) []string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		switch v := r.(type) {
		case engine.Fill:
			lines = append(lines, fmt.Sprintf("F %d %s %d %s", v.OrderID, v.Symbol, v.Quantity, v.Price))
		case engine.CancelAck:
			lines = append(lines, fmt.Sprintf("X %d", v.OrderID))
		case engine.BookEntry:
			lines = append(lines, fmt.Sprintf("P %d %s %s %d %s", v.OrderID, v.Symbol, v.Side, v.Open, v.Price))
		case engine.Err:
			lines = append(lines, formatErr(v.OrderID, v.Message))
		}
	}
	return lines
}

func formatErr(oid engine.OrderID, message string) string {
	return fmt.Sprintf("E %d %s", oid, message)
}
