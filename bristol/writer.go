package bristol

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteText emits the circuit in the same Bristol text shape ReadCircuit
// accepts, so a parsed circuit round-trips.
func (c *Circuit) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", len(c.Gates), c.WireCount)
	fmt.Fprintln(bw, ioLine(len(c.Info.InputNameToWireIndex)))
	fmt.Fprintln(bw, ioLine(len(c.Info.OutputNameToWireIndex)))
	fmt.Fprintln(bw)
	for _, g := range c.Gates {
		fmt.Fprintf(bw, "2 1 %d %d %d %v\n", g.LhIn, g.RhIn, g.Out, g.Op)
	}

	return bw.Flush()
}

func ioLine(n int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", n)
	for i := 0; i < n; i++ {
		sb.WriteString(" 1")
	}
	return sb.String()
}
