package bristol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wiresim/wiresim/gate"
)

// Parse errors.
var (
	ErrInputCountMismatch  = errors.New("input count does not match circuit info")
	ErrOutputCountMismatch = errors.New("output count does not match circuit info")
	ErrTrailingContent     = errors.New("unexpected content after gate list")
)

// ReadCircuit parses a Bristol text description from r. The expected
// shape is a header line "gateCount wireCount", an input declaration
// line "n 1 1 ... 1", an output declaration line of the same shape,
// and then gateCount lines "2 1 lhIn rhIn out OP". Blank lines are
// skipped anywhere; anything but whitespace after the last gate is an
// error. The declared input and output counts are cross-checked
// against info.
func ReadCircuit(info Info, r io.Reader) (*Circuit, error) {
	sc := &lineScanner{sc: bufio.NewScanner(r)}

	header, err := sc.next()
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	gateCount, wireCount, err := header.sizes()
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	inputCount, err := sc.ioCount()
	if err != nil {
		return nil, fmt.Errorf("input declaration: %w", err)
	}
	if inputCount != len(info.InputNameToWireIndex) {
		return nil, fmt.Errorf("%w: declaration says %d, info names %d",
			ErrInputCountMismatch, inputCount, len(info.InputNameToWireIndex))
	}

	outputCount, err := sc.ioCount()
	if err != nil {
		return nil, fmt.Errorf("output declaration: %w", err)
	}
	if outputCount != len(info.OutputNameToWireIndex) {
		return nil, fmt.Errorf("%w: declaration says %d, info names %d",
			ErrOutputCountMismatch, outputCount, len(info.OutputNameToWireIndex))
	}

	gates := make([]Gate, 0, gateCount)
	for i := 0; i < gateCount; i++ {
		line, err := sc.next()
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		g, err := line.gate()
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		gates = append(gates, g)
	}

	if _, err := sc.next(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingContent
	}

	return &Circuit{WireCount: wireCount, Info: info, Gates: gates}, nil
}

// ParseCircuit is ReadCircuit over an in-memory description.
func ParseCircuit(info Info, s string) (*Circuit, error) {
	return ReadCircuit(info, strings.NewReader(s))
}

// lineScanner yields non-blank lines split into whitespace-separated
// fields.
type lineScanner struct {
	sc *bufio.Scanner
}

type bristolLine []string

func (s *lineScanner) next() (bristolLine, error) {
	for s.sc.Scan() {
		fields := strings.Fields(s.sc.Text())
		if len(fields) == 0 {
			continue
		}
		return fields, nil
	}
	if err := s.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// ioCount reads an input or output declaration line "n 1 1 ... 1" and
// returns n.
func (s *lineScanner) ioCount() (int, error) {
	line, err := s.next()
	if err != nil {
		return 0, err
	}
	count, err := line.intAt(0)
	if err != nil {
		return 0, err
	}
	if len(line) != count+1 {
		return 0, fmt.Errorf("expected %d fields, got %d", count+1, len(line))
	}
	for i := 1; i < len(line); i++ {
		if line[i] != "1" {
			return 0, fmt.Errorf("expected field %d to be 1, got %q", i, line[i])
		}
	}
	return count, nil
}

func (l bristolLine) sizes() (gateCount, wireCount int, err error) {
	if len(l) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(l))
	}
	if gateCount, err = l.intAt(0); err != nil {
		return 0, 0, err
	}
	if wireCount, err = l.intAt(1); err != nil {
		return 0, 0, err
	}
	return gateCount, wireCount, nil
}

func (l bristolLine) gate() (Gate, error) {
	if len(l) != 6 {
		return Gate{}, fmt.Errorf("expected 6 fields, got %d", len(l))
	}
	arity, err := l.intAt(0)
	if err != nil {
		return Gate{}, err
	}
	width, err := l.intAt(1)
	if err != nil {
		return Gate{}, err
	}
	if arity != 2 || width != 1 {
		return Gate{}, fmt.Errorf("expected 2 inputs and 1 output, got %d and %d", arity, width)
	}
	lh, err := l.intAt(2)
	if err != nil {
		return Gate{}, err
	}
	rh, err := l.intAt(3)
	if err != nil {
		return Gate{}, err
	}
	out, err := l.intAt(4)
	if err != nil {
		return Gate{}, err
	}
	op, err := gate.ParseOp(l[5])
	if err != nil {
		return Gate{}, err
	}
	return Gate{Op: op, LhIn: lh, RhIn: rh, Out: out}, nil
}

func (l bristolLine) intAt(i int) (int, error) {
	if i >= len(l) {
		return 0, fmt.Errorf("field %d missing", i)
	}
	n, err := strconv.Atoi(l[i])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("field %d: %q is not a non-negative integer", i, l[i])
	}
	return n, nil
}
