// Package bristol reads, writes and compiles arithmetic circuit
// descriptions in the Bristol text format, together with the metadata
// file naming their inputs, outputs and constants by wire index.
package bristol

import "github.com/wiresim/wiresim/gate"

// Circuit is a parsed circuit description: a flat, evaluation-ordered
// gate list over a contiguous wire space, plus the naming metadata.
type Circuit struct {
	WireCount int    `json:"wire_count" cbor:"1,keyasint"`
	Info      Info   `json:"info" cbor:"2,keyasint"`
	Gates     []Gate `json:"gates" cbor:"3,keyasint"`
}

// Gate is one two-input, one-output gate line.
type Gate struct {
	Op   gate.Op `json:"op" cbor:"1,keyasint"`
	LhIn int     `json:"lh_in" cbor:"2,keyasint"`
	RhIn int     `json:"rh_in" cbor:"3,keyasint"`
	Out  int     `json:"out" cbor:"4,keyasint"`
}

// Info names the circuit's external surface. Inputs and outputs map a
// name to the wire carrying it; constants additionally carry the value
// to seed, as a string in the value type's own syntax.
type Info struct {
	InputNameToWireIndex  map[string]int          `json:"input_name_to_wire_index" cbor:"1,keyasint"`
	Constants             map[string]ConstantInfo `json:"constants" cbor:"2,keyasint"`
	OutputNameToWireIndex map[string]int          `json:"output_name_to_wire_index" cbor:"3,keyasint"`
}

// ConstantInfo is one named constant: its value and the wire it is
// seeded on.
type ConstantInfo struct {
	Value     string `json:"value" cbor:"1,keyasint"`
	WireIndex int    `json:"wire_index" cbor:"2,keyasint"`
}
