// Package wiresim simulates computation graphs built from typed gates
// over an indexed wire memory.
//
// The circuit package is the core: a validating builder, an immutable
// circuit that can itself be embedded as a component of a larger
// circuit, and an executor. The gate and number packages provide
// ready-made components and value types, and the bristol package
// connects the core to circuit descriptions in the Bristol text
// format. This root package ties them together behind a name-keyed
// Simulate call.
package wiresim

import "github.com/blang/semver/v4"

// Version of the library.
var Version = semver.MustParse("0.1.0")
