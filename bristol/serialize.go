package bristol

import (
	"errors"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
)

// ErrVersionMismatch is returned by ReadFrom when the artifact was
// written with an incompatible format version.
var ErrVersionMismatch = errors.New("incompatible artifact version")

// formatVersion stamps binary artifacts. Major bumps break
// compatibility.
var formatVersion = semver.MustParse("1.0.0")

// artifact is the binary on-disk form of a circuit: a version stamp
// followed by the circuit body, CBOR-encoded deterministically.
type artifact struct {
	Version string  `cbor:"1,keyasint"`
	Circuit Circuit `cbor:"2,keyasint"`
}

// WriteTo serializes the circuit as a versioned binary artifact.
func (c *Circuit) WriteTo(w io.Writer) (int64, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	err = em.NewEncoder(cw).Encode(artifact{
		Version: formatVersion.String(),
		Circuit: *c,
	})
	return cw.n, err
}

// ReadFrom deserializes a circuit written by WriteTo. Artifacts from a
// different major version are rejected.
func (c *Circuit) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	var a artifact
	if err := cbor.NewDecoder(cr).Decode(&a); err != nil {
		return cr.n, err
	}
	v, err := semver.Parse(a.Version)
	if err != nil {
		return cr.n, fmt.Errorf("%w: bad version stamp %q", ErrVersionMismatch, a.Version)
	}
	if v.Major != formatVersion.Major {
		return cr.n, fmt.Errorf("%w: artifact %s, library %s", ErrVersionMismatch, v, formatVersion)
	}
	*c = a.Circuit
	return cr.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
