// Package grib reads WMO GRIB edition 1 and edition 2 meteorological
// messages from a stream or byte buffer. Framing, section-chain
// assembly and lazy decoding are edition-specific (see the grib1 and
// grib2 subpackages); this package scans a stream for message
// boundaries and hands each message to the right edition's parser.
//
// Basic usage:
//
//	data, err := os.ReadFile("forecast.grb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	messages, err := grib.ReadAll(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, m := range messages {
//	    t, _ := m.GetTime()
//	    fmt.Printf("%s edition %d at %s\n", m.Name(), m.Edition(), t)
//	}
//
// Streaming usage, for files too large to hold in memory at once:
//
//	it := grib.Read(f)
//	for {
//	    m, err := it.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // use m
//	}
package grib

import "fmt"

// Kind classifies a ParseError, letting callers react programmatically
// (e.g. skip a message and keep scanning) instead of matching strings.
type Kind int

const (
	// NotGrib means the expected "GRIB" magic number was not found at
	// the scanned offset.
	NotGrib Kind = iota
	// UnexpectedEOF means the stream or buffer ended before a
	// section's declared length was satisfied.
	UnexpectedEOF
	// UnknownEdition means the byte at the edition-number position was
	// neither 1 nor 2.
	UnknownEdition
	// MissingTrailer means a message's last four bytes were not "7777".
	MissingTrailer
	// Unsupported means the message is well-formed but uses a feature
	// this reader does not decode. No function in this module returns a
	// ParseError of this kind: the grib1 and grib2 accessors report
	// unsupported features (a GRIB1 catalogued grid or non-simple
	// packing, GRIB2 value/coordinate reconstruction) as plain errors.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case NotGrib:
		return "not a GRIB message"
	case UnexpectedEOF:
		return "unexpected end of data"
	case UnknownEdition:
		return "unknown GRIB edition"
	case MissingTrailer:
		return "missing end-of-message marker"
	case Unsupported:
		return "unsupported feature"
	default:
		return "unknown error"
	}
}

// ParseError reports a framing or decode failure together with the
// byte offset (relative to the start of the stream or buffer being
// scanned) of the message where it was found.
type ParseError struct {
	Kind       Kind
	Offset     int
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("grib: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("grib: %s at offset %d", e.Kind, e.Offset)
}

// Unwrap returns the underlying error, if any, so errors.Is/errors.As
// see through a ParseError to its cause.
func (e *ParseError) Unwrap() error {
	return e.Underlying
}
