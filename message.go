package grib

import (
	"fmt"
	"time"

	"github.com/mmp/wxgrib/grib1"
	"github.com/mmp/wxgrib/grib2"
)

// Message is a single parsed GRIB message, edition 1 or 2. Both
// grib1.Message and grib2.Message satisfy this interface without any
// adapter: they expose the same accessor shape by construction.
type Message interface {
	// Name returns the diagnostic source name the message was read
	// from (typically a file name), or "" if none was given.
	Name() string

	// Edition returns 1 or 2.
	Edition() int

	// GetTime returns the message's reference time.
	GetTime() (time.Time, error)

	// Section returns the message's section at the given index.
	// Edition 1 has sections 0-5 (indicator, product definition, grid
	// description, bit-map, binary data, end); edition 2 has sections
	// 0-8 (indicator, identification, local use, grid definition,
	// product definition, data representation, bit-map, data, end).
	// An out-of-range index returns an error.
	Section(index int) (interface{}, error)
}

// newMessage constructs the edition-appropriate Message implementation
// for a complete message buffer (from "GRIB" through "7777").
func newMessage(edition int, buf []byte, name string) (Message, error) {
	switch edition {
	case 1:
		return grib1.NewMessage(buf, name), nil
	case 2:
		return grib2.NewMessage(buf, name), nil
	default:
		return nil, fmt.Errorf("grib: unknown edition %d", edition)
	}
}
