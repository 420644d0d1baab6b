package grib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{NotGrib, "not a GRIB message"},
		{UnexpectedEOF, "unexpected end of data"},
		{UnknownEdition, "unknown GRIB edition"},
		{MissingTrailer, "missing end-of-message marker"},
		{Unsupported, "unsupported feature"},
		{Kind(99), "unknown error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.k.String())
		})
	}
}

func TestParseErrorWithMessage(t *testing.T) {
	e := &ParseError{Kind: NotGrib, Offset: 42, Message: "bad magic"}
	assert.Equal(t, `grib: not a GRIB message at offset 42: bad magic`, e.Error())
}

func TestParseErrorWithoutMessage(t *testing.T) {
	e := &ParseError{Kind: MissingTrailer, Offset: 7}
	assert.Equal(t, `grib: missing end-of-message marker at offset 7`, e.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	underlying := errors.New("boom")
	e := &ParseError{Kind: UnexpectedEOF, Offset: 0, Underlying: underlying}
	assert.True(t, errors.Is(e, underlying), "errors.Is should see through ParseError to its Underlying cause")
}
