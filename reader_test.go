package grib

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageIteratorSingleMessage(t *testing.T) {
	data := validGrib1Message()
	it := Read(bytes.NewReader(data))

	m, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, m.Edition())

	_, err = it.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestMessageIteratorBackToBack(t *testing.T) {
	msg := validGrib1Message()
	data := append(append([]byte{}, msg...), msg...)
	it := Read(bytes.NewReader(data))

	count := 0
	for {
		_, err := it.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 2, count)
}

func TestMessageIteratorSkipsLeadingZeros(t *testing.T) {
	msg := validGrib1Message()
	padding := make([]byte, 16)
	data := append(append([]byte{}, padding...), msg...)
	it := Read(bytes.NewReader(data))

	m, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, m.Edition())
}

func TestMessageIteratorEmptyStream(t *testing.T) {
	it := Read(bytes.NewReader(nil))
	_, err := it.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestMessageIteratorMissingTrailer(t *testing.T) {
	msg := validGrib1Message()
	msg[len(msg)-1] = 'X'
	it := Read(bytes.NewReader(msg))
	_, err := it.Next()
	require.Error(t, err)
}

func TestMessageIteratorTruncatedMessage(t *testing.T) {
	msg := validGrib1Message()
	it := Read(bytes.NewReader(msg[:len(msg)-1]))
	_, err := it.Next()
	require.Error(t, err)
}
