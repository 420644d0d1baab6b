package grib

import (
	"io"
)

// MessageIterator reads GRIB messages one at a time from a stream,
// grounded on pupygrib's top-level read() generator: strip leading
// zero padding, frame the next message, hand it to the matching
// edition's parser, repeat until the stream is exhausted.
type MessageIterator struct {
	r      io.ReadSeeker
	name   string
	offset int
	done   bool
}

// Read returns an iterator over the GRIB messages in r. If r also
// implements Name() string (as *os.File does via its path), that name
// is carried into each returned Message for diagnostics.
func Read(r io.ReadSeeker) *MessageIterator {
	name := ""
	if named, ok := r.(interface{ Name() string }); ok {
		name = named.Name()
	}
	return &MessageIterator{r: r, name: name}
}

// stripLeadingZeros reads up to maxLeadingZeros bytes from r, then
// seeks back so the stream is positioned right after the run of
// leading zero bytes (if any). It returns io.EOF if no bytes remain.
// Grounded on pupygrib's top-level _strip_zeros.
func stripLeadingZeros(r io.ReadSeeker) error {
	buf := make([]byte, maxLeadingZeros)
	n, err := io.ReadFull(r, buf)
	if n == 0 {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return io.EOF
		}
		return err
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return err
	}
	buf = buf[:n]

	leading := 0
	for leading < len(buf) && buf[leading] == 0 {
		leading++
	}
	if _, err := r.Seek(-int64(len(buf)-leading), io.SeekCurrent); err != nil {
		return err
	}
	return nil
}

// Next returns the next message in the stream, or io.EOF once the
// stream is exhausted.
func (it *MessageIterator) Next() (Message, error) {
	if it.done {
		return nil, io.EOF
	}

	if err := stripLeadingZeros(it.r); err != nil {
		it.done = true
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, err
	}

	start, err := it.r.Seek(0, io.SeekCurrent)
	if err != nil {
		it.done = true
		return nil, err
	}

	header := make([]byte, 16)
	n, err := io.ReadFull(it.r, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		it.done = true
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, err
	}
	header = header[:n]

	edition, length, frameErr := parseFrame(header, int(start))
	if frameErr != nil {
		it.done = true
		return nil, frameErr
	}

	if _, err := it.r.Seek(start, io.SeekStart); err != nil {
		it.done = true
		return nil, err
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(it.r, buf); err != nil {
		it.done = true
		return nil, &ParseError{Kind: UnexpectedEOF, Offset: int(start), Message: "message truncated before declared length", Underlying: err}
	}

	if string(buf[len(buf)-4:]) != "7777" {
		it.done = true
		return nil, &ParseError{Kind: MissingTrailer, Offset: int(start), Message: "end-of-message marker 7777 not found"}
	}

	it.offset = int(start) + len(buf)
	return newMessage(edition, buf, it.name)
}
