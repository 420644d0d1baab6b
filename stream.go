package grib

import (
	"encoding/binary"
	"fmt"
)

// MessageBoundary describes where one message starts and how many
// bytes it occupies within a scanned buffer.
type MessageBoundary struct {
	Start   int
	Length  int
	Edition int
}

// maxLeadingZeros bounds how many zero bytes FindMessages and the
// streaming reader will skip looking for the next message, matching
// pupygrib's _strip_zeros(stream, 256): GRIB files are sometimes
// padded to a block boundary with NUL bytes between messages, but an
// unbounded skip would turn a non-GRIB file into an infinite scan.
const maxLeadingZeros = 256

// parseFrame inspects the section 0 header at the start of buf
// (which must begin with at least 8 bytes) and returns the edition
// and the total message length it declares. offset is only used to
// annotate errors with the header's position in the enclosing stream
// or buffer.
//
// Both editions share byte layout for the first 8 bytes: "GRIB" (4
// bytes), then 3 more bytes, then the edition number at byte 7. Edition
// 1 packs a 3-byte big-endian message length into bytes 4-6; edition 2
// instead carries a 2-byte reserved field and a 1-byte discipline in
// bytes 4-6, and its real message length is an 8-byte big-endian
// integer at bytes 8-15.
func parseFrame(buf []byte, offset int) (edition int, length int64, err error) {
	if len(buf) < 8 {
		return 0, 0, &ParseError{Kind: UnexpectedEOF, Offset: offset, Message: "truncated section 0 header"}
	}
	if string(buf[0:4]) != "GRIB" {
		return 0, 0, &ParseError{Kind: NotGrib, Offset: offset, Message: fmt.Sprintf("expected GRIB magic number, found %q", buf[0:4])}
	}

	switch buf[7] {
	case 1:
		length = int64(uint32(buf[4])<<16 | uint32(buf[5])<<8 | uint32(buf[6]))
		return 1, length, nil
	case 2:
		if len(buf) < 16 {
			return 0, 0, &ParseError{Kind: UnexpectedEOF, Offset: offset, Message: "truncated section 0 total length"}
		}
		length = int64(binary.BigEndian.Uint64(buf[8:16]))
		return 2, length, nil
	default:
		return 0, 0, &ParseError{Kind: UnknownEdition, Offset: offset, Message: fmt.Sprintf("unknown GRIB edition %d", buf[7])}
	}
}

// FindMessages scans data for GRIB message boundaries, validating each
// message's declared length and "7777" trailer but not decoding any
// section content. It skips up to 256 leading zero bytes before each
// message, matching the padding pupygrib's reader tolerates between
// back-to-back messages.
func FindMessages(data []byte) ([]MessageBoundary, error) {
	var boundaries []MessageBoundary
	offset := 0

	for offset < len(data) {
		start := offset
		for start < len(data) && start-offset < maxLeadingZeros && data[start] == 0 {
			start++
		}
		if start >= len(data) {
			break
		}

		edition, length, err := parseFrame(data[start:], start)
		if err != nil {
			return nil, err
		}

		end := start + int(length)
		if end > len(data) {
			return nil, &ParseError{Kind: UnexpectedEOF, Offset: start, Message: "message length exceeds available data"}
		}
		if string(data[end-4:end]) != "7777" {
			return nil, &ParseError{Kind: MissingTrailer, Offset: start, Message: "end-of-message marker 7777 not found"}
		}

		boundaries = append(boundaries, MessageBoundary{Start: start, Length: int(length), Edition: edition})
		offset = end
	}

	return boundaries, nil
}
