package frame

import "fmt"

// Frame is one length:payload<tag> unit. Payload aliases the input
// buffer; End is the offset just past the tag byte.
type Frame struct {
	Len     int
	Tag     Tag
	Payload []byte
	End     int
}

// Parse scans a single frame starting at off. It never reads past
// len(d) and holds no state between calls; decoding nested payloads is
// the caller's concern.
func Parse(d []byte, off int) (Frame, error) {
	if off < 0 || off > len(d) {
		return Frame{}, fmt.Errorf("%w: offset %d out of range", ErrNoLength, off)
	}
	i := off
	var n uint64
	for i < len(d) && asciiDigit(d[i]) {
		n = n*10 + uint64(d[i]-'0')
		if n > uint64(len(d)) {
			// The declared length can never fit in the remaining
			// buffer, and this also bounds n below overflow.
			return Frame{}, fmt.Errorf("%w: declared length exceeds input at offset %d", ErrTruncated, off)
		}
		i++
	}
	if i == off {
		return Frame{}, fmt.Errorf("%w at offset %d", ErrNoLength, off)
	}
	if d[off] == '0' && i-off > 1 {
		return Frame{}, fmt.Errorf("%w at offset %d", ErrLeadingZero, off)
	}
	if i == len(d) || d[i] != ':' {
		return Frame{}, fmt.Errorf("%w at offset %d", ErrNoColon, i)
	}
	i++
	l := int(n)
	if l > len(d)-i {
		return Frame{}, fmt.Errorf("%w: payload needs %d bytes, %d remain", ErrTruncated, l, len(d)-i)
	}
	payload := d[i : i+l]
	ti := i + l
	if ti == len(d) {
		return Frame{}, fmt.Errorf("%w: missing tag byte at offset %d", ErrTruncated, ti)
	}
	tag := Tag(d[ti])
	if !tag.Valid() {
		return Frame{}, fmt.Errorf("%w %q at offset %d", ErrUnknownTag, d[ti], ti)
	}
	return Frame{Len: l, Tag: tag, Payload: payload, End: ti + 1}, nil
}
