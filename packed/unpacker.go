package packed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Unpacker reads values from a byte source.
// Each 3-byte group yields upper then lower value.
// A trailing 2-byte remainder yields one final upper value.
type Unpacker struct {
	r       io.Reader
	offset  int64
	lower   Value
	pending bool
	err     error
}

// NewUnpacker creates an Unpacker.
func NewUnpacker(r io.Reader) *Unpacker {
	return &Unpacker{r: r}
}

// Offset returns the number of bytes consumed from the source.
func (u *Unpacker) Offset() int64 {
	return u.offset
}

// Next returns the next value.
// It returns io.EOF at the clean end of input, ErrTruncated if the input ends with a dangling byte,
// or a wrapped read error. Errors are sticky.
func (u *Unpacker) Next() (v Value, e error) {
	if u.pending {
		u.pending = false
		return u.lower, nil
	}
	if u.err != nil {
		return 0, u.err
	}

	var group [GroupSize]byte
	n, e := io.ReadFull(u.r, group[:])
	u.offset += int64(n)
	switch {
	case e == nil:
		upper, lower := SplitGroup(group)
		u.lower, u.pending = lower, true
		return upper, nil
	case errors.Is(e, io.EOF):
		u.err = io.EOF
	case errors.Is(e, io.ErrUnexpectedEOF) && n == 1:
		u.err = fmt.Errorf("%w at offset %d", ErrTruncated, u.offset-1)
	case errors.Is(e, io.ErrUnexpectedEOF):
		u.err = io.EOF
		upper, _ := SplitGroup(group)
		return upper, nil
	default:
		u.err = fmt.Errorf("read error at offset %d: %w", u.offset, e)
	}
	return 0, u.err
}

// Unpack decodes every value in an in-memory buffer.
func Unpack(wire []byte) (values []Value, e error) {
	u := NewUnpacker(bytes.NewReader(wire))
	values = make([]Value, 0, len(wire)*2/GroupSize+1)
	for {
		v, e := u.Next()
		if errors.Is(e, io.EOF) {
			return values, nil
		}
		if e != nil {
			return nil, e
		}
		values = append(values, v)
	}
}
