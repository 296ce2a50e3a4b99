// Package packed decodes 12-bit values packed two per 3-byte group.
package packed

// Bit widths and limits.
const (
	Bits      = 12
	MaxValue  = 1<<Bits - 1
	NValues   = MaxValue + 1
	GroupSize = 3
)

// Value is a 12-bit unsigned quantity.
type Value uint16

// Valid determines whether v fits in 12 bits.
func (v Value) Valid() bool {
	return v <= MaxValue
}

// SplitGroup decodes a 3-byte group as a 24-bit big-endian integer.
// upper is the top 12 bits; lower is the bottom 12 bits.
func SplitGroup(group [GroupSize]byte) (upper, lower Value) {
	n := uint32(group[0])<<16 | uint32(group[1])<<8 | uint32(group[2])
	return Value(n >> Bits), Value(n & MaxValue)
}

// JoinGroup encodes two values into a 3-byte group.
// Bits above the lowest 12 of each value are discarded.
func JoinGroup(upper, lower Value) (group [GroupSize]byte) {
	n := uint32(upper&MaxValue)<<Bits | uint32(lower&MaxValue)
	group[0], group[1], group[2] = byte(n>>16), byte(n>>8), byte(n)
	return group
}

// Pack encodes values into groups.
// If there is an odd number of values, the last one is written as a 2-byte remainder.
func Pack(values []Value) (wire []byte) {
	wire = make([]byte, 0, (len(values)*GroupSize+1)/2)
	for len(values) >= 2 {
		group := JoinGroup(values[0], values[1])
		wire = append(wire, group[:]...)
		values = values[2:]
	}
	if len(values) == 1 {
		group := JoinGroup(values[0], 0)
		wire = append(wire, group[:2]...)
	}
	return wire
}
