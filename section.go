package terminfo

import (
	"github.com/go-termini/termini/internal/wire"
)

// sectionData holds the three parallel capability arrays and the raw
// string table produced by parsing one section (mandatory or extended).
// Offsets are not resolved into strings here; resolution happens on demand
// at query time (see resolveString).
type sectionData struct {
	bools         []bool
	numbers       []int32
	stringOffsets []uint16
	stringTable   []byte
}

const (
	sentinelAbsent    = 0xFFFF
	sentinelCancelled = 0xFFFE
)

// parseSection reads one section's body: boolCount bool bytes, an optional
// alignment pad, numbersCount numbers (16 or 32 bit per numbers32), a
// stringCount-long offset table, and finally tableBytes of string table.
//
// aligned describes the parity of the byte position immediately before
// this section started; a pad byte is consumed iff the bool count's parity
// matches it.
func parseSection(r *wire.Reader, boolCount, numbersCount, stringCount, tableBytes uint16, numbers32, aligned bool) (*sectionData, error) {
	bools := make([]bool, boolCount)
	for i := range bools {
		b, err := r.ReadByte()
		if err != nil {
			return nil, asIOError(err)
		}
		bools[i] = b == 1
	}

	alignedBit := uint16(0)
	if aligned {
		alignedBit = 1
	}
	if boolCount%2 == alignedBit {
		if _, err := r.ReadByte(); err != nil {
			return nil, asIOError(err)
		}
	}

	numbers := make([]int32, numbersCount)
	for i := range numbers {
		if numbers32 {
			n, err := r.ReadI32()
			if err != nil {
				return nil, asIOError(err)
			}
			numbers[i] = n
		} else {
			n, err := r.ReadI16()
			if err != nil {
				return nil, asIOError(err)
			}
			numbers[i] = int32(n)
		}
	}

	offsets := make([]uint16, stringCount)
	for i := range offsets {
		off, err := r.ReadU16()
		if err != nil {
			return nil, asIOError(err)
		}
		offsets[i] = off
	}

	for _, off := range offsets {
		if off <= 0xFFFD && off >= tableBytes {
			return nil, &Error{Kind: KindOutOfBoundString, Off: off, TableSize: tableBytes}
		}
	}

	table, err := r.ReadExact(int(tableBytes))
	if err != nil {
		return nil, asIOError(err)
	}

	return &sectionData{
		bools:         bools,
		numbers:       numbers,
		stringOffsets: offsets,
		stringTable:   table,
	}, nil
}

// resolveString views the suffix of table starting at base+rel and returns
// the maximal prefix before the first NUL (or the whole suffix if there is
// none). It never panics: callers are responsible for having validated
// base+rel < len(table) beforehand, but as a defense in depth an
// out-of-range base still returns "not found" rather than indexing past
// the slice.
func resolveString(table []byte, base, rel uint16) ([]byte, bool) {
	if base == sentinelAbsent || base == sentinelCancelled {
		return nil, false
	}
	start := int(base) + int(rel)
	if start > len(table) {
		return nil, false
	}
	suffix := table[start:]
	if idx := indexNUL(suffix); idx >= 0 {
		return suffix[:idx], true
	}
	return suffix, true
}

func indexNUL(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
