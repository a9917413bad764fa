package terminfo

import (
	"unicode/utf8"

	"github.com/go-termini/termini/internal/wire"
)

// extValueKind distinguishes the three shapes an extended capability's
// stored value can take.
type extValueKind int

const (
	extValueTrue extValueKind = iota
	extValueNumber
	extValueStringOffset
)

type extValue struct {
	kind   extValueKind
	number int32
	offset uint16
}

// extendedData is the keyed capability store assembled from the optional
// extended section. A zero-value extendedData (empty map, nil table)
// represents "no extended section parsed", which is always a valid state:
// extended parsing is best-effort (see parseExtended).
type extendedData struct {
	capabilities map[string]extValue
	table        []byte
}

// parseExtended reads the optional extended section immediately following
// the mandatory one. padBefore is true when the mandatory string table
// ended on an odd byte (so one alignment byte must be skipped first).
//
// Any failure — a malformed header, an out-of-range offset, a name that
// isn't valid text, or simply running out of input — is reported to the
// caller, which discards it and proceeds with an empty extendedData. This
// function never mutates any state outside its own locals, so a partial
// failure here cannot corrupt the already-parsed mandatory section.
func parseExtended(r *wire.Reader, numbers32, padBefore bool) (*extendedData, error) {
	if padBefore {
		if _, err := r.ReadByte(); err != nil {
			return nil, asIOError(err)
		}
	}

	extBoolCount, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}
	extNumCount, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}
	extStringCount, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}
	extSymbolsCount, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}
	extTableBytes, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}

	data, err := parseSection(r, extBoolCount, extNumCount, extSymbolsCount, extTableBytes, numbers32, true)
	if err != nil {
		return nil, err
	}

	offsets := data.stringOffsets
	if int(extStringCount) >= len(offsets) {
		return nil, newError(KindInvalidNames)
	}

	namesOff, err := extNamesOffset(data.stringTable, offsets[:extStringCount])
	if err != nil {
		return nil, err
	}

	names, err := resolveExtNames(data.stringTable, offsets[extStringCount:], namesOff, extTableBytes)
	if err != nil {
		return nil, err
	}

	// Walk bools, then numbers, then string-value offsets against the
	// shared name sequence. Counts are expected to line up exactly (the
	// format guarantees extSymbolsCount == extBoolCount + extNumCount +
	// 2*extStringCount), but a malformed file could disagree; running out
	// of names simply stops recording further capabilities rather than
	// indexing out of range.
	capabilities := make(map[string]extValue, int(extBoolCount)+int(extNumCount)+int(extStringCount))
	nameIdx := 0

	for _, v := range data.bools {
		if nameIdx >= len(names) {
			break
		}
		name := names[nameIdx]
		nameIdx++
		if v {
			capabilities[name] = extValue{kind: extValueTrue}
		}
	}
	for _, v := range data.numbers {
		if nameIdx >= len(names) {
			break
		}
		name := names[nameIdx]
		nameIdx++
		if v != sentinelAbsent {
			capabilities[name] = extValue{kind: extValueNumber, number: v}
		}
	}
	for _, off := range offsets[:extStringCount] {
		if nameIdx >= len(names) {
			break
		}
		name := names[nameIdx]
		nameIdx++
		if off != sentinelAbsent && off != sentinelCancelled {
			capabilities[name] = extValue{kind: extValueStringOffset, offset: off}
		}
	}

	table := data.stringTable
	if int(namesOff) < len(table) {
		table = table[:namesOff]
	}

	return &extendedData{capabilities: capabilities, table: table}, nil
}

// extNamesOffset computes namesOff = 1 + max(offset + length) over the
// string-value offsets, defaulting to 1 when none resolve (no extended
// string capabilities at all).
func extNamesOffset(table []byte, valueOffsets []uint16) (uint16, error) {
	max := 0
	found := false
	for _, off := range valueOffsets {
		s, ok := resolveString(table, off, 0)
		if !ok {
			continue
		}
		end := int(off) + len(s)
		if !found || end > max {
			max = end
			found = true
		}
	}
	if !found {
		return 1, nil
	}
	// +1 to include the resolved value's own NUL terminator.
	result := max + 1
	if result > len(table) {
		return 0, newError(KindInvalidNames)
	}
	return uint16(result), nil
}

// resolveExtNames reads len(nameOffsets) NUL-terminated names out of table,
// each located at nameOffsets[i] + namesOff.
func resolveExtNames(table []byte, nameOffsets []uint16, namesOff, tableBytes uint16) ([]string, error) {
	names := make([]string, len(nameOffsets))
	for i, off := range nameOffsets {
		if off <= 0xFFFD && uint32(off)+uint32(namesOff) >= uint32(tableBytes) {
			return nil, &Error{Kind: KindOutOfBoundString, Off: off + namesOff, TableSize: tableBytes}
		}
		raw, ok := resolveString(table, off, namesOff)
		if !ok {
			return nil, newError(KindInvalidNames)
		}
		if !utf8.Valid(raw) {
			return nil, wrapError(KindInvalidUTF8, errNamesNotUTF8)
		}
		names[i] = string(raw)
	}
	return names, nil
}
