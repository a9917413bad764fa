// Package terminfo parses the compiled terminal-capability database format
// produced by the standard terminfo compiler (see term(5)) and exposes
// read-only lookups over the result: boolean, numeric and string
// capabilities addressed by their fixed ordinal (see the caps package), and
// open-ended "extended" capabilities addressed by short ASCII names.
//
// Parameterized string expansion is not performed: string capabilities are
// returned as the raw bytes stored in the compiled file. Locating a
// compiled description by terminal name is likewise not this package's
// job; see internal/locate for that.
package terminfo

import (
	"io"
	"unicode/utf8"

	"github.com/go-termini/termini/caps"
	"github.com/go-termini/termini/internal/wire"
)

// TermInfo is an immutable, parsed compiled terminal description. Every
// accessor is read-only and safe to call concurrently from multiple
// goroutines once Parse has returned.
type TermInfo struct {
	name        string
	aliases     []string
	description string

	data     *sectionData
	extended *extendedData
}

// Parse reads one compiled terminal description from r. Errors from the
// mandatory section are returned directly; a malformed or absent extended
// section never fails the parse, it simply leaves Extended lookups empty.
func Parse(r io.Reader) (*TermInfo, error) {
	wr := wire.NewReader(r)

	h, err := parseHeader(wr)
	if err != nil {
		return nil, err
	}

	data, err := parseSection(wr, h.boolCount, h.numbersCount, h.stringCount, h.stringTableBytes, h.numbers32, h.namesBytes%2 == 0)
	if err != nil {
		return nil, err
	}

	extended, err := parseExtended(wr, h.numbers32, h.stringTableBytes%2 == 1)
	if err != nil {
		extended = &extendedData{}
	}

	return &TermInfo{
		name:        h.name,
		aliases:     h.aliases,
		description: h.description,
		data:        data,
		extended:    extended,
	}, nil
}

// Name returns the terminal's primary name. It is always non-empty for a
// successfully parsed TermInfo.
func (t *TermInfo) Name() string {
	return t.name
}

// Aliases returns the terminal's additional names, in on-disk order. It
// may be empty.
func (t *TermInfo) Aliases() []string {
	return t.aliases
}

// Description returns the human-readable description field, or "" if the
// names block had no such field.
func (t *TermInfo) Description() string {
	return t.description
}

// RawString returns the raw bytes of a fixed string capability, or
// ok == false if the capability is absent or the ordinal is out of range.
// The returned slice borrows from the handle and must not be modified.
func (t *TermInfo) RawString(cap caps.StringCap) ([]byte, bool) {
	i := int(cap)
	if i < 0 || i >= len(t.data.stringOffsets) {
		return nil, false
	}
	return resolveString(t.data.stringTable, t.data.stringOffsets[i], 0)
}

// Utf8String is like RawString but additionally requires the bytes to be
// valid UTF-8.
func (t *TermInfo) Utf8String(cap caps.StringCap) (string, bool) {
	raw, ok := t.RawString(cap)
	if !ok || !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// Number returns a fixed numeric capability's value, or ok == false if it
// is absent (stored as the sentinel 0xFFFF) or the ordinal is out of
// range.
func (t *TermInfo) Number(cap caps.NumberCap) (int32, bool) {
	i := int(cap)
	if i < 0 || i >= len(t.data.numbers) {
		return 0, false
	}
	v := t.data.numbers[i]
	if v == sentinelAbsent {
		return 0, false
	}
	return v, true
}

// Flag returns a fixed boolean capability's value. An out-of-range ordinal
// returns false rather than an error, matching the format's convention
// that unset flags default to false.
func (t *TermInfo) Flag(cap caps.BoolCap) bool {
	i := int(cap)
	if i < 0 || i >= len(t.data.bools) {
		return false
	}
	return t.data.bools[i]
}

// ValueKind distinguishes the shape of an extended capability's Value.
type ValueKind int

const (
	// ValueTrue marks a present boolean extended capability.
	ValueTrue ValueKind = iota
	// ValueNumber marks a numeric extended capability.
	ValueNumber
	// ValueRawString marks a string extended capability whose bytes are
	// not valid UTF-8.
	ValueRawString
	// ValueUtf8String marks a string extended capability whose bytes
	// decoded as UTF-8.
	ValueUtf8String
)

// Value is the result of looking up an extended capability by name.
type Value struct {
	Kind      ValueKind
	Number    int32
	RawString []byte
	Text      string
}

// ExtendedNames returns the names of every extended capability present,
// in no particular order.
func (t *TermInfo) ExtendedNames() []string {
	names := make([]string, 0, len(t.extended.capabilities))
	for name := range t.extended.capabilities {
		names = append(names, name)
	}
	return names
}

// Extended looks up an extended (name-keyed) capability. String values are
// decoded as UTF-8 when possible; when not, Kind is ValueRawString and
// RawString holds the original bytes.
func (t *TermInfo) Extended(name string) (Value, bool) {
	v, ok := t.extended.capabilities[name]
	if !ok {
		return Value{}, false
	}
	switch v.kind {
	case extValueTrue:
		return Value{Kind: ValueTrue}, true
	case extValueNumber:
		return Value{Kind: ValueNumber, Number: v.number}, true
	case extValueStringOffset:
		raw, ok := resolveString(t.extended.table, v.offset, 0)
		if !ok {
			return Value{}, false
		}
		if utf8.Valid(raw) {
			return Value{Kind: ValueUtf8String, Text: string(raw)}, true
		}
		return Value{Kind: ValueRawString, RawString: raw}, true
	default:
		return Value{}, false
	}
}
