package terminfo

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-termini/termini/internal/wire"
)

const (
	magicLegacy = 0x011A
	magic32Bit  = 0x021E
)

// header is the decoded fixed header plus the terminal names block that
// precedes the mandatory section.
type header struct {
	numbers32        bool
	boolCount        uint16
	numbersCount     uint16
	stringCount      uint16
	stringTableBytes uint16
	namesBytes       uint16

	name        string
	aliases     []string
	description string
}

func parseHeader(r *wire.Reader) (*header, error) {
	magic, err := r.ReadI16()
	if err != nil {
		return nil, asIOError(err)
	}

	var numbers32 bool
	switch magic {
	case magicLegacy:
		numbers32 = false
	case magic32Bit:
		numbers32 = true
	default:
		return nil, &Error{Kind: KindInvalidMagicNum, Magic: magic}
	}

	namesBytes, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}
	boolCount, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}
	numbersCount, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}
	stringCount, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}
	stringTableBytes, err := r.ReadNonNegI16()
	if err != nil {
		return nil, asInvalidNames(err)
	}

	if namesBytes == 0 {
		return nil, newError(KindNoNames)
	}

	namesRaw, err := r.ReadExact(int(namesBytes - 1))
	if err != nil {
		return nil, asIOError(err)
	}
	if !utf8.Valid(namesRaw) {
		return nil, wrapError(KindInvalidUTF8, errNamesNotUTF8)
	}

	term, err := r.ReadByte()
	if err != nil {
		return nil, asIOError(err)
	}
	if term != 0 {
		return nil, newError(KindNamesMissingNull)
	}

	name, aliases, description := splitNames(string(namesRaw))

	return &header{
		numbers32:        numbers32,
		boolCount:        boolCount,
		numbersCount:     numbersCount,
		stringCount:      stringCount,
		stringTableBytes: stringTableBytes,
		namesBytes:       namesBytes,
		name:             name,
		aliases:          aliases,
		description:      description,
	}, nil
}

// splitNames splits a names-block string on '|', trims whitespace from
// each field, and separates it into the primary name, any aliases, and a
// trailing description (present only when more than one field was found).
func splitNames(raw string) (name string, aliases []string, description string) {
	fields := strings.Split(raw, "|")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	name = fields[0]
	if len(fields) == 1 {
		return name, nil, ""
	}
	description = fields[len(fields)-1]
	aliases = fields[1 : len(fields)-1]
	return name, aliases, description
}

var errNamesNotUTF8 = errors.New("terminfo: names block is not valid UTF-8")

// asInvalidNames converts wire's >=-1 violation into this package's
// KindInvalidNames, while still passing through a genuine I/O failure as
// KindIO.
func asInvalidNames(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, wire.ErrInvalidNames) {
		return wrapError(KindInvalidNames, err)
	}
	return asIOError(err)
}
