package terminfo

import (
	"bytes"
	"encoding/binary"
	"sort"
)

// wireBuilder serializes the compiled terminal-capability wire format by
// hand. It is kept deliberately independent of the production parser, so a
// bug shared between the two would have to be coincidental rather than
// structural.
type wireBuilder struct {
	buf bytes.Buffer
}

func newWireBuilder() *wireBuilder {
	return &wireBuilder{}
}

func (b *wireBuilder) i16(v int16) *wireBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *wireBuilder) u16(v uint16) *wireBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *wireBuilder) i32(v int32) *wireBuilder {
	binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *wireBuilder) byte(v byte) *wireBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *wireBuilder) bytes(v []byte) *wireBuilder {
	b.buf.Write(v)
	return b
}

func (b *wireBuilder) Bytes() []byte {
	return b.buf.Bytes()
}

// sectionSpec describes the string capabilities of a mandatory section for
// buildMandatory, which reads only its offsets, stringTable and strings.
type sectionSpec struct {
	bools       []bool
	numbers     []int32
	stringTable []byte
	// offsets is used verbatim when non-nil; otherwise it is computed by
	// packing strings back-to-back with a NUL terminator each.
	offsets []uint16
	strings []string
}

func (s sectionSpec) resolve() (offsets []uint16, table []byte) {
	if s.offsets != nil {
		return s.offsets, s.stringTable
	}
	var tbl bytes.Buffer
	offs := make([]uint16, 0, len(s.strings))
	for _, str := range s.strings {
		offs = append(offs, uint16(tbl.Len()))
		tbl.WriteString(str)
		tbl.WriteByte(0)
	}
	return offs, tbl.Bytes()
}

// buildMandatory assembles a complete compiled description consisting of
// just the header, names block and mandatory section (no extended
// section). numbers32 selects the magic number and number width.
func buildMandatory(name string, numbers32 bool, boolSpec []bool, numberSpec []int32, strSpec sectionSpec) []byte {
	b := newWireBuilder()
	if numbers32 {
		b.i16(int16(magic32Bit))
	} else {
		b.i16(int16(magicLegacy))
	}

	namesBlock := name + "\x00"
	b.i16(int16(len(namesBlock)))
	b.i16(int16(len(boolSpec)))
	b.i16(int16(len(numberSpec)))

	offsets, table := strSpec.resolve()
	b.i16(int16(len(offsets)))
	b.i16(int16(len(table)))

	b.bytes([]byte(namesBlock))

	for _, v := range boolSpec {
		if v {
			b.byte(1)
		} else {
			b.byte(0)
		}
	}
	if (len(boolSpec)+len(namesBlock))%2 == 1 {
		b.byte(0)
	}
	for _, n := range numberSpec {
		if numbers32 {
			b.i32(n)
		} else {
			b.i16(int16(n))
		}
	}
	for _, off := range offsets {
		b.u16(off)
	}
	b.bytes(table)

	return b.Bytes()
}

// buildLegacy is buildMandatory with the legacy 16-bit-number magic.
func buildLegacy(name string, boolSpec []bool, numberSpec []int32, strSpec sectionSpec) []byte {
	return buildMandatory(name, false, boolSpec, numberSpec, strSpec)
}

// appendExtended appends a well-formed extended section onto base, which
// must already be a complete mandatory-section fixture (e.g. from
// buildLegacy).
func appendExtended(base []byte, numbers32 bool, boolSpec []bool, numberSpec []int32, stringSpec []string) []byte {
	b := newWireBuilder()
	b.bytes(base)
	if len(base)%2 == 1 {
		b.byte(0)
	}

	var valueTable bytes.Buffer
	valueOffsets := make([]uint16, len(stringSpec))
	for i, s := range stringSpec {
		valueOffsets[i] = uint16(valueTable.Len())
		valueTable.WriteString(s)
		valueTable.WriteByte(0)
	}

	allNames := make([]string, 0, len(boolSpec)+len(numberSpec)+len(stringSpec))
	for i := range boolSpec {
		allNames = append(allNames, shortExtName('b', i))
	}
	for i := range numberSpec {
		allNames = append(allNames, shortExtName('n', i))
	}
	for i := range stringSpec {
		allNames = append(allNames, shortExtName('s', i))
	}

	// namesOff = 1 + the end position of the last value string (or 1 if
	// there are no string values), mirroring extNamesOffset.
	namesOff := uint16(1)
	if len(stringSpec) > 0 {
		namesOff = uint16(valueTable.Len())
	}
	table := valueTable.Bytes()
	for uint16(len(table)) < namesOff {
		table = append(table, 0)
	}
	nameOffsets := make([]uint16, len(allNames))
	for i, nm := range allNames {
		nameOffsets[i] = uint16(len(table)) - namesOff
		table = append(table, []byte(nm)...)
		table = append(table, 0)
	}

	symbolsCount := len(valueOffsets) + len(nameOffsets)

	b.i16(int16(len(boolSpec)))
	b.i16(int16(len(numberSpec)))
	b.i16(int16(len(stringSpec)))
	b.i16(int16(symbolsCount))
	b.i16(int16(len(table)))

	for _, v := range boolSpec {
		if v {
			b.byte(1)
		} else {
			b.byte(0)
		}
	}
	if len(boolSpec)%2 == 1 {
		b.byte(0)
	}
	for _, n := range numberSpec {
		if numbers32 {
			b.i32(n)
		} else {
			b.i16(int16(n))
		}
	}
	for _, off := range valueOffsets {
		b.u16(off)
	}
	for _, off := range nameOffsets {
		b.u16(off)
	}
	b.bytes(table)

	return b.Bytes()
}

func shortExtName(class byte, i int) string {
	return string(class) + string(rune('A'+i))
}

// appendExtendedNamed is like appendExtended but lets the caller choose the
// extended capability names directly instead of synthetic ones, which the
// scenario tests need since they assert on specific well-known names like
// "Se" or "Smulx".
func appendExtendedNamed(base []byte, numbers32 bool, bools map[string]bool, numbers map[string]int32, strings_ map[string]string) []byte {
	boolNames := sortedKeysBool(bools)
	numberNames := sortedKeysInt32(numbers)
	stringNames := sortedKeysString(strings_)

	boolSpec := make([]bool, len(boolNames))
	for i, n := range boolNames {
		boolSpec[i] = bools[n]
	}
	numberSpec := make([]int32, len(numberNames))
	for i, n := range numberNames {
		numberSpec[i] = numbers[n]
	}
	stringSpec := make([]string, len(stringNames))
	for i, n := range stringNames {
		stringSpec[i] = strings_[n]
	}

	b := newWireBuilder()
	b.bytes(base)
	if len(base)%2 == 1 {
		b.byte(0)
	}

	var valueTable bytes.Buffer
	valueOffsets := make([]uint16, len(stringSpec))
	for i, s := range stringSpec {
		valueOffsets[i] = uint16(valueTable.Len())
		valueTable.WriteString(s)
		valueTable.WriteByte(0)
	}

	allNames := append(append(append([]string{}, boolNames...), numberNames...), stringNames...)

	namesOff := uint16(1)
	if len(stringSpec) > 0 {
		namesOff = uint16(valueTable.Len())
	}
	table := valueTable.Bytes()
	for uint16(len(table)) < namesOff {
		table = append(table, 0)
	}
	nameOffsets := make([]uint16, len(allNames))
	for i, nm := range allNames {
		nameOffsets[i] = uint16(len(table)) - namesOff
		table = append(table, []byte(nm)...)
		table = append(table, 0)
	}

	symbolsCount := len(valueOffsets) + len(nameOffsets)

	b.i16(int16(len(boolSpec)))
	b.i16(int16(len(numberSpec)))
	b.i16(int16(len(stringSpec)))
	b.i16(int16(symbolsCount))
	b.i16(int16(len(table)))

	for _, v := range boolSpec {
		if v {
			b.byte(1)
		} else {
			b.byte(0)
		}
	}
	if len(boolSpec)%2 == 1 {
		b.byte(0)
	}
	for _, n := range numberSpec {
		if numbers32 {
			b.i32(n)
		} else {
			b.i16(int16(n))
		}
	}
	for _, off := range valueOffsets {
		b.u16(off)
	}
	for _, off := range nameOffsets {
		b.u16(off)
	}
	b.bytes(table)

	return b.Bytes()
}

func sortedKeysBool(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysInt32(m map[string]int32) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysString(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
