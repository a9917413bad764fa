package terminfo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-termini/termini/caps"
)

func TestParseMandatorySection(t *testing.T) {
	raw := buildLegacy("vt100|dec vt100", []bool{true, false, true}, []int32{80, 24},
		sectionSpec{strings: []string{"\x1b[H", ""}})

	info, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if info.Name() != "vt100" {
		t.Errorf("Name() = %q, want vt100", info.Name())
	}
	if got := info.Aliases(); len(got) != 0 {
		t.Errorf("Aliases() = %v, want none", got)
	}
	if info.Description() != "dec vt100" {
		t.Errorf("Description() = %q, want dec vt100", info.Description())
	}

	if !info.Flag(caps.BoolCap(0)) {
		t.Errorf("Flag(0) = false, want true")
	}
	if info.Flag(caps.BoolCap(1)) {
		t.Errorf("Flag(1) = true, want false")
	}
	if info.Flag(caps.BoolCap(99)) {
		t.Errorf("Flag(99) = true, want false for out-of-range ordinal")
	}

	if n, ok := info.Number(caps.NumberCap(0)); !ok || n != 80 {
		t.Errorf("Number(0) = (%d, %v), want (80, true)", n, ok)
	}

	if raw, ok := info.RawString(caps.StringCap(0)); !ok || string(raw) != "\x1b[H" {
		t.Errorf("RawString(0) = (%q, %v), want (\\x1b[H, true)", raw, ok)
	}
	if _, ok := info.RawString(caps.StringCap(1)); !ok {
		t.Errorf("RawString(1) ok = false, want true for an empty but present string")
	}
}

// Scenario 1: 256-color description with numeric capabilities above 32767,
// which requires the 32-bit numeric encoding.
func TestParse32BitNumbers(t *testing.T) {
	raw := buildMandatory("xterm-256color", true, nil, []int32{256, 0x10000 - 1, 40000},
		sectionSpec{strings: nil})

	info, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if info.Name() != "xterm-256color" {
		t.Fatalf("Name() = %q", info.Name())
	}
	if n, ok := info.Number(caps.NumberCap(2)); !ok || n != 40000 {
		t.Errorf("Number(2) = (%d, %v), want (40000, true)", n, ok)
	}
	// 0xFFFF is the absent sentinel even in the 32-bit encoding's low half.
	if _, ok := info.Number(caps.NumberCap(1)); ok {
		t.Errorf("Number(1) ok = true, want false for the 0xFFFF sentinel")
	}
}

// Scenario 2: an alias and description both round-trip.
func TestParseAliasAndDescription(t *testing.T) {
	raw := buildLegacy("vt100|vt100-am|DEC VT100", nil, nil, sectionSpec{})

	info, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if info.Name() != "vt100" {
		t.Errorf("Name() = %q", info.Name())
	}
	if len(info.Aliases()) != 1 || info.Aliases()[0] != "vt100-am" {
		t.Errorf("Aliases() = %v", info.Aliases())
	}
	if info.Description() != "DEC VT100" {
		t.Errorf("Description() = %q", info.Description())
	}
}

// Scenario 3: extended UTF-8 string and boolean capabilities.
func TestParseExtendedUTF8AndBooleans(t *testing.T) {
	mandatory := buildLegacy("st-256color", nil, nil, sectionSpec{})
	raw := appendExtendedNamed(mandatory, false,
		map[string]bool{"Ts": true, "AX": true},
		nil,
		map[string]string{"Se": "\x1b[2 q"},
	)

	info, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	v, ok := info.Extended("Se")
	if !ok || v.Kind != ValueUtf8String || v.Text != "\x1b[2 q" {
		t.Fatalf("Extended(Se) = %+v, ok=%v", v, ok)
	}
	for _, name := range []string{"Ts", "AX"} {
		v, ok := info.Extended(name)
		if !ok || v.Kind != ValueTrue {
			t.Errorf("Extended(%s) = %+v, ok=%v, want True", name, v, ok)
		}
	}
}

// Scenario 4: extended parameterized underline capability.
func TestParseExtendedParameterizedString(t *testing.T) {
	mandatory := buildLegacy("foot", nil, nil, sectionSpec{})
	raw := appendExtendedNamed(mandatory, false, nil, nil,
		map[string]string{"Smulx": "\x1b[4:%p1%dm"})

	info, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, ok := info.Extended("Smulx")
	if !ok || v.Kind != ValueUtf8String || v.Text != "\x1b[4:%p1%dm" {
		t.Fatalf("Extended(Smulx) = %+v, ok=%v", v, ok)
	}
}

// Scenario 5: boolean-only extended entry.
func TestParseExtendedBooleanOnly(t *testing.T) {
	mandatory := buildLegacy("tmux-256color", nil, nil, sectionSpec{})
	raw := appendExtendedNamed(mandatory, false, map[string]bool{"Su": true}, nil, nil)

	info, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, ok := info.Extended("Su")
	if !ok || v.Kind != ValueTrue {
		t.Fatalf("Extended(Su) = %+v, ok=%v, want True", v, ok)
	}
}

// Scenario 6: the adversarial fixture from the original parser's fuzz
// corpus must fail cleanly rather than panic or hang.
func TestParseAdversarialInput(t *testing.T) {
	raw := []byte{
		0x1A, 0x01, 0x1D, 0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x2B, 0x06, 0x0C, 0x0C, 0xF4, 0x83, 0xA2, 0x83, 0x7C, 0x23,
		0x78, 0x7C, 0x00, 0x00, 0x00, 0x1B, 0x00, 0x00, 0x00, 0x0C,
		0x1B, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x1B, 0x0C,
	}
	if len(raw) != 40 {
		t.Fatalf("fixture length = %d, want 40", len(raw))
	}
	_, err := Parse(bytes.NewReader(raw))
	if err == nil {
		t.Fatalf("Parse succeeded on adversarial input, want an error")
	}
}

func TestParseRoundTripObservationalEquality(t *testing.T) {
	mandatory := buildLegacy("screen|screen(1)", []bool{true, false}, []int32{1, 2},
		sectionSpec{strings: []string{"abc"}})
	raw := appendExtendedNamed(mandatory, false, map[string]bool{"Su": true}, nil,
		map[string]string{"Se": "xyz"})

	a, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	b, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}

	if a.Name() != b.Name() || a.Description() != b.Description() {
		t.Fatalf("names/descriptions diverge: %q/%q vs %q/%q", a.Name(), a.Description(), b.Name(), b.Description())
	}
	for i := 0; i < caps.BoolCount; i++ {
		if a.Flag(caps.BoolCap(i)) != b.Flag(caps.BoolCap(i)) {
			t.Fatalf("Flag(%d) diverges", i)
		}
	}
	for i := 0; i < caps.StringCount; i++ {
		ar, aok := a.RawString(caps.StringCap(i))
		br, bok := b.RawString(caps.StringCap(i))
		if aok != bok || !bytes.Equal(ar, br) {
			t.Fatalf("RawString(%d) diverges", i)
		}
	}
	av, aok := a.Extended("Su")
	bv, bok := b.Extended("Su")
	if aok != bok || av.Kind != bv.Kind || av.Number != bv.Number || av.Text != bv.Text || !bytes.Equal(av.RawString, bv.RawString) {
		t.Fatalf("Extended(Su) diverges: %+v/%v vs %+v/%v", av, aok, bv, bok)
	}
}

func TestParseInvalidMagicNumber(t *testing.T) {
	raw := []byte{0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := Parse(bytes.NewReader(raw))
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindInvalidMagicNum {
		t.Fatalf("err = %v, want KindInvalidMagicNum", err)
	}
}

func TestParseTruncatedInput(t *testing.T) {
	raw := buildLegacy("vt100", []bool{true, true, true}, []int32{1, 2, 3}, sectionSpec{strings: []string{"a"}})
	_, err := Parse(bytes.NewReader(raw[:len(raw)-3]))
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindIO {
		t.Fatalf("err = %v, want KindIO", err)
	}
}

func TestParseNoNames(t *testing.T) {
	b := newWireBuilder()
	b.i16(int16(magicLegacy)).i16(0).i16(0).i16(0).i16(0).i16(0)
	_, err := Parse(bytes.NewReader(b.Bytes()))
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindNoNames {
		t.Fatalf("err = %v, want KindNoNames", err)
	}
}

func TestParseOutOfRangeStringOffset(t *testing.T) {
	raw := buildLegacy("x", nil, nil, sectionSpec{offsets: []uint16{5}, stringTable: []byte{'a', 0}})
	_, err := Parse(bytes.NewReader(raw))
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != KindOutOfBoundString {
		t.Fatalf("err = %v, want KindOutOfBoundString", err)
	}
}

// A malformed extended section must not fail or corrupt the already-parsed
// mandatory section; it should simply yield no extended capabilities.
func TestParseMalformedExtendedIsAbsorbed(t *testing.T) {
	mandatory := buildLegacy("vt220", []bool{true}, []int32{42}, sectionSpec{strings: []string{"ok"}})
	raw := append(append([]byte{}, mandatory...), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)

	info, err := Parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if info.Name() != "vt220" {
		t.Fatalf("Name() = %q, mandatory section should be unaffected", info.Name())
	}
	if n, ok := info.Number(caps.NumberCap(0)); !ok || n != 42 {
		t.Fatalf("Number(0) = (%d, %v), mandatory section should be unaffected", n, ok)
	}
	if _, ok := info.Extended("anything"); ok {
		t.Fatalf("Extended lookup succeeded against a malformed section")
	}
}

func TestSplitNames(t *testing.T) {
	tests := []struct {
		raw             string
		name            string
		aliases         []string
		description     string
	}{
		{"vt100", "vt100", nil, ""},
		{"vt100|DEC VT100", "vt100", nil, "DEC VT100"},
		{"vt100|vt100-am|DEC VT100", "vt100", []string{"vt100-am"}, "DEC VT100"},
		{" vt100 | vt100-am ", "vt100", nil, "vt100-am"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, aliases, description := splitNames(tt.raw)
			if name != tt.name || description != tt.description || len(aliases) != len(tt.aliases) {
				t.Fatalf("splitNames(%q) = (%q, %v, %q)", tt.raw, name, aliases, description)
			}
		})
	}
}
