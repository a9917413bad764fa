package wire

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReaderPrimitives(t *testing.T) {
	raw := []byte{0x34, 0x12, 0xFF, 0xFF, 0x01, 0x02, 0x03, 0x04, 0x7F, 'a', 'b', 'c'}
	r := NewReader(bytes.NewReader(raw))

	if v, err := r.ReadI16(); err != nil || v != 0x1234 {
		t.Fatalf("ReadI16 = (%d, %v), want (0x1234, nil)", v, err)
	}
	if v, err := r.ReadU16(); err != nil || v != 0xFFFF {
		t.Fatalf("ReadU16 = (%d, %v), want (0xFFFF, nil)", v, err)
	}
	if v, err := r.ReadI32(); err != nil || v != 0x04030201 {
		t.Fatalf("ReadI32 = (%d, %v), want (0x04030201, nil)", v, err)
	}
	if v, err := r.ReadByte(); err != nil || v != 0x7F {
		t.Fatalf("ReadByte = (%d, %v), want (0x7F, nil)", v, err)
	}
	if v, err := r.ReadExact(3); err != nil || string(v) != "abc" {
		t.Fatalf("ReadExact = (%q, %v), want (abc, nil)", v, err)
	}
	if r.Pos() != int64(len(raw)) {
		t.Fatalf("Pos() = %d, want %d", r.Pos(), len(raw))
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01}))
	_, err := r.ReadI16()
	if err == nil {
		t.Fatal("ReadI16 on a single byte succeeded, want an error")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err = %v, want to wrap io.ErrUnexpectedEOF", err)
	}
}

func TestReadNonNegI16(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		want    uint16
		wantErr bool
	}{
		{"positive", []byte{0x05, 0x00}, 5, false},
		{"minus one becomes zero", []byte{0xFF, 0xFF}, 0, false},
		{"other negative is an error", []byte{0xFE, 0xFF}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.raw))
			got, err := r.ReadNonNegI16()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("got = %d, want %d", got, tt.want)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidNames) {
				t.Fatalf("err = %v, want to wrap ErrInvalidNames", err)
			}
		})
	}
}

func TestReadExactZero(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	got, err := r.ReadExact(0)
	if err != nil || got != nil {
		t.Fatalf("ReadExact(0) = (%v, %v), want (nil, nil)", got, err)
	}
}
