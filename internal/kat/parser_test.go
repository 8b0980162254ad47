package kat

import (
	"bytes"
	"errors"
	"testing"
)

// =============================================================================
// KAT Response Parser Tests
// =============================================================================

const sampleRSP = `# kyber512 test vectors
count = 0
seed = 0A0B
pk = 0102030405
sk = AABBCC
ct = DEADBEEF
ss = 00112233

count = 1
seed = FF
pk = 01 02
     03 04   # trailing comment
sk = 0506
ct = 0708
ss = 090A

count = 1
seed = EE
pk = 11
sk = 22
ct = 33
ss = 44
`

func TestU_Parse_Sections(t *testing.T) {
	cases, err := Parse([]byte(sampleRSP))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(cases) != 3 {
		t.Fatalf("Parse() returned %d cases, want 3", len(cases))
	}

	t.Run("[Unit] Parse: fields hex-decoded", func(t *testing.T) {
		if cases[0].Count != 0 {
			t.Errorf("Count = %d, want 0", cases[0].Count)
		}
		if !bytes.Equal(cases[0].Seed, []byte{0x0A, 0x0B}) {
			t.Errorf("Seed = %x, want 0a0b", cases[0].Seed)
		}
		if !bytes.Equal(cases[0].PK, []byte{1, 2, 3, 4, 5}) {
			t.Errorf("PK = %x, want 0102030405", cases[0].PK)
		}
		if !bytes.Equal(cases[0].SS, []byte{0x00, 0x11, 0x22, 0x33}) {
			t.Errorf("SS = %x, want 00112233", cases[0].SS)
		}
	})

	t.Run("[Unit] Parse: multi-line hex with embedded comment", func(t *testing.T) {
		if !bytes.Equal(cases[1].PK, []byte{1, 2, 3, 4}) {
			t.Errorf("PK = %x, want 01020304", cases[1].PK)
		}
	})

	t.Run("[Unit] Parse: duplicate counts kept in file order", func(t *testing.T) {
		if cases[1].Count != 1 || cases[2].Count != 1 {
			t.Errorf("Counts = %d,%d, want 1,1", cases[1].Count, cases[2].Count)
		}
		if !bytes.Equal(cases[2].Seed, []byte{0xEE}) {
			t.Errorf("third section Seed = %x, want ee", cases[2].Seed)
		}
	})
}

func TestU_Parse_MissingField(t *testing.T) {
	input := `count = 0
seed = 0A
pk = 01
sk = 02
ct = 03
`
	_, err := Parse([]byte(input))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want ParseError", err)
	}
	if parseErr.Field != "ss" || parseErr.Count != 0 {
		t.Errorf("ParseError = count %d field %q, want count 0 field \"ss\"", parseErr.Count, parseErr.Field)
	}
}

func TestU_Parse_BadHexSkipsSection(t *testing.T) {
	input := `count = 0
seed = 0A
pk = XYZ
sk = 02
ct = 03
ss = 04

count = 1
seed = 0B
pk = 01
sk = 02
ct = 03
ss = 04
`
	cases, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("Parse() returned %d cases, want 1", len(cases))
	}
	if cases[0].Count != 1 {
		t.Errorf("surviving Count = %d, want 1", cases[0].Count)
	}
}

func TestU_Parse_NoMarkers(t *testing.T) {
	t.Run("[Unit] Parse: empty input", func(t *testing.T) {
		cases, err := Parse(nil)
		if err != nil || cases != nil {
			t.Errorf("Parse(nil) = %v, %v, want nil, nil", cases, err)
		}
	})

	t.Run("[Unit] Parse: header-only file", func(t *testing.T) {
		cases, err := Parse([]byte("# kyber512\n\n"))
		if err != nil || cases != nil {
			t.Errorf("Parse() = %v, %v, want nil, nil", cases, err)
		}
	})
}
