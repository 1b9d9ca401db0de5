// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestEncodeDecode_KnownVectors(t *testing.T) {
	cases := []struct {
		plain, encoded string
	}{
		{"123456", "018932"},
		{"000000", "777777"},
		{"999999", "666666"},
	}
	for _, c := range cases {
		t.Run(c.plain, func(t *testing.T) {
			if got := Encode(c.plain); got != c.encoded {
				t.Fatalf("Encode(%q) = %q, want %q", c.plain, got, c.encoded)
			}
			if got := Decode(c.encoded); got != c.plain {
				t.Fatalf("Decode(%q) = %q, want %q", c.encoded, got, c.plain)
			}
		})
	}
}

// (6 - 7) mod 10 must be 9, never -1.
func TestDecode_WrapsBelowZero(t *testing.T) {
	d := MustParseDigits("666666").Decode()
	for i, v := range d {
		if v != 9 {
			t.Fatalf("position %d: got %d, want 9", i, v)
		}
	}
}

func TestRoundTrip_AllCodes(t *testing.T) {
	for n := 0; n < 1000000; n++ {
		code := fmt.Sprintf("%06d", n)
		enc := Encode(code)
		if got := Decode(enc); got != code {
			t.Fatalf("Decode(Encode(%s)) = %s", code, got)
		}
		dec := Decode(code)
		if got := Encode(dec); got != code {
			t.Fatalf("Encode(Decode(%s)) = %s", code, got)
		}
		if !Validate(enc).Valid() || !Validate(dec).Valid() {
			t.Fatalf("output for %s is not a valid code: enc=%q dec=%q", code, enc, dec)
		}
	}
}

func TestPermute_IsInvolution(t *testing.T) {
	d := Digits{0, 1, 2, 3, 4, 5}
	p := d.Permute()
	if p == d {
		t.Fatalf("Permute should move digits, got %v", p)
	}
	if want := (Digits{2, 3, 0, 1, 5, 4}); p != want {
		t.Fatalf("Permute = %v, want %v", p, want)
	}
	if pp := p.Permute(); pp != d {
		t.Fatalf("Permute twice = %v, want %v", pp, d)
	}
}

func TestDigits_StringKeepsLeadingZeros(t *testing.T) {
	d := MustParseDigits("000042")
	if got := d.String(); got != "000042" {
		t.Fatalf("String() = %q", got)
	}
	if got := d.Encode().String(); len(got) != Length {
		t.Fatalf("encoded length %d", len(got))
	}
}

func TestDigits_OperationsDoNotMutateReceiver(t *testing.T) {
	d := MustParseDigits("123456")
	before := d
	_ = d.Encode()
	_ = d.Decode()
	_ = d.Permute()
	if d != before {
		t.Fatalf("receiver changed: %v -> %v", before, d)
	}
}

func TestValidate_Rules(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Reason
		err   error
	}{
		{"empty", "", ReasonEmpty, ErrEmpty},
		{"too short", "12345", ReasonWrongLength, ErrWrongLength},
		{"too long", "1234567", ReasonWrongLength, ErrWrongLength},
		{"letter", "12a456", ReasonNonDigit, ErrNonDigit},
		{"inner space", "12 456", ReasonNonDigit, ErrNonDigit},
		{"sign", "-12345", ReasonNonDigit, ErrNonDigit},
		{"arabic-indic digits", "١٢٣٤٥٦", ReasonNonDigit, ErrNonDigit},
		{"fullwidth digits", "１２３４５６", ReasonNonDigit, ErrNonDigit},
		{"short and non-digit", "abc", ReasonWrongLength, ErrWrongLength},
		{"untrimmed", " 123456", ReasonWrongLength, ErrWrongLength},
		{"valid", "123456", ReasonNone, nil},
		{"valid zeros", "000000", ReasonNone, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Validate(c.input)
			if res.Reason() != c.want {
				t.Fatalf("Validate(%q).Reason() = %v, want %v", c.input, res.Reason(), c.want)
			}
			if res.Valid() != (c.want == ReasonNone) {
				t.Fatalf("Validate(%q).Valid() = %v", c.input, res.Valid())
			}
			err := res.Err()
			if c.err == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, c.err) {
				t.Fatalf("errors.Is(%v, %v) = false", err, c.err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Reason != c.want || ve.Input != c.input {
				t.Fatalf("unexpected ValidationError: %#v", ve)
			}
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	inputs := []string{"", "12345", "12a456", "123456"}
	for _, in := range inputs {
		first := Validate(in)
		for i := 0; i < 5; i++ {
			if got := Validate(in); got != first {
				t.Fatalf("Validate(%q) changed between calls: %v vs %v", in, first, got)
			}
		}
	}
}

func TestParseDigits(t *testing.T) {
	d, err := ParseDigits("908172")
	if err != nil {
		t.Fatalf("ParseDigits: %v", err)
	}
	if d != (Digits{9, 0, 8, 1, 7, 2}) {
		t.Fatalf("unexpected digits %v", d)
	}
	if _, err := ParseDigits("90817"); !errors.Is(err, ErrWrongLength) {
		t.Fatalf("expected ErrWrongLength, got %v", err)
	}
}

func TestMustParseDigits_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustParseDigits("x")
}

func TestReason_StringAndMessageID(t *testing.T) {
	if ReasonNonDigit.String() != "non_digit" {
		t.Fatalf("unexpected String: %s", ReasonNonDigit)
	}
	if ReasonWrongLength.MessageID() != "validation.wrong_length" {
		t.Fatalf("unexpected MessageID: %s", ReasonWrongLength.MessageID())
	}
	if Reason(42).String() != "reason(42)" {
		t.Fatalf("unexpected String for unknown reason: %s", Reason(42))
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for n := g; n < 20000; n += 8 {
				code := fmt.Sprintf("%06d", n)
				if Decode(Encode(code)) != code {
					t.Errorf("round trip failed for %s", code)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}
