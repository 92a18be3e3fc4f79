package caesar

import "testing"

func TestShiftRoundTrip(t *testing.T) {
	text := "The Quick Brown Fox, 1859 -- jumps!"
	for s := 0; s < AlphabetSize; s++ {
		back := Shift(Shift(text, s), (AlphabetSize-s)%AlphabetSize)
		if back != text {
			t.Fatalf("round trip failed for shift %d: %q", s, back)
		}
	}
}

func TestShiftZeroIsIdentity(t *testing.T) {
	for _, text := range []string{"", "abc", "Hello, World!", "1234!!"} {
		if got := Shift(text, 0); got != text {
			t.Fatalf("Shift(%q, 0) = %q", text, got)
		}
	}
}

func TestShiftKnownPair(t *testing.T) {
	if got := Shift("Hello, World!", 3); got != "Khoor, Zruog!" {
		t.Fatalf("unexpected ciphertext: %q", got)
	}
	if got := Shift("Khoor, Zruog!", 23); got != "Hello, World!" {
		t.Fatalf("unexpected plaintext: %q", got)
	}
}

func TestShiftNormalizesAnyInteger(t *testing.T) {
	text := "Khoor, Zruog!"
	want := Shift(text, 23)
	for _, s := range []int{-3, 49, -29, 23 + 26*100} {
		if got := Shift(text, s); got != want {
			t.Fatalf("Shift(text, %d) = %q, want %q", s, got, want)
		}
	}
}

func TestShiftPreservesCaseAndNonLetters(t *testing.T) {
	text := "Ab, Cd! 9 z"
	shifted := Shift(text, 7)
	in := []rune(text)
	out := []rune(shifted)
	if len(in) != len(out) {
		t.Fatalf("length changed: %d -> %d", len(in), len(out))
	}
	for i := range in {
		switch {
		case in[i] >= 'a' && in[i] <= 'z':
			if out[i] < 'a' || out[i] > 'z' {
				t.Fatalf("lowercase not preserved at %d: %q", i, out[i])
			}
		case in[i] >= 'A' && in[i] <= 'Z':
			if out[i] < 'A' || out[i] > 'Z' {
				t.Fatalf("uppercase not preserved at %d: %q", i, out[i])
			}
		default:
			if out[i] != in[i] {
				t.Fatalf("non-letter changed at %d: %q -> %q", i, in[i], out[i])
			}
		}
	}
}

func TestShiftRuneLeavesNonASCIIAlone(t *testing.T) {
	for _, r := range []rune{'é', 'ß', '中', ' ', '!', '7'} {
		if got := ShiftRune(r, 5); got != r {
			t.Fatalf("ShiftRune(%q, 5) = %q", r, got)
		}
	}
}

func TestShiftsEnumeratesAllInOrder(t *testing.T) {
	for _, text := range []string{"", "Khoor, Zruog!"} {
		want := 0
		for s, candidate := range Shifts(text) {
			if s != want {
				t.Fatalf("expected shift %d, got %d", want, s)
			}
			if candidate != Shift(text, s) {
				t.Fatalf("candidate mismatch at shift %d", s)
			}
			want++
		}
		if want != AlphabetSize {
			t.Fatalf("expected %d candidates, got %d", AlphabetSize, want)
		}
	}
}

func TestShiftsContainsKnownPlaintext(t *testing.T) {
	found := false
	for s, candidate := range Shifts("Khoor, Zruog!") {
		if s == 23 && candidate == "Hello, World!" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected (23, \"Hello, World!\") in enumeration")
	}
}

func TestShiftsRestartable(t *testing.T) {
	seq := Shifts("Khoor, Zruog!")
	collect := func() []string {
		var out []string
		for _, candidate := range seq {
			out = append(out, candidate)
		}
		return out
	}
	first := collect()
	second := collect()
	if len(first) != len(second) {
		t.Fatalf("restart produced %d vs %d candidates", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("restart mismatch at %d", i)
		}
	}
}

func TestShiftsEarlyStop(t *testing.T) {
	count := 0
	for range Shifts("abc") {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("expected early stop after 3, got %d", count)
	}
}
