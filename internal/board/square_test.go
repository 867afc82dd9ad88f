package board

import "testing"

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		sq   Square
		file int
		rank int
		str  string
	}{
		{A1, 0, 0, "a1"},
		{H1, 7, 0, "h1"},
		{E4, 4, 3, "e4"},
		{A8, 0, 7, "a8"},
		{H8, 7, 7, "h8"},
	}

	for _, tc := range tests {
		if tc.sq.File() != tc.file || tc.sq.Rank() != tc.rank {
			t.Errorf("%v: file/rank = (%d,%d), want (%d,%d)",
				tc.sq, tc.sq.File(), tc.sq.Rank(), tc.file, tc.rank)
		}
		if tc.sq.String() != tc.str {
			t.Errorf("String() = %q, want %q", tc.sq.String(), tc.str)
		}
		if got := NewSquare(tc.file, tc.rank); got != tc.sq {
			t.Errorf("NewSquare(%d,%d) = %v, want %v", tc.file, tc.rank, got, tc.sq)
		}
	}
}

func TestNewSquareOutOfRange(t *testing.T) {
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-2, 9}} {
		if got := NewSquare(c[0], c[1]); got != NoSquare {
			t.Errorf("NewSquare(%d,%d) = %v, want NoSquare", c[0], c[1], got)
		}
	}
}

func TestOffset(t *testing.T) {
	if got := E4.Offset(1, 2); got != F6 {
		t.Errorf("e4+(1,2) = %v, want f6", got)
	}
	if got := A1.Offset(-1, 0); got != NoSquare {
		t.Errorf("a1+(-1,0) = %v, want NoSquare", got)
	}
	// A file underflow must not wrap onto the previous rank.
	if got := A4.Offset(-1, 0); got != NoSquare {
		t.Errorf("a4+(-1,0) = %v, want NoSquare", got)
	}
	if got := H4.Offset(1, 1); got != NoSquare {
		t.Errorf("h4+(1,1) = %v, want NoSquare", got)
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e4")
	if err != nil || sq != E4 {
		t.Errorf("ParseSquare(e4) = %v, %v", sq, err)
	}

	for _, s := range []string{"", "e", "e9", "i4", "e44"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) accepted invalid input", s)
		}
	}
}

func TestMirror(t *testing.T) {
	pairs := [][2]Square{{A1, A8}, {E2, E7}, {D4, D5}, {H8, H1}}
	for _, p := range pairs {
		if p[0].Mirror() != p[1] || p[1].Mirror() != p[0] {
			t.Errorf("Mirror(%v) = %v, want %v", p[0], p[0].Mirror(), p[1])
		}
	}
}

func TestBitboardSetOps(t *testing.T) {
	b := Empty.Set(E4).Set(A1).Set(H8)

	if b.Count() != 3 {
		t.Errorf("Count = %d, want 3", b.Count())
	}
	if !b.Has(E4) || b.Has(E5) {
		t.Error("membership wrong after Set")
	}
	if b.Set(E4).Count() != 3 {
		t.Error("re-adding a member changed the set")
	}
	if b.Clear(E4).Has(E4) {
		t.Error("Clear left the square in the set")
	}
	if b.Has(NoSquare) {
		t.Error("NoSquare must never be a member")
	}

	got := b.Squares()
	want := []Square{A1, E4, H8}
	if len(got) != len(want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Squares() = %v, want %v", got, want)
		}
	}
}
