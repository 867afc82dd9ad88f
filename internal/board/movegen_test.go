package board

import (
	"math/rand"
	"testing"

	"github.com/tlemaire/gochess/internal/testutil"
)

// bb builds a square set from its members.
func bb(sqs ...Square) Bitboard {
	var b Bitboard
	for _, sq := range sqs {
		b = b.Set(sq)
	}
	return b
}

func TestKnightMoves(t *testing.T) {
	tests := []struct {
		name     string
		origin   Square
		friendly Bitboard
		enemy    Bitboard
		want     Bitboard
	}{
		{
			name:   "corner reaches two squares",
			origin: A1,
			want:   bb(B3, C2),
		},
		{
			name:   "center reaches all eight",
			origin: D4,
			want:   bb(B3, B5, C2, C6, E2, E6, F3, F5),
		},
		{
			name:     "friendly squares excluded",
			origin:   D4,
			friendly: bb(B3, F5),
			want:     bb(B5, C2, C6, E2, E6, F3),
		},
		{
			name:   "enemy squares remain as captures",
			origin: D4,
			enemy:  bb(B3, F5),
			want:   bb(B3, B5, C2, C6, E2, E6, F3, F5),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Moves(Knight, White, tc.origin, tc.friendly, tc.enemy)
			testutil.AssertEqual(t, got.Squares(), tc.want.Squares())
		})
	}
}

// TestKnightMovesProperty checks, over random occupancies, that a jump is
// offered exactly when it lands on the board off friendly occupancy.
func TestKnightMovesProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		origin := Square(rng.Intn(64))
		friendly := Bitboard(rng.Uint64()) & Bitboard(rng.Uint64())
		enemy := Bitboard(rng.Uint64()) &^ friendly

		got := Moves(Knight, White, origin, friendly, enemy)

		for _, o := range knightOffsets {
			dst := origin.Offset(o[0], o[1])
			if dst == NoSquare {
				continue
			}
			wantIn := !friendly.Has(dst)
			if got.Has(dst) != wantIn {
				t.Fatalf("origin %v offset (%d,%d): in result = %v, want %v",
					origin, o[0], o[1], got.Has(dst), wantIn)
			}
		}
	}
}

func TestRookMoves(t *testing.T) {
	t.Run("open corner reaches 14 squares", func(t *testing.T) {
		got := Moves(Rook, White, A1, Empty, Empty)
		want := bb(B1, C1, D1, E1, F1, G1, H1, A2, A3, A4, A5, A6, A7, A8)
		testutil.AssertEqual(t, got.Squares(), want.Squares())
	})

	t.Run("friendly piece ends ray before it", func(t *testing.T) {
		got := Moves(Rook, White, A1, bb(A4), Empty)
		want := bb(B1, C1, D1, E1, F1, G1, H1, A2, A3)
		testutil.AssertEqual(t, got.Squares(), want.Squares())
	})

	t.Run("enemy piece ends ray on it", func(t *testing.T) {
		got := Moves(Rook, White, A1, Empty, bb(A4))
		want := bb(B1, C1, D1, E1, F1, G1, H1, A2, A3, A4)
		testutil.AssertEqual(t, got.Squares(), want.Squares())
	})
}

func TestBishopMoves(t *testing.T) {
	t.Run("friendly blocker stops one diagonal short", func(t *testing.T) {
		// Bishop d4, friendly f6: toward f6 only e5 remains, the other
		// three diagonals run open.
		got := Moves(Bishop, White, D4, bb(F6), Empty)
		want := bb(
			E5,         // toward f6, stops before the blocker
			E3, F2, G1, // down-right
			C5, B6, A7, // up-left
			C3, B2, A1, // down-left
		)
		testutil.AssertEqual(t, got.Squares(), want.Squares())
	})

	t.Run("capture terminates the ray", func(t *testing.T) {
		got := Moves(Bishop, White, D4, Empty, bb(F6))
		if !got.Has(F6) {
			t.Errorf("capture square f6 missing from result")
		}
		if got.Has(G7) || got.Has(H8) {
			t.Errorf("ray continued past captured square: %v", got.Squares())
		}
	})
}

// TestSlidingRayTermination checks the ray invariants over random boards:
// nothing beyond a friendly square, nothing beyond a captured enemy square.
func TestSlidingRayTermination(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		origin := Square(rng.Intn(64))
		friendly := Bitboard(rng.Uint64()) & Bitboard(rng.Uint64())
		enemy := Bitboard(rng.Uint64()) &^ friendly

		for _, kind := range []PieceType{Bishop, Rook} {
			got := Moves(kind, White, origin, friendly, enemy)

			dirs := rookDirections
			if kind == Bishop {
				dirs = bishopDirections
			}
			for _, d := range dirs {
				blocked := false
				for step := 1; ; step++ {
					dst := origin.Offset(d[0]*step, d[1]*step)
					if dst == NoSquare {
						break
					}
					switch {
					case blocked || friendly.Has(dst):
						blocked = true
						if got.Has(dst) {
							t.Fatalf("%v at %v: %v reachable past a blocker", kind, origin, dst)
						}
					case enemy.Has(dst):
						if !got.Has(dst) {
							t.Fatalf("%v at %v: capture %v missing", kind, origin, dst)
						}
						blocked = true
					default:
						if !got.Has(dst) {
							t.Fatalf("%v at %v: open square %v missing", kind, origin, dst)
						}
					}
				}
			}
		}
	}
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name     string
		owner    Color
		origin   Square
		friendly Bitboard
		enemy    Bitboard
		want     Bitboard
	}{
		{
			name:   "white start rank offers single and double",
			owner:  White,
			origin: E2,
			want:   bb(E3, E4),
		},
		{
			name:   "all four options at once",
			owner:  White,
			origin: E2,
			enemy:  bb(F3, D3),
			want:   bb(E3, E4, F3, D3),
		},
		{
			name:   "forward blocked by enemy still captures",
			owner:  White,
			origin: E2,
			enemy:  bb(E3, F3),
			want:   bb(F3),
		},
		{
			name:     "forward blocked by friendly",
			owner:    White,
			origin:   E4,
			friendly: bb(E5),
			want:     Empty,
		},
		{
			name:   "double step blocked on intervening square",
			owner:  White,
			origin: E2,
			enemy:  bb(E3),
			want:   Empty,
		},
		{
			name:     "double step blocked on landing square",
			owner:    White,
			origin:   E2,
			friendly: bb(E4),
			want:     bb(E3),
		},
		{
			name:   "no double step off the start rank",
			owner:  White,
			origin: E3,
			want:   bb(E4),
		},
		{
			name:   "black advances down the board",
			owner:  Black,
			origin: E7,
			want:   bb(E6, E5),
		},
		{
			name:   "black captures toward rank 1",
			owner:  Black,
			origin: E5,
			enemy:  bb(D4, F4),
			want:   bb(E4, D4, F4),
		},
		{
			name:   "second-to-last rank may still step forward",
			owner:  White,
			origin: E7,
			want:   bb(E8),
		},
		{
			name:   "no capture onto empty diagonal",
			owner:  White,
			origin: E4,
			want:   bb(E5),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Moves(Pawn, tc.owner, tc.origin, tc.friendly, tc.enemy)
			testutil.AssertEqual(t, got.Squares(), tc.want.Squares())
		})
	}
}

// TestPawnSymmetry checks that a black pawn mirrors a white pawn on the
// reflected board.
func TestPawnSymmetry(t *testing.T) {
	for origin := A2; origin <= H7; origin++ {
		white := Moves(Pawn, White, origin, Empty, Empty)
		black := Moves(Pawn, Black, origin.Mirror(), Empty, Empty)

		var mirrored Bitboard
		for _, sq := range black.Squares() {
			mirrored = mirrored.Set(sq.Mirror())
		}

		testutil.AssertEqual(t, mirrored.Squares(), white.Squares(),
			"origin %v vs mirrored %v", origin, origin.Mirror())
	}
}

func TestUnimplementedKinds(t *testing.T) {
	for _, kind := range []PieceType{King, Queen} {
		if got := Moves(kind, White, D4, Empty, Empty); got != Empty {
			t.Errorf("%v: got %v, want no moves", kind, got.Squares())
		}
	}
}

func TestMovesInvalidOrigin(t *testing.T) {
	if got := Moves(Rook, White, NoSquare, Empty, Empty); got != Empty {
		t.Errorf("off-board origin: got %v, want empty set", got.Squares())
	}
}

// TestMovesIdempotent checks referential transparency on a random input.
func TestMovesIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	friendly := Bitboard(rng.Uint64()) & Bitboard(rng.Uint64())
	enemy := Bitboard(rng.Uint64()) &^ friendly

	for _, kind := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		first := Moves(kind, Black, D5, friendly, enemy)
		second := Moves(kind, Black, D5, friendly, enemy)
		if first != second {
			t.Errorf("%v: repeated call disagreed: %v vs %v", kind, first.Squares(), second.Squares())
		}
	}
}

func TestMovesTolerateOriginInFriendly(t *testing.T) {
	// Callers may pass the mover's full occupancy, origin included.
	with := Moves(Rook, White, D4, bb(D4, D6), Empty)
	without := Moves(Rook, White, D4, bb(D6), Empty)
	testutil.AssertEqual(t, with.Squares(), without.Squares())
}

func TestPartition(t *testing.T) {
	white := bb(A1, B2)
	black := bb(G7, H8)

	f, e := Partition(White, white, black)
	if f != white || e != black {
		t.Errorf("White partition wrong: friendly %v enemy %v", f.Squares(), e.Squares())
	}

	f, e = Partition(Black, white, black)
	if f != black || e != white {
		t.Errorf("Black partition wrong: friendly %v enemy %v", f.Squares(), e.Squares())
	}
}
