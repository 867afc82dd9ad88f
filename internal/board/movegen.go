package board

// knightOffsets are the eight (file, rank) knight jumps.
var knightOffsets = [8][2]int{
	{1, 2}, {-1, 2}, {2, 1}, {2, -1},
	{1, -2}, {-1, -2}, {-2, 1}, {-2, -1},
}

// Ray direction sets for the sliding pieces.
var (
	bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirections   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
)

// Pawn starting ranks, by side.
const (
	whitePawnStartRank = 1
	blackPawnStartRank = BoardSize - 2
)

// Moves returns the pseudo-legal destination set for a piece of the given
// kind and owner standing on origin. friendly and enemy are the occupancy
// views for the two sides relative to the mover; they must be disjoint.
// The origin itself may appear in friendly (no rule re-adds it).
//
// The result ignores checks entirely: a destination that would leave the
// mover's own king attacked is still included. An off-board origin yields
// the empty set.
func Moves(kind PieceType, owner Color, origin Square, friendly, enemy Bitboard) Bitboard {
	if !origin.IsValid() {
		return Empty
	}

	switch kind {
	case Pawn:
		return pawnMoves(owner, origin, friendly, enemy)
	case Knight:
		return knightMoves(origin, friendly)
	case Bishop:
		return slidingMoves(origin, friendly, enemy, bishopDirections)
	case Rook:
		return slidingMoves(origin, friendly, enemy, rookDirections)
	case Queen, King:
		// TODO: queen and king rules. Until then these pieces report no
		// moves, which callers cannot tell apart from a blocked piece.
		return Empty
	}
	return Empty
}

// Partition splits the raw per-side occupancy into the mover's
// (friendly, enemy) view.
func Partition(owner Color, white, black Bitboard) (friendly, enemy Bitboard) {
	if owner == Black {
		return black, white
	}
	return white, black
}

// knightMoves offers every jump that lands on the board and off friendly
// occupancy. Landing on an enemy square is a capture and needs no special
// handling; a knight has no path to block.
func knightMoves(origin Square, friendly Bitboard) Bitboard {
	var moves Bitboard
	for _, o := range knightOffsets {
		if dst := origin.Offset(o[0], o[1]); dst != NoSquare && !friendly.Has(dst) {
			moves = moves.Set(dst)
		}
	}
	return moves
}

// pawnMoves advances by +rank for White and -rank for Black. The four
// options are gated independently, so a pawn can offer a forward step and
// both diagonal captures at once.
func pawnMoves(owner Color, origin Square, friendly, enemy Bitboard) Bitboard {
	dir, startRank := 1, whitePawnStartRank
	if owner == Black {
		dir, startRank = -1, blackPawnStartRank
	}

	occupied := friendly | enemy
	rank := origin.Rank()
	var moves Bitboard

	// Single step: the square ahead must be empty. The source rank is
	// bounded on both ends, so a pawn sitting on the first or last rank
	// never advances.
	one := origin.Offset(0, dir)
	if rank > 0 && rank < BoardSize-1 && one != NoSquare && !occupied.Has(one) {
		moves = moves.Set(one)
	}

	// Double step from the starting rank, through an empty intervening
	// square onto an empty landing square.
	if rank == startRank {
		two := origin.Offset(0, 2*dir)
		if two != NoSquare && !occupied.Has(one) && !occupied.Has(two) {
			moves = moves.Set(two)
		}
	}

	// Diagonal captures, only onto enemy occupancy.
	for _, df := range [2]int{1, -1} {
		if dst := origin.Offset(df, dir); enemy.Has(dst) {
			moves = moves.Set(dst)
		}
	}

	return moves
}

// slidingMoves walks each ray direction outward from origin. A ray ends at
// the board edge, just before a friendly square, or on a captured enemy
// square. The direction set is the only difference between bishop and rook.
func slidingMoves(origin Square, friendly, enemy Bitboard, directions [4][2]int) Bitboard {
	var moves Bitboard
	for _, d := range directions {
		for step := 1; ; step++ {
			dst := origin.Offset(d[0]*step, d[1]*step)
			if dst == NoSquare || friendly.Has(dst) {
				break
			}
			moves = moves.Set(dst)
			if enemy.Has(dst) {
				break
			}
		}
	}
	return moves
}
