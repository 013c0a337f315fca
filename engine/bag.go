package engine

// Bag is the 7-bag randomizer. Each refill is an unbiased permutation of all
// seven types, so every run of seven draws contains each type exactly once.
//
// The RNG state is carried inside the value rather than behind a shared
// *rand.Rand so that a Game can be copied freely and replayed from a seed
// without aliasing a mutable generator.
type Bag struct {
	pieces []PieceType
	rng    uint64
}

// NewBag creates an empty bag seeded for deterministic draws.
// A zero seed is replaced with a fixed non-zero constant since the xorshift
// state must never be zero.
func NewBag(seed uint64) Bag {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return Bag{rng: seed}
}

// next advances the xorshift64* state and returns the new state plus a
// well-mixed output value
func (b Bag) next() (Bag, uint64) {
	x := b.rng
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	b.rng = x
	return b, x * 0x2545f4914f6cdd1d
}

// refill fills the bag with a Fisher-Yates shuffled permutation of the seven
// piece types
func (b Bag) refill() Bag {
	pieces := make([]PieceType, len(PieceTypes))
	copy(pieces, PieceTypes[:])
	for i := len(pieces) - 1; i > 0; i-- {
		var r uint64
		b, r = b.next()
		j := int(r % uint64(i+1))
		pieces[i], pieces[j] = pieces[j], pieces[i]
	}
	b.pieces = pieces
	return b
}

// Draw pops the next piece type, refilling the bag from a fresh permutation
// when it runs empty
func (b Bag) Draw() (PieceType, Bag) {
	if len(b.pieces) == 0 {
		b = b.refill()
	}
	t := b.pieces[0]
	rest := make([]PieceType, len(b.pieces)-1)
	copy(rest, b.pieces[1:])
	b.pieces = rest
	return t, b
}

// Remaining returns how many pieces are left before the next refill
func (b Bag) Remaining() int {
	return len(b.pieces)
}

// State exposes the current RNG state, used to derive a fresh deterministic
// seed on restart
func (b Bag) State() uint64 {
	return b.rng
}
