package pcg32

// Source is the capability FromSource requires from an external
// randomness source: produce one 64-bit word per call. Anything from a
// math/rand/v2 source to a crypto-backed reader adapter satisfies it.
type Source interface {
	Uint64() uint64
}

// FromSource returns a Generator whose state and increment are drawn
// verbatim from src, state word first. No mixing or parity forcing is
// applied, so the result is only as good as the two raw words: this is a
// convenience for "give me a random generator", not a seeding contract.
// For deterministic, well-mixed initialization use FromSeed.
func FromSource(src Source) Generator {
	return Generator{state: src.Uint64(), inc: src.Uint64()}
}
