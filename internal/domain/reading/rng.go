package reading

// seedSalt pins the seed space. Changing it changes every reading ever
// generated, so treat it as part of the wire format.
const seedSalt = "veya-astral-v1"

// hashSeed folds a reading key into a 32-bit seed with the classic
// polynomial rolling hash.
func hashSeed(sign, date string) uint32 {
	var h uint32
	for _, b := range []byte(sign + "::" + date + "::" + seedSalt) {
		h = h*31 + uint32(b)
	}
	return h
}

// rng is a Mulberry32 stream. The constant and the operation order are
// load-bearing: identical seeds must replay identical draw sequences on
// every platform, or cached readings stop matching regenerated ones.
type rng struct {
	state uint32
}

func newRNG(seed uint32) *rng {
	return &rng{state: seed}
}

// next returns the stream's next value in [0,1).
func (r *rng) next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// intn returns a value in [0,n) from the next draw.
func (r *rng) intn(n int) int {
	return int(r.next() * float64(n))
}

// shuffle runs an in-place Fisher-Yates pass, consuming len(items)-1 draws.
func shuffle[T any](r *rng, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := int(r.next() * float64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}
