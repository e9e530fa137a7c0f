package words

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/robalobadob/wordmix/internal/apperr"
)

// Picker selects record indexes uniformly at random without repeating one
// until every index has been used.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a Picker seeded from crypto/rand.
func NewPicker() *Picker {
	var b [16]byte
	_, _ = crand.Read(b[:])
	return NewPickerWithSeed(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))
}

// NewPickerWithSeed returns a deterministic Picker, for tests.
func NewPickerWithSeed(seed1, seed2 uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// PickUnused returns an index in [0,total) that is not in used and records
// it there. When used already covers the whole range it is cleared first, so
// every record is revisited before any repeats.
func (p *Picker) PickUnused(used map[int]struct{}, total int) (int, error) {
	if total <= 0 {
		return 0, apperr.New(apperr.KindSourceExhausted, "no records to pick from")
	}
	if used == nil {
		return 0, apperr.Precondition("nil usage set")
	}

	available := 0
	for i := 0; i < total; i++ {
		if _, ok := used[i]; !ok {
			available++
		}
	}
	if available == 0 {
		clear(used)
		available = total
	}

	k := p.rng.IntN(available)
	for i := 0; i < total; i++ {
		if _, ok := used[i]; ok {
			continue
		}
		if k == 0 {
			used[i] = struct{}{}
			return i, nil
		}
		k--
	}
	// Unreachable: k < available.
	return 0, apperr.New(apperr.KindSourceExhausted, "no unused record left")
}
