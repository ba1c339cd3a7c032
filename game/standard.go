package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// entropy seeds every new Roller
var entropy io.Reader = crand.Reader

// Roller is the standard dice, backed by a PCG generator.
type Roller struct {
	rng *rand.Rand
}

// NewRoller seeds a Roller once from the platform entropy source.
func NewRoller() *Roller {
	return NewSeededRoller(entropySeed())
}

// NewSeededRoller returns a Roller with a fixed seed, for reproducible draws.
func NewSeededRoller(seed uint64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

func (r *Roller) Roll(upper int64) int64 {
	// Empty or singleton range always yields 1
	if upper <= 1 {
		return 1
	}
	return 1 + r.rng.Int63n(upper-1)
}

func entropySeed() uint64 {
	var b [8]byte
	if _, err := io.ReadFull(entropy, b[:]); err != nil {
		log.Warn().Err(err).Msg("entropy source unavailable, seeding dice from clock")
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
