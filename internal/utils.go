package internal

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewRand returns a generator seeded with seed, or with the current time
// when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewSessionId returns a short id used to tag log lines of one session.
func NewSessionId() string {
	return uuid.NewString()[:8]
}
