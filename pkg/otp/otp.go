package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/eventrave/eventrave-backend/pkg/config"
)

// Generator produces numeric one-time codes.
type Generator interface {
	Generate() (int, error)
}

type generator struct {
	digits int
}

// NewGenerator builds a code generator with the configured digit count.
// Counts outside 4..9 are clamped so codes always fit an int column.
func NewGenerator(cfg config.OTPConfig) Generator {
	digits := cfg.Digits
	if digits < 4 {
		digits = 4
	}
	if digits > 9 {
		digits = 9
	}
	return &generator{digits: digits}
}

// Generate returns a uniformly random code with a fixed digit count, so
// codes never carry a leading zero ambiguity.
func (g *generator) Generate() (int, error) {
	min := int64(1)
	for i := 1; i < g.digits; i++ {
		min *= 10
	}
	span := min*10 - min

	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return 0, fmt.Errorf("generate otp: %w", err)
	}
	return int(min + n.Int64()), nil
}
