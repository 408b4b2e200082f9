package tokens

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/eventrave/eventrave-backend/pkg/errors"
)

// keyBytes yields a 40 character hex key.
const keyBytes = 20

// NewKey returns a random opaque session key.
func NewKey() (string, error) {
	buf := make([]byte, keyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(errors.CodeInternal, err, "generate token key")
	}
	return hex.EncodeToString(buf), nil
}
