package accounts

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"github.com/eventrave/eventrave-backend/internal/users"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
)

// maxUsernameAttempts bounds the numeric-suffix disambiguation loop before
// falling back to a random suffix.
const maxUsernameAttempts = 100

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s_-]`)
	slugSeparators   = regexp.MustCompile(`[\s-]+`)
)

// slugify reduces an email local-part to a URL-safe username candidate:
// lowercase, strip anything outside [a-z0-9 _-], collapse runs of
// whitespace and hyphens into single hyphens.
func slugify(value string) string {
	out := strings.ToLower(strings.TrimSpace(value))
	out = slugInvalidChars.ReplaceAllString(out, "")
	out = slugSeparators.ReplaceAllString(out, "-")
	return strings.Trim(out, "-_")
}

// resolveUsername derives a unique username from the email local-part by
// appending an incrementing numeric suffix on collision. After
// maxUsernameAttempts collisions a random suffix breaks the tie.
func resolveUsername(ctx context.Context, repo *users.Repository, localPart string) (string, error) {
	base := slugify(localPart)
	if base == "" {
		base = "user"
	}

	candidate := base
	for attempt := 1; attempt <= maxUsernameAttempts; attempt++ {
		taken, err := repo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check username")
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(attempt)
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "username tie-break")
	}
	return base + "-" + hex.EncodeToString(suffix), nil
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
