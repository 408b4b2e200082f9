package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
)

func intPtr(v int) *int { return &v }

func TestActivateWithCorrectOTP(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res := h.registerStudent(t, "23cse099@meaec.edu.in")
	code := h.storedOTP(t, res.User.ID)

	profile, err := h.svc.Activate(ctx, ActivateRequest{
		Email: "23cse099@meaec.edu.in",
		OTP:   intPtr(code),
	})
	require.NoError(t, err)
	require.NotEmpty(t, profile.Token)
	require.Equal(t, res.User.ID, profile.ID)

	stored := h.storedUser(t, res.User.ID)
	require.True(t, stored.IsActive)
	require.Nil(t, stored.OTP)

	// Re-activating with the consumed code fails as already active.
	_, err = h.svc.Activate(ctx, ActivateRequest{
		Email: "23cse099@meaec.edu.in",
		OTP:   intPtr(code),
	})
	requireAppError(t, err, pkgerrors.CodeValidation)
}

func TestActivateMismatchLeavesStateForRetry(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res := h.registerStudent(t, "23cse099@meaec.edu.in")
	code := h.storedOTP(t, res.User.ID)

	_, err := h.svc.Activate(ctx, ActivateRequest{
		Email: "23cse099@meaec.edu.in",
		OTP:   intPtr(code + 1),
	})
	requireFieldError(t, err, "otp")

	// Stored code survives the mismatch and still works.
	stored := h.storedUser(t, res.User.ID)
	require.False(t, stored.IsActive)
	require.NotNil(t, stored.OTP)
	require.Equal(t, code, *stored.OTP)

	_, err = h.svc.Activate(ctx, ActivateRequest{
		Email: "23cse099@meaec.edu.in",
		OTP:   intPtr(code),
	})
	require.NoError(t, err)
}

func TestActivateValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.Activate(ctx, ActivateRequest{OTP: intPtr(123456)})
	requireFieldError(t, err, "email")

	_, err = h.svc.Activate(ctx, ActivateRequest{Email: "a@b.com"})
	requireFieldError(t, err, "otp")

	_, err = h.svc.Activate(ctx, ActivateRequest{Email: "ghost@meaec.edu.in", OTP: intPtr(123456)})
	requireAppError(t, err, pkgerrors.CodeNotFound)
}

func TestActivateReusesExistingToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res := h.registerStudent(t, "23cse099@meaec.edu.in")
	code := h.storedOTP(t, res.User.ID)

	profile, err := h.svc.Activate(ctx, ActivateRequest{
		Email: "23cse099@meaec.edu.in",
		OTP:   intPtr(code),
	})
	require.NoError(t, err)

	// Profile reads get the same token back; activation never rotates.
	read, err := h.svc.Profile(ctx, res.User.ID)
	require.NoError(t, err)
	require.Equal(t, profile.Token, read.Token)
}
