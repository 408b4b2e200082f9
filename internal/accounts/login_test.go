package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventrave/eventrave-backend/pkg/db/models"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
)

func TestLoginRotatesToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res := h.registerStudent(t, "23cse099@meaec.edu.in")
	code := h.storedOTP(t, res.User.ID)

	activated, err := h.svc.Activate(ctx, ActivateRequest{
		Email: "23cse099@meaec.edu.in",
		OTP:   intPtr(code),
	})
	require.NoError(t, err)

	logged, err := h.svc.Login(ctx, LoginRequest{
		Email:    "23cse099@meaec.edu.in",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotEqual(t, activated.Token, logged.Token)

	// Exactly one live token remains, and the cache dropped the old key.
	var count int64
	require.NoError(t, h.db.DB().Model(&models.AuthToken{}).Where("user_id = ?", res.User.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
	require.Equal(t, []string{activated.Token}, h.cache.forgotten)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.registerJudge(t, "priya@example.com")

	_, err := h.svc.Login(ctx, LoginRequest{Email: "priya@example.com", Password: "wrong"})
	requireAppError(t, err, pkgerrors.CodeUnauthorized)

	_, err = h.svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "x"})
	requireAppError(t, err, pkgerrors.CodeNotFound)

	_, err = h.svc.Login(ctx, LoginRequest{Password: "x"})
	requireFieldError(t, err, "email")

	_, err = h.svc.Login(ctx, LoginRequest{Email: "priya@example.com"})
	requireFieldError(t, err, "password")
}

func TestLoginInactiveResendsOTPWithoutPasswordCheck(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res := h.registerStudent(t, "23cse099@meaec.edu.in")
	initialCode := h.storedOTP(t, res.User.ID)
	require.Len(t, h.notifier.sent, 1)

	// Even a wrong password resends the OTP; credentials are not checked
	// on the inactive path.
	_, err := h.svc.Login(ctx, LoginRequest{
		Email:    "23cse099@meaec.edu.in",
		Password: "definitely-wrong",
	})
	requireAppError(t, err, pkgerrors.CodeAccountInactive)
	require.Len(t, h.notifier.sent, 2)

	refreshed := h.storedOTP(t, res.User.ID)
	require.NotEqual(t, initialCode, refreshed)

	// The stale code no longer activates, the fresh one does.
	_, err = h.svc.Activate(ctx, ActivateRequest{
		Email: "23cse099@meaec.edu.in",
		OTP:   intPtr(initialCode),
	})
	requireFieldError(t, err, "otp")

	_, err = h.svc.Activate(ctx, ActivateRequest{
		Email: "23cse099@meaec.edu.in",
		OTP:   intPtr(refreshed),
	})
	require.NoError(t, err)
}

func TestLoginTwiceInvalidatesFirstSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.registerJudge(t, "priya@example.com")

	first, err := h.svc.Login(ctx, LoginRequest{Email: "priya@example.com", Password: "judge-pass"})
	require.NoError(t, err)

	second, err := h.svc.Login(ctx, LoginRequest{Email: "priya@example.com", Password: "judge-pass"})
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	var count int64
	require.NoError(t, h.db.DB().Model(&models.AuthToken{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
