package accounts

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/eventrave/eventrave-backend/internal/users"
	"github.com/eventrave/eventrave-backend/pkg/db/models"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
	"github.com/eventrave/eventrave-backend/pkg/mailer"
)

const otpEmailSubject = "Eventrave Registration OTP"

func otpEmailBody(firstName string, code int) string {
	return fmt.Sprintf("Hi %s,\n\nYour OTP is %d.\n\nRegards,\nEventrave Team", firstName, code)
}

// dispatchOTP mints a fresh code, persists it onto the account and emails
// it. Any prior unconsumed code is overwritten.
func (s *service) dispatchOTP(ctx context.Context, user *models.User) error {
	code, err := s.otpGen.Generate()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate otp")
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		return users.NewRepository(tx).SetOTP(ctx, user.ID, code)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist otp")
	}

	msg := mailer.Message{
		Subject: otpEmailSubject,
		Body:    otpEmailBody(user.FirstName, code),
		To:      user.Email,
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send otp email")
	}

	s.metrics.IncOTPEmail()
	return nil
}
