package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
)

type samplePayload struct {
	Email  string `json:"email" validate:"required,email"`
	Mobile string `json:"mobile" validate:"omitempty,max=10"`
}

func decode(t *testing.T, body string) error {
	t.Helper()

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	var dest samplePayload
	return DecodeJSONBody(req, &dest)
}

func TestDecodeJSONBodyAccepted(t *testing.T) {
	if err := decode(t, `{"email":"a@b.com","mobile":"9995550101"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSONBodyMalformed(t *testing.T) {
	err := decode(t, `{not json`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyUnknownField(t *testing.T) {
	if err := decode(t, `{"email":"a@b.com","bogus":true}`); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecodeJSONBodyFieldMessagesUseJSONNames(t *testing.T) {
	err := decode(t, `{"mobile":"99955501011234"}`)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("details = %v", typed.Details())
	}
	if details["email"] != "is required" {
		t.Fatalf("email message = %q", details["email"])
	}
	if !strings.Contains(details["mobile"], "at most") {
		t.Fatalf("mobile message = %q", details["mobile"])
	}
}
