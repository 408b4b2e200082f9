package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventrave/eventrave-backend/internal/accounts"
	"github.com/eventrave/eventrave-backend/internal/users"
	"github.com/eventrave/eventrave-backend/pkg/enums"
	pkgerrors "github.com/eventrave/eventrave-backend/pkg/errors"
)

type stubAccountsService struct {
	registerResult *accounts.RegisterResult
	profile        *accounts.AuthenticatedProfile
	err            error

	lastUserID uint64
}

func (s *stubAccountsService) Register(_ context.Context, _ accounts.RegisterRequest) (*accounts.RegisterResult, error) {
	return s.registerResult, s.err
}

func (s *stubAccountsService) Activate(_ context.Context, _ accounts.ActivateRequest) (*accounts.AuthenticatedProfile, error) {
	return s.profile, s.err
}

func (s *stubAccountsService) Login(_ context.Context, _ accounts.LoginRequest) (*accounts.AuthenticatedProfile, error) {
	return s.profile, s.err
}

func (s *stubAccountsService) Profile(_ context.Context, userID uint64) (*accounts.AuthenticatedProfile, error) {
	s.lastUserID = userID
	return s.profile, s.err
}

func (s *stubAccountsService) UpdateProfile(_ context.Context, userID uint64, _ accounts.UpdateProfileRequest) (*accounts.AuthenticatedProfile, error) {
	s.lastUserID = userID
	return s.profile, s.err
}

func sampleProfile() *accounts.AuthenticatedProfile {
	batch := 23
	return &accounts.AuthenticatedProfile{
		ProfileDTO: users.ProfileDTO{
			ID:        1,
			Email:     "23cse099@meaec.edu.in",
			FirstName: "Asha",
			Role:      enums.RoleStudent,
			BatchYear: &batch,
			Branch:    enums.BranchCSE,
			Gender:    enums.GenderFemale,
			Image:     "user.png",
		},
		Token: "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAccountRegisterStudentMessage(t *testing.T) {
	svc := &stubAccountsService{registerResult: &accounts.RegisterResult{
		User:    &sampleProfile().ProfileDTO,
		OTPSent: true,
	}}
	rec := postJSON(t, AccountRegister(svc, nil), `{
		"first_name":"Asha","email":"23cse099@meaec.edu.in","password":"x","role":"student"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data["message"] != "User registered successfully. Check your email for otp." {
		t.Fatalf("message = %q", body.Data["message"])
	}
}

func TestAccountRegisterJudgeMessage(t *testing.T) {
	svc := &stubAccountsService{registerResult: &accounts.RegisterResult{
		User: &sampleProfile().ProfileDTO,
	}}
	rec := postJSON(t, AccountRegister(svc, nil), `{
		"first_name":"Priya","email":"priya@example.com","password":"x","role":"judge"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data["message"] != "User registered successfully." {
		t.Fatalf("message = %q", body.Data["message"])
	}
}

func TestAccountRegisterValidationEnvelope(t *testing.T) {
	svc := &stubAccountsService{}
	rec := postJSON(t, AccountRegister(svc, nil), `{"password":"x"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("code = %q", body.Error.Code)
	}
	for _, field := range []string{"email", "role"} {
		if body.Error.Details[field] == "" {
			t.Fatalf("missing detail for %q: %v", field, body.Error.Details)
		}
	}
	// Names are optional at the schema level.
	if body.Error.Details["first_name"] != "" {
		t.Fatalf("first_name must not be required: %v", body.Error.Details)
	}
}

func TestAccountRegisterWithoutFirstName(t *testing.T) {
	svc := &stubAccountsService{registerResult: &accounts.RegisterResult{
		User: &sampleProfile().ProfileDTO,
	}}
	rec := postJSON(t, AccountRegister(svc, nil), `{
		"email":"priya@example.com","password":"judge-pass","role":"judge"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestAccountActivateReturnsProfileWithToken(t *testing.T) {
	svc := &stubAccountsService{profile: sampleProfile()}
	rec := postJSON(t, AccountActivate(svc, nil), `{"email":"23cse099@meaec.edu.in","otp":123456}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			ID        uint64 `json:"id"`
			Email     string `json:"email"`
			BatchYear *int   `json:"batch_year"`
			Token     string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.Token == "" || body.Data.Email == "" {
		t.Fatalf("flattened profile missing fields: %s", rec.Body.String())
	}
	if body.Data.BatchYear == nil || *body.Data.BatchYear != 23 {
		t.Fatalf("batch year = %v", body.Data.BatchYear)
	}
}

func TestAccountLoginInactiveIs203(t *testing.T) {
	svc := &stubAccountsService{err: pkgerrors.New(pkgerrors.CodeAccountInactive, "account is not active, check your email for a fresh otp")}
	rec := postJSON(t, AccountLogin(svc, nil), `{"email":"23cse099@meaec.edu.in","password":"x"}`)

	if rec.Code != http.StatusNonAuthoritativeInfo {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAccountLoginNotFound(t *testing.T) {
	svc := &stubAccountsService{err: pkgerrors.New(pkgerrors.CodeNotFound, "user not found")}
	rec := postJSON(t, AccountLogin(svc, nil), `{"email":"ghost@example.com","password":"x"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
