package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeAuthUC struct {
	validToken string
	subject    string
}

func (f *fakeAuthUC) Login(ctx context.Context, username, password string) (string, error) {
	return f.validToken, nil
}

func (f *fakeAuthUC) Validate(token string) (string, error) {
	if token == f.validToken {
		return f.subject, nil
	}
	return "", errors.New("token is malformed")
}

func TestAuthMiddleware(t *testing.T) {
	auth := &fakeAuthUC{validToken: "good-token", subject: "admin"}
	var reached bool
	handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		name       string
		header     string
		wantStatus int
		wantPass   bool
	}{
		{"no header", "", http.StatusUnauthorized, false},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, false},
		{"empty token", "Bearer ", http.StatusUnauthorized, false},
		{"bad token", "Bearer nope", http.StatusUnauthorized, false},
		{"valid token", "Bearer good-token", http.StatusNoContent, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodPost, "/api/properties", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if reached != tc.wantPass {
				t.Fatalf("handler reached = %v, want %v", reached, tc.wantPass)
			}
		})
	}
}
