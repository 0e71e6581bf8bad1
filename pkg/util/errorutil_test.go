package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewValidationError("bad input", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewUnauthorized("no token"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewForbidden("admin only"), "FORBIDDEN", http.StatusForbidden},
		{NewNotFound("ticket", nil), "NOT_FOUND", http.StatusNotFound},
		{NewConflict("email taken", nil), "CONFLICT", http.StatusConflict},
		{NewTooManyRequests("slow down"), "RATE_LIMITED", http.StatusTooManyRequests},
		{NewInternalError(errors.New("db down")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		de := ToDomainError(tc.err)
		if de.Code != tc.code || de.HTTPStatus != tc.status {
			t.Fatalf("expected %s/%d, got %s/%d", tc.code, tc.status, de.Code, de.HTTPStatus)
		}
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	if de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("pgx.ErrNoRows should map to 404, got %d", de.HTTPStatus)
	}
}

func TestToDomainErrorHidesUnexpectedDetails(t *testing.T) {
	de := ToDomainError(errors.New("connection refused to 10.0.0.4:5432"))
	if de.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", de.HTTPStatus)
	}
	if de.Message != "internal server error" {
		t.Fatalf("internal details leaked into message: %q", de.Message)
	}
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("admin only")
	de := ToDomainError(original)
	if de.Code != "FORBIDDEN" {
		t.Fatalf("wrapped DomainError not preserved: %s", de.Code)
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatal("nil error should map to nil")
	}
}
