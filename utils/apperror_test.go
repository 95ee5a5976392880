package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	cases := []struct {
		err  error
		pred func(error) bool
	}{
		{NotFoundf("missing %s", "x"), IsNotFound},
		{Conflictf("taken"), IsConflict},
		{Validationf("bad input"), IsValidation},
		{Concurrencyf("lost race"), IsConcurrency},
	}
	for _, tc := range cases {
		if !tc.pred(tc.err) {
			t.Fatalf("predicate rejected its own error %v", tc.err)
		}
	}
	if IsNotFound(Conflictf("taken")) {
		t.Fatalf("predicate matched a foreign code")
	}
	if IsConflict(errors.New("plain")) || IsConflict(nil) {
		t.Fatalf("predicate matched a non-taxonomy error")
	}
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	err := fmt.Errorf("claiming slots: %w", Conflictf("slot taken"))
	if !IsConflict(err) {
		t.Fatalf("wrapped error lost its code: %v", err)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFoundf("missing"), http.StatusNotFound},
		{Validationf("bad"), http.StatusBadRequest},
		{Conflictf("taken"), http.StatusConflict},
		{Concurrencyf("lost race"), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
