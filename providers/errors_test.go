package providers

import (
	"fmt"
	"net/http"
	"testing"
)

func TestStatusErrorMessageAndClassification(t *testing.T) {
	withBody := &StatusError{URL: "https://x/api", StatusCode: 503, Body: "down"}
	if withBody.Error() != "upstream status 503 for https://x/api: down" {
		t.Fatalf("unexpected message: %s", withBody.Error())
	}
	if !withBody.Temporary() {
		t.Fatalf("503 should be temporary")
	}

	notFound := &StatusError{URL: "https://x/api", StatusCode: http.StatusNotFound}
	if notFound.Temporary() {
		t.Fatalf("404 should not be temporary")
	}
	if !notFound.NotFound() {
		t.Fatalf("404 should report NotFound")
	}

	rateLimited := &StatusError{StatusCode: http.StatusTooManyRequests}
	if !rateLimited.Temporary() {
		t.Fatalf("429 should be temporary")
	}
}

func TestAsStatusErrorUnwraps(t *testing.T) {
	inner := &StatusError{URL: "u", StatusCode: 500}
	wrapped := fmt.Errorf("fetching: %w", inner)

	se, ok := AsStatusError(wrapped)
	if !ok || se.StatusCode != 500 {
		t.Fatalf("expected to unwrap StatusError, got %v ok=%v", se, ok)
	}

	if _, ok := AsStatusError(fmt.Errorf("plain")); ok {
		t.Fatalf("plain error should not unwrap")
	}
}
