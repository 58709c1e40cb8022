package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestAsRequestError(t *testing.T) {
	reqErr := &RequestError{StatusCode: 502, Status: "Bad Gateway", Body: "upstream sad"}
	wrapped := fmt.Errorf("fetch games: %w", reqErr)

	got, ok := AsRequestError(wrapped)
	if !ok {
		t.Fatal("expected RequestError to unwrap")
	}
	if got.StatusCode != 502 {
		t.Fatalf("unexpected status %d", got.StatusCode)
	}

	if _, ok := AsRequestError(errors.New("plain")); ok {
		t.Fatal("expected plain error to not match")
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(context.DeadlineExceeded) {
		t.Fatal("expected deadline exceeded to classify as timeout")
	}
	if IsTimeout(errors.New("other")) {
		t.Fatal("expected non-timeout error to not classify")
	}
	if IsTimeout(nil) {
		t.Fatal("expected nil to not classify")
	}
}
