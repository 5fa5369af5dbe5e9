package httperr

import (
	"fmt"
	"testing"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("slug_already_exists")

	if !IsBusiness(err, "slug_already_exists") {
		t.Fatalf("expected code match")
	}
	if IsBusiness(err, "invalid_credentials") {
		t.Fatalf("matched the wrong code")
	}

	wrapped := fmt.Errorf("register: %w", err)
	if !IsBusiness(wrapped, "slug_already_exists") {
		t.Fatalf("expected match through wrapping")
	}

	if IsBusiness(fmt.Errorf("db down"), "slug_already_exists") {
		t.Fatalf("matched a non-business error")
	}
}
