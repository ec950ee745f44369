package adapters

import (
	"testing"
	"time"
)

func TestTokenService(t *testing.T) {
	service := NewTokenService("test-secret")

	pair, err := service.GeneratePair()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	t.Run("access token validates", func(t *testing.T) {
		if err := service.ValidateAccess(pair.AccessToken); err != nil {
			t.Errorf("expected the access token to validate, got %v", err)
		}
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		if err := service.ValidateAccess(pair.RefreshToken); err == nil {
			t.Error("expected a refresh token to be rejected as access")
		}
	})

	t.Run("refresh issues a new pair", func(t *testing.T) {
		fresh, err := service.Refresh(pair.RefreshToken)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := service.ValidateAccess(fresh.AccessToken); err != nil {
			t.Errorf("expected the new access token to validate, got %v", err)
		}
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		if _, err := service.Refresh(pair.AccessToken); err == nil {
			t.Error("expected an access token to be rejected on refresh")
		}
	})

	t.Run("garbage does not validate", func(t *testing.T) {
		if err := service.ValidateAccess("not-a-token"); err == nil {
			t.Error("expected garbage to be rejected")
		}
	})

	t.Run("tokens from another secret are rejected", func(t *testing.T) {
		other, err := NewTokenService("other-secret").GeneratePair()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := service.ValidateAccess(other.AccessToken); err == nil {
			t.Error("expected a foreign token to be rejected")
		}
	})

	t.Run("expiry timestamps are in the future", func(t *testing.T) {
		now := time.Now()
		if !pair.AccessExpiresAt.After(now) || !pair.RefreshExpiresAt.After(now) {
			t.Error("expected both expiries to be in the future")
		}
		if !pair.RefreshExpiresAt.After(pair.AccessExpiresAt) {
			t.Error("expected the refresh token to outlive the access token")
		}
	})
}
