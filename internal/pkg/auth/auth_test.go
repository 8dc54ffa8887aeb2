package auth

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/sober-studio/medtrack/internal/pkg/auth/store"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*JWTTokenService, *fakeClock, *store.MemoryRevocationStore) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	revoked := store.NewMemoryRevocationStore()
	return NewJWTTokenService("test-secret", DefaultTTL, revoked, WithClock(clock.Now)), clock, revoked
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []int64{42, 7, 1, 1 << 40} {
		tok, err := s.Issue(ctx, id)
		if err != nil {
			t.Fatalf("Issue(%d): %v", id, err)
		}
		claims, err := s.Verify(ctx, tok)
		if err != nil {
			t.Fatalf("Verify(%d): %v", id, err)
		}
		if claims.UserID != id {
			t.Errorf("Verify: got id %d, want %d", claims.UserID, id)
		}
	}
}

func TestIssue_PayloadCarriesOnlyID(t *testing.T) {
	s, clock, _ := newTestService(t)
	tok, err := s.Issue(context.Background(), 42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims := &Claims{}
	if _, _, err := jwtv5.NewParser().ParseUnverified(tok, claims); err != nil {
		t.Fatalf("ParseUnverified: %v", err)
	}
	if claims.Subject != "" || claims.ID != "" || claims.Issuer != "" || len(claims.Audience) != 0 {
		t.Errorf("unexpected registered claims: %+v", claims.RegisteredClaims)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 2*time.Hour {
		t.Errorf("validity window = %v, want 2h", got)
	}
	if !claims.IssuedAt.Time.Equal(clock.Now()) {
		t.Errorf("iat = %v, want %v", claims.IssuedAt.Time, clock.Now())
	}
}

func TestVerify_Expired(t *testing.T) {
	s, clock, _ := newTestService(t)
	ctx := context.Background()
	tok, err := s.Issue(ctx, 42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	clock.Advance(2*time.Hour - time.Second)
	if _, err := s.Verify(ctx, tok); err != nil {
		t.Fatalf("Verify just before expiry: %v", err)
	}

	clock.Advance(2 * time.Second)
	_, err = s.Verify(ctx, tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify after expiry: want ErrTokenInvalid, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	s, _, revoked := newTestService(t)
	ctx := context.Background()

	seven, _ := s.Issue(ctx, 7)
	other, _ := s.Issue(ctx, 8)

	if _, err := s.Verify(ctx, seven); err != nil {
		t.Fatalf("Verify before revoke: %v", err)
	}

	s.Revoke(ctx, seven)
	s.Revoke(ctx, seven)

	_, err := s.Verify(ctx, seven)
	if !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("Verify revoked: want ErrTokenRevoked, got %v", err)
	}
	if errors.Is(err, ErrTokenInvalid) {
		t.Error("revoked must stay distinguishable from invalid internally")
	}
	if _, err := s.Verify(ctx, other); err != nil {
		t.Errorf("revoking one token affected another: %v", err)
	}
	if revoked.Len() != 1 {
		t.Errorf("store Len = %d, want 1", revoked.Len())
	}
}

func TestRevoke_RecordsTokenExpiry(t *testing.T) {
	s, clock, revoked := newTestService(t)
	ctx := context.Background()
	tok, _ := s.Issue(ctx, 7)

	s.Revoke(ctx, tok)
	s.Revoke(ctx, "not-a-jwt")

	if n := revoked.Sweep(clock.Now().Add(time.Hour)); n != 0 {
		t.Fatalf("Sweep before expiry removed %d", n)
	}
	if n := revoked.Sweep(clock.Now().Add(2 * time.Hour)); n != 1 {
		t.Fatalf("Sweep after expiry removed %d, want 1", n)
	}
	if !revoked.IsRevoked("not-a-jwt") {
		t.Error("undecodable token must never be swept")
	}
}

// 清理后的撤销记录对应的令牌已自然过期，校验结果为 TokenInvalid
func TestVerify_AfterSweep(t *testing.T) {
	s, clock, revoked := newTestService(t)
	ctx := context.Background()
	tok, _ := s.Issue(ctx, 7)
	s.Revoke(ctx, tok)

	clock.Advance(DefaultTTL)
	if _, err := s.Verify(ctx, tok); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("before sweep: want ErrTokenRevoked, got %v", err)
	}
	if n := revoked.Sweep(clock.Now()); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	_, err := s.Verify(ctx, tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("after sweep: want ErrTokenInvalid, got %v", err)
	}
	if !errors.Is(Public(err), Public(ErrTokenRevoked)) {
		t.Error("swept token must look the same to callers as a revoked one")
	}
}

func TestVerify_WrongSignature(t *testing.T) {
	s, clock, _ := newTestService(t)
	forger := NewJWTTokenService("another-secret", DefaultTTL, store.NewMemoryRevocationStore(), WithClock(clock.Now))

	forged, err := forger.Issue(context.Background(), 42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if strings.Count(forged, ".") != 2 {
		t.Fatalf("forged token is not a well-formed JWT: %q", forged)
	}
	if _, err := s.Verify(context.Background(), forged); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify forged: want ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	s, clock, _ := newTestService(t)
	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(clock.Now().Add(time.Hour)),
		},
	}
	none, err := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, claims).SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	if _, err := s.Verify(context.Background(), none); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify alg=none: want ErrTokenInvalid, got %v", err)
	}
	if _, err := s.Verify(context.Background(), "garbage"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify garbage: want ErrTokenInvalid, got %v", err)
	}
}

func TestPublic(t *testing.T) {
	if got := Public(ErrTokenRevoked); !errors.Is(got, ErrTokenInvalid) {
		t.Errorf("Public(revoked) = %v, want ErrTokenInvalid", got)
	}
	if got := Public(ErrMissingCredential); !errors.Is(got, ErrMissingCredential) {
		t.Errorf("Public(missing) = %v", got)
	}
}

func TestFromContext(t *testing.T) {
	if _, err := FromContext(context.Background()); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("empty context: want ErrMissingCredential, got %v", err)
	}
	ctx := NewContext(context.Background(), &Claims{UserID: 42})
	s, _, _ := newTestService(t)
	id, err := s.UserIDFromContext(ctx)
	if err != nil || id != 42 {
		t.Errorf("UserIDFromContext = %d, %v", id, err)
	}
}
