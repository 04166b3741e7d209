package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jquinonez7/DogTracker/internal/auth"
	"github.com/jquinonez7/DogTracker/internal/domain"
)

const testKey = "token-test-secret-at-least-32-chars!!"

func TestIssue_Verify_RoundTrip(t *testing.T) {
	issuer := auth.NewIssuer([]byte(testKey), time.Hour)
	verifier := auth.NewVerifier([]byte(testKey))

	signed, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := verifier.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "a@x.com" {
		t.Errorf("subject = %q, want %q", subject, "a@x.com")
	}
}

func TestIssue_EmptySubject_Errors(t *testing.T) {
	issuer := auth.NewIssuer([]byte(testKey), time.Hour)

	if _, err := issuer.Issue(""); err == nil {
		t.Error("expected error for empty subject")
	}
}

func TestVerify_ExpiredToken_ReturnsErrTokenExpired(t *testing.T) {
	issuer := auth.NewIssuer([]byte(testKey), -time.Minute)
	verifier := auth.NewVerifier([]byte(testKey))

	signed, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Verify(signed)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("want ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongKey_ReturnsErrTokenInvalid(t *testing.T) {
	issuer := auth.NewIssuer([]byte("a-different-signing-key-32-chars!"), time.Hour)
	verifier := auth.NewVerifier([]byte(testKey))

	signed, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Verify(signed)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("want ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_MalformedToken_ReturnsErrTokenInvalid(t *testing.T) {
	verifier := auth.NewVerifier([]byte(testKey))

	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := verifier.Verify(raw); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("Verify(%q): want ErrTokenInvalid, got %v", raw, err)
		}
	}
}

func TestVerify_TruncatedToken_ReturnsErrTokenInvalid(t *testing.T) {
	issuer := auth.NewIssuer([]byte(testKey), time.Hour)
	verifier := auth.NewVerifier([]byte(testKey))

	signed, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = verifier.Verify(signed[:len(signed)-1])
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("want ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_MissingSubject_ReturnsErrTokenInvalid(t *testing.T) {
	verifier := auth.NewVerifier([]byte(testKey))

	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("want ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_NonHMACMethod_ReturnsErrTokenInvalid(t *testing.T) {
	verifier := auth.NewVerifier([]byte(testKey))

	// alg=none tokens must never pass.
	claims := jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("want ErrTokenInvalid, got %v", err)
	}
}
