package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// SecurityValidator validates incoming interaction requests: Discord signs
// every webhook with the application's Ed25519 key, and the endpoint must
// reject anything unsigned with a 401.
type SecurityValidator struct {
	publicKey   ed25519.PublicKey
	rateLimiter *rateLimiter
}

// NewSecurityValidator parses the hex-encoded public key from the Discord
// application settings page.
func NewSecurityValidator(publicKeyHex string, rateLimitPerMin int) (*SecurityValidator, error) {
	if publicKeyHex == "" {
		return nil, fmt.Errorf("discord public key not configured")
	}
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid public key hex encoding: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid public key length %d, want %d", len(key), ed25519.PublicKeySize)
	}
	return &SecurityValidator{
		publicKey:   ed25519.PublicKey(key),
		rateLimiter: newRateLimiter(rateLimitPerMin),
	}, nil
}

// ValidateSignature verifies the Ed25519 signature over timestamp+body,
// per Discord's interaction security scheme.
func (v *SecurityValidator) ValidateSignature(payload []byte, signatureHex, timestamp string) error {
	if signatureHex == "" || timestamp == "" {
		return fmt.Errorf("missing signature headers")
	}

	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		return fmt.Errorf("invalid signature hex encoding: %w", err)
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("invalid signature length %d, want %d", len(sig), ed25519.SignatureSize)
	}

	signed := make([]byte, 0, len(timestamp)+len(payload))
	signed = append(signed, []byte(timestamp)...)
	signed = append(signed, payload...)

	if !ed25519.Verify(v.publicKey, signed, sig) {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

// CheckRateLimit enforces per-source rate limiting.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// rateLimiter is a per-source limiter with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
