package downloads

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// TokenPayload is the self-contained credential gating a free resource.
// There is no token store and no revocation: a token is honored until its
// own expiry.
type TokenPayload struct {
	ResourceID string `json:"resourceId"`
	Email      string `json:"email"`
	ExpiresAt  int64  `json:"expiresAt"` // epoch milliseconds
}

// GenerateToken serializes the payload, signs it with HMAC-SHA256 and
// base64url-encodes "data|signature".
func GenerateToken(p TokenPayload, secret string) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(append(append(data, '|'), signToken(data, secret)...)), nil
}

// ValidateToken checks signature, resource id and expiry. The payload is
// JSON and may legally contain '|', so the split is on the last
// occurrence; the hex-encoded signature never contains one. Every decode
// or parse failure is a plain rejection, never an error to the caller.
func ValidateToken(token, expectedResourceID, secret string) (*TokenPayload, bool) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, false
	}

	idx := strings.LastIndex(string(raw), "|")
	if idx < 0 {
		return nil, false
	}
	data, sig := raw[:idx], raw[idx+1:]

	if !hmac.Equal(sig, signToken(data, secret)) {
		return nil, false
	}

	var p TokenPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	if p.ResourceID != expectedResourceID {
		return nil, false
	}
	if time.Now().UnixMilli() >= p.ExpiresAt {
		return nil, false
	}
	return &p, true
}

func signToken(data []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)
	return []byte(hex.EncodeToString(mac.Sum(nil)))
}
