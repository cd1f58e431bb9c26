package pass

import (
	"strings"

	"github.com/google/uuid"
)

// NewCode generates a candidate pass code: the canonical prefix plus eight
// uppercase hex characters. Global uniqueness is owned by the unique index on
// gym_passes.code, not by this function; issuance retries on conflict.
func NewCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return CodePrefix + strings.ToUpper(raw[:8])
}

// NormalizeCode canonicalizes a presented code: trims whitespace, uppercases,
// and prepends the prefix when missing. The comparison with an existing
// prefix is case-insensitive.
func NormalizeCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", ErrEmptyCode
	}
	if !strings.HasPrefix(code, CodePrefix) {
		code = CodePrefix + code
	}
	return code, nil
}
