// Package phone canonicalizes recipient phone numbers into the 11-digit local form
// ("01XXXXXXXXX") courier APIs accept.
package phone

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/BearBump/DispatchBox/internal/errs"
)

// Policy decides what happens to a number that cannot be normalized.
type Policy string

const (
	// PolicyStrict rejects the number with a validation error.
	PolicyStrict Policy = "strict"
	// PolicyPlaceholder ships a fixed placeholder number instead and logs a warning.
	PolicyPlaceholder Policy = "placeholder"
)

const DefaultPlaceholder = "01700000000"

var localPattern = regexp.MustCompile(`^01[3-9][0-9]{8}$`)

type Normalizer struct {
	policy      Policy
	placeholder string
}

func New(policy Policy, placeholder string) *Normalizer {
	if policy != PolicyPlaceholder {
		policy = PolicyStrict
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Normalizer{policy: policy, placeholder: placeholder}
}

func (n *Normalizer) Policy() Policy { return n.policy }

func (n *Normalizer) Normalize(raw string) (string, error) {
	if p, ok := canonical(raw); ok {
		return p, nil
	}
	if n.policy == PolicyPlaceholder {
		slog.Warn("phone number not normalizable, using placeholder", "phone", raw, "placeholder", n.placeholder)
		return n.placeholder, nil
	}
	return "", errs.Validationf("normalize phone", "phone %q is not a valid local mobile number", raw)
}

func canonical(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "880"):
		digits = strings.TrimPrefix(digits, "880")
		if !strings.HasPrefix(digits, "0") {
			digits = "0" + digits
		}
	case len(digits) == 10 && strings.HasPrefix(digits, "1"):
		digits = "0" + digits
	}

	if !localPattern.MatchString(digits) {
		return "", false
	}
	return digits, true
}
