package phone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BearBump/DispatchBox/internal/errs"
)

func TestNormalize_Canonicalizes(t *testing.T) {
	n := New(PolicyStrict, "")
	cases := map[string]string{
		"01712345678":      "01712345678",
		"+8801712345678":   "01712345678",
		"8801712345678":    "01712345678",
		"+880 1712-345678": "01712345678",
		"(+880)1912345678": "01912345678",
		"1812345678":       "01812345678",
		" 01312345678 ":    "01312345678",
	}
	for in, want := range cases {
		got, err := n.Normalize(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestNormalize_StrictRejects(t *testing.T) {
	n := New(PolicyStrict, "")
	for _, in := range []string{"", "12345", "01212345678", "0171234567", "+15551234567"} {
		_, err := n.Normalize(in)
		require.ErrorIs(t, err, errs.Validation, in)
	}
}

func TestNormalize_PlaceholderPolicy(t *testing.T) {
	n := New(PolicyPlaceholder, "01999999999")
	got, err := n.Normalize("not a phone")
	require.NoError(t, err)
	require.Equal(t, "01999999999", got)

	got, err = n.Normalize("+8801712345678")
	require.NoError(t, err)
	require.Equal(t, "01712345678", got)
}

func TestNew_UnknownPolicyIsStrict(t *testing.T) {
	n := New("lenient", "")
	require.Equal(t, PolicyStrict, n.Policy())
	require.Equal(t, DefaultPlaceholder, New(PolicyPlaceholder, "").placeholder)
}
