package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailLooksValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"alice@uni.edu", true},
		{"a@b.c", true},
		{"weird.but@accepted", false},
		{"alice@uniedu", false},
		{"alice.uni.edu", false},
		{"", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, EmailLooksValid(tc.email), "email %q", tc.email)
	}
}

func TestRequired(t *testing.T) {
	require.True(t, Required("x"))
	require.True(t, Required("  x  "))
	require.False(t, Required(""))
	require.False(t, Required("   "))
	require.False(t, Required("\t\n"))
}
