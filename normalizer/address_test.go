// backend/normalizer/address_test.go
package normalizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			"500 Robson Street, Vancouver, British Columbia V6B 6A5, Canada",
			"500 Robson Street, Vancouver, BC",
		},
		{
			"123 Main Street BC",
			"123 Main Street, Vancouver, BC",
		},
		{
			"3388 Main Street, BC",
			"3388 Main Street, Vancouver, BC",
		},
		{
			"1825 Comox St, Vancouver, BC V6G 1P9",
			"1825 Comox St, Vancouver, BC",
		},
		{
			"2095 West 4th Avenue, Vancouver, BC",
			"2095 West 4th Avenue, Vancouver, BC",
		},
		{
			"688 Dunsmuir St, Vancouver BC, Canada",
			"688 Dunsmuir St, Vancouver, BC",
		},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizeAddress(tc.in), "input: %q", tc.in)
	}
}

func TestNormalizeAddressIdempotent(t *testing.T) {
	inputs := []string{
		"500 Robson Street, Vancouver, British Columbia V6B 6A5, Canada",
		"123 Main Street BC",
		"1825 Comox St, Vancouver, BC V6G 1P9",
		"8580 Cambie Rd Unit 1100, Richmond, BC",
		"no province at all",
		"",
	}

	for _, in := range inputs {
		once := NormalizeAddress(in)
		require.Equal(t, once, NormalizeAddress(once), "input: %q", in)
	}
}
