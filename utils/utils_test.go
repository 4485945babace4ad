package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"1500":        1500,
		"1,500.50":    1500.5,
		"฿2,000":      2000,
		" 200 บาท ":   200,
		"0":           0,
		"1,000,000.1": 1000000.1,
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.InDelta(t, want, got, 0.0001, in)
	}

	for _, bad := range []string{"", "  ", "abc", "-5", "฿", "12..3"} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestIsThaiID(t *testing.T) {
	assert.True(t, IsThaiID("1234567890123"))
	assert.False(t, IsThaiID("123456789012"))
	assert.False(t, IsThaiID("12345678901234"))
	assert.False(t, IsThaiID("12345678901a3"))
	assert.False(t, IsThaiID("๑๒๓๔๕๖๗๘๙๐๑๒๓"))
}

func TestAccessCodes(t *testing.T) {
	code, err := GenerateAccessCode(8)
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z0-9]{8}$`, code)

	_, err = GenerateAccessCode(0)
	assert.Error(t, err)

	assert.Equal(t, "AB4D93KF", NormalizeAccessCode(" ab4d-93kf "))

	formatted, err := FormatAccessCode("ab4d93kf")
	require.NoError(t, err)
	assert.Equal(t, "AB4D-93KF", formatted)

	_, err = FormatAccessCode("abc")
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", tok)

	tok, ok = BearerToken("bearer   xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", tok)

	_, ok = BearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = BearerToken("Bearer ")
	assert.False(t, ok)
	_, ok = BearerToken("")
	assert.False(t, ok)
}
