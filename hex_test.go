package lwes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlassian/lwes"
)

func TestParseHex(t *testing.T) {
	t.Parallel()
	tests := map[string]uint64{
		"0":                  0,
		"ff":                 0xff,
		"FF":                 0xff,
		"deadBEEF":           0xdeadbeef,
		"7fffffffffffffff":   0x7fffffffffffffff,
		"ffffffffffffffff":   0xffffffffffffffff,
		"0xff":               0xff,
		"0XDEADBEEF":         0xdeadbeef,
		"0xffffffffffffffff": 0xffffffffffffffff,
	}
	for input, expected := range tests {
		input := input
		expected := expected
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			u, err := lwes.ParseHexUint64(input)
			require.NoError(t, err)
			assert.Equal(t, expected, u)

			i, err := lwes.ParseHexInt64(input)
			require.NoError(t, err)
			assert.Equal(t, int64(expected), i)
		})
	}
}

func TestParseHexAllOnes(t *testing.T) {
	t.Parallel()
	i, err := lwes.ParseHexInt64("ffffffffffffffff")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i)
}

func TestInvalidParseHex(t *testing.T) {
	t.Parallel()
	failing := []string{
		"",
		"xyz",
		"10000000000000000",
		"ff ",
		" ff",
		"0x",
		"0X",
		"0x0x1",
		"x1",
		"-1",
		"+1",
		"12g",
		"f_f",
	}
	for _, input := range failing {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := lwes.ParseHexUint64(input)
			assert.True(t, errors.Is(err, lwes.ErrNumericParse))
			_, err = lwes.ParseHexInt64(input)
			assert.True(t, errors.Is(err, lwes.ErrNumericParse))
		})
	}
}

func TestHexSetters(t *testing.T) {
	t.Parallel()
	e := lwes.NewEvent(nil)

	_, err := e.SetUint64FromHex("u", "ffffffffffffffff")
	require.NoError(t, err)
	_, err = e.SetInt64FromHex("i", "ffffffffffffffff")
	require.NoError(t, err)

	u, err := e.GetUint64("u")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xffffffffffffffff), u)
	i, err := e.GetInt64("i")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i)

	_, err = e.SetUint64FromHex("bad", "xyz")
	assert.True(t, errors.Is(err, lwes.ErrNumericParse))
	_, err = e.SetInt64FromHex("bad", "10000000000000000")
	assert.True(t, errors.Is(err, lwes.ErrNumericParse))
	_, err = e.SetUint64FromHex("prefixed", "0x10")
	require.NoError(t, err)
	p, err := e.GetUint64("prefixed")
	require.NoError(t, err)
	assert.Equal(t, uint64(16), p)
	_, err = e.SetUint64FromHex("", "ff")
	assert.Equal(t, lwes.ErrInvalidArgument, err)
	assert.Equal(t, uint16(3), e.NumAttributes())
}

func TestIPAddrFromString(t *testing.T) {
	t.Parallel()
	e := lwes.NewEvent(nil)
	_, err := e.SetIPAddrFromString("ip", "172.16.254.1")
	require.NoError(t, err)

	ip, err := e.GetIPAddr("ip")
	require.NoError(t, err)
	assert.Equal(t, "172.16.254.1", ip.String())

	for _, bad := range []string{"", "300.1.1.1", "1.2.3", "localhost", "::1"} {
		_, err = e.SetIPAddrFromString("bad", bad)
		assert.True(t, errors.Is(err, lwes.ErrNumericParse), bad)
	}
	assert.Equal(t, uint16(1), e.NumAttributes())
}
