package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const addr = "0x1111111111111111111111111111111111111111"

func TestIsValid(t *testing.T) {
	valid := []string{
		addr,
		"0xAbCdEf0123456789aBcDeF0123456789abcdef01",
		"0x" + strings.Repeat("F", 40),
	}
	for _, s := range valid {
		assert.True(t, IsValid(s), s)
	}

	invalid := []string{
		"",
		"not-a-wallet",
		"0x",
		"0X1111111111111111111111111111111111111111",
		"1111111111111111111111111111111111111111",
		"0x111111111111111111111111111111111111111",
		"0x11111111111111111111111111111111111111111",
		"0x111111111111111111111111111111111111111g",
		" " + addr,
		addr + " ",
		addr + "\n",
	}
	for _, s := range invalid {
		assert.False(t, IsValid(s), "%q", s)
	}
}

func TestFilter(t *testing.T) {
	other := "0x2222222222222222222222222222222222222222"
	in := []any{addr, "not-a-wallet", 42.0, nil, map[string]any{"a": 1}, other, true}

	assert.Equal(t, []string{addr, other}, Filter(in))
	assert.Empty(t, Filter(nil))
	assert.NotNil(t, Filter(nil))
}
