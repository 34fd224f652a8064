// Package wallet validates and normalises user supplied EVM wallet addresses.
package wallet

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsValid accepts exactly "0x" followed by 40 hex digits.
// common.IsHexAddress alone would also accept "0X" and unprefixed input.
func IsValid(s string) bool {
	return len(s) == 2+2*common.AddressLength && strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// Filter keeps the valid string entries of a decoded JSON array, in order.
// Anything that is not a string is dropped.
func Filter(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if ok && IsValid(s) {
			out = append(out, s)
		}
	}
	return out
}
