package puzzle

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Signature computes the content key for a sequence of square
// values: the uppercase hex SHA-256 of the comma-joined digits.
// Storage layers use it to recognize a grid no matter who submits
// it or when.
func Signature(values []int) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = fmt.Sprint(v)
	}
	sum := sha256.Sum256([]byte(strings.Join(strs, ",")))
	return strings.ToUpper(fmt.Sprintf("%x", sum))
}
