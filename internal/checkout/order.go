package checkout

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	orderNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberLength  = 7
)

// newOrderNumber builds an identifier like "VL-7G2KQ9A". Uniqueness is not
// enforced anywhere; the order is never persisted.
func newOrderNumber(prefix string) (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(orderNumberCharset)))
	for i := 0; i < orderNumberLength; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("reading random bytes: %w", err)
		}
		sb.WriteByte(orderNumberCharset[idx.Int64()])
	}
	return fmt.Sprintf("%s-%s", prefix, sb.String()), nil
}
