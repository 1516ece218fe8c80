package rgb332

import (
	"crypto/sha1"
	"fmt"
)

func sha1Sum(b []byte) string {
	h := sha1.Sum(b)
	return fmt.Sprintf("%.*X", sha1.Size<<1, h[:])
}
