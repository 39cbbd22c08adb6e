package listing

import (
	"fmt"
	"strconv"
)

// CompactCount abbreviates counts of a thousand or more: 1500 → "1.5k",
// 12345 → "12.3k". Smaller values are printed as-is.
func CompactCount(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return strconv.Itoa(n)
}
