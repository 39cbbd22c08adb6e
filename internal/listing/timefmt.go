package listing

import (
	"strconv"
	"time"
)

// rawPrefixLen is how much of an unparseable timestamp is shown (the date part).
const rawPrefixLen = 10

// RelativeTime renders the time elapsed between iso and now in its single
// largest unit: "45s", "12m", "3h", "9d". Division floors. An empty input gives
// "", an unparseable one its first ten characters. Elapsed time is clamped at
// zero, so timestamps after now render as "0s" rather than a negative count.
func RelativeTime(iso string, now time.Time) string {
	if iso == "" {
		return ""
	}

	t, err := parseTimestamp(iso)
	if err != nil {
		runes := []rune(iso)
		if len(runes) > rawPrefixLen {
			runes = runes[:rawPrefixLen]
		}
		return string(runes)
	}

	secs := int64(now.Sub(t) / time.Second)
	switch {
	case secs < 0:
		return "0s"
	case secs < 60:
		return strconv.FormatInt(secs, 10) + "s"
	case secs < 3600:
		return strconv.FormatInt(secs/60, 10) + "m"
	case secs < 86400:
		return strconv.FormatInt(secs/3600, 10) + "h"
	default:
		return strconv.FormatInt(secs/86400, 10) + "d"
	}
}

// parseTimestamp accepts RFC 3339 with a Z or numeric offset, with or
// without fractional seconds.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
