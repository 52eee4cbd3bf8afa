package domain

import (
	"math"
	"strconv"
	"strings"
)

type RatingKind int

const (
	RatingNone RatingKind = iota
	RatingNumeric
	RatingLabel
)

// Rating is a star rating as found in the sheets: a count of stars, or a
// category label such as "מלון דירות" in place of a count.
type Rating struct {
	Kind  RatingKind
	Stars int
	Label string
}

// ParseRating resolves the raw stored value. Only whole-number strings count
// as numeric; anything else non-empty is kept as a label.
func ParseRating(v any) Rating {
	switch x := v.(type) {
	case float64:
		return Rating{Kind: RatingNumeric, Stars: int(math.Floor(x))}
	case int:
		return Rating{Kind: RatingNumeric, Stars: x}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return Rating{}
		}
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return Rating{Kind: RatingNumeric, Stars: n}
		}
		return Rating{Kind: RatingLabel, Label: s}
	}
	return Rating{}
}

// AtLeast reports whether the rating satisfies a minimum star threshold.
// Labels and missing ratings never do.
func (r Rating) AtLeast(min int) bool {
	return r.Kind == RatingNumeric && r.Stars >= min
}
