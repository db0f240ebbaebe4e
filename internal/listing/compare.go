package listing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ByString builds a case-insensitive string comparator for a field
func ByString[T any](get func(T) string) CompareFunc[T] {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

// ByNumber builds a numeric comparator for a field
func ByNumber[T any](get func(T) float64) CompareFunc[T] {
	return func(a, b T) int {
		x, y := get(a), get(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
}

// ByInt builds an integer comparator for a field
func ByInt[T any](get func(T) int) CompareFunc[T] {
	return func(a, b T) int {
		return get(a) - get(b)
	}
}

// ByDecimal builds a comparator for monetary fields
func ByDecimal[T any](get func(T) decimal.Decimal) CompareFunc[T] {
	return func(a, b T) int {
		return get(a).Cmp(get(b))
	}
}

// ByTime builds a comparator for timestamp fields
func ByTime[T any](get func(T) time.Time) CompareFunc[T] {
	return func(a, b T) int {
		return get(a).Compare(get(b))
	}
}
