package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// priceScale is the number of fractional digits stored for money columns.
const priceScale = 2

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.Atoi(s)
		return i
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToDecimal converts a loosely typed JSON value into a decimal.
// The boolean is false for nil, blank strings, non-numeric strings, NaN and infinities.
func ToDecimal(val any) (decimal.Decimal, bool) {
	switch v := val.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return v, true
	case json.Number:
		return parseDecimal(v.String())
	case string:
		return parseDecimal(v)
	case []byte:
		return parseDecimal(string(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	case float32:
		return ToDecimal(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case int32:
		return decimal.NewFromInt32(v), true
	case uint:
		return decimal.NewFromInt(int64(v)), true
	case uint64:
		return decimal.NewFromInt(int64(v)), true
	case uint32:
		return decimal.NewFromInt(int64(v)), true
	default:
		return decimal.Zero, false
	}
}

// ToPrice coerces a value into a price. Anything that is not a number becomes zero.
// Negative numbers are returned as is; callers validate the sign.
func ToPrice(val any) decimal.Decimal {
	d, ok := ToDecimal(val)
	if !ok {
		return decimal.Zero
	}
	return d.Round(priceScale)
}

// ToOfferPrice coerces a value into a nullable discount price.
// Missing, blank, non-numeric, zero and negative values yield NULL.
func ToOfferPrice(val any) decimal.NullDecimal {
	d, ok := ToDecimal(val)
	if !ok || !d.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d.Round(priceScale))
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
