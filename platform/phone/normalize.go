// Package phone parses, classifies and canonicalizes phone numbers.
// This is part of the platform layer.
package phone

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = "DE"

// Discard explains why a raw number did not survive classification.
type Discard int

const (
	// Kept means the number was not discarded.
	Kept Discard = iota
	// Unparseable means the input could not be parsed as a phone number.
	Unparseable
	// Invalid means the number parsed but is not assignable for its region.
	Invalid
	// FixedLine means the number is a landline.
	FixedLine
)

func (d Discard) String() string {
	switch d {
	case Kept:
		return "kept"
	case Unparseable:
		return "unparseable"
	case Invalid:
		return "invalid"
	case FixedLine:
		return "fixed_line"
	default:
		return "unknown"
	}
}

// Number is a parsed, valid, non fixed-line phone number.
type Number struct {
	parsed *phonenumbers.PhoneNumber
}

// Classify parses raw against region and reports whether the number is usable
// as a messenger identity. The second return value is Kept on success.
func Classify(raw, region string) (Number, Discard) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Number{}, Unparseable
	}

	parsed, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return Number{}, Unparseable
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return Number{}, Invalid
	}

	if phonenumbers.GetNumberType(parsed) == phonenumbers.FIXED_LINE {
		return Number{}, FixedLine
	}

	return Number{parsed: parsed}, Kept
}

// Canonical returns the country code followed by the national significant
// number, digits only (e.g. 4915123456789).
func (n Number) Canonical() string {
	if n.parsed == nil {
		return ""
	}
	return strconv.Itoa(int(n.parsed.GetCountryCode())) + phonenumbers.GetNationalSignificantNumber(n.parsed)
}

// IsSupportedRegion reports whether region is a two-letter region code known
// to the phone metadata.
func IsSupportedRegion(region string) bool {
	return phonenumbers.GetSupportedRegions()[region]
}
