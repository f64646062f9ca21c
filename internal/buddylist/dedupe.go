package buddylist

import (
	"blist_converter/internal/contacts"
	"blist_converter/platform/phone"
)

// numberTally counts what happened to a contact's numbers.
type numberTally struct {
	kept        int
	unparseable int
	invalid     int
	fixedLine   int
	duplicate   int
}

// cellNumbers classifies every raw number, drops duplicates and returns the
// canonical forms with preferred numbers first. Both halves keep encounter order.
//
// Duplicates are detected on the raw input string, not on the canonical form:
// "0151 23456789" and "+4915123456789" both survive.
func cellNumbers(numbers []contacts.RawNumber, region string) ([]string, numberTally) {
	var (
		tally     numberTally
		preferred []string
		plain     []string
	)
	seen := make(map[string]struct{}, len(numbers))

	for _, n := range numbers {
		number, discard := phone.Classify(n.Value, region)
		switch discard {
		case phone.Unparseable:
			tally.unparseable++
			continue
		case phone.Invalid:
			tally.invalid++
			continue
		case phone.FixedLine:
			tally.fixedLine++
			continue
		}

		if _, dup := seen[n.Value]; dup {
			tally.duplicate++
			continue
		}
		seen[n.Value] = struct{}{}
		tally.kept++

		if n.Preferred() {
			preferred = append(preferred, number.Canonical())
		} else {
			plain = append(plain, number.Canonical())
		}
	}

	return append(preferred, plain...), tally
}
