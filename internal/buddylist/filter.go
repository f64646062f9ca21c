package buddylist

import "blist_converter/internal/contacts"

// DropReason tells why a contact is absent from the output.
type DropReason int

const (
	// NotDropped means the contact qualifies.
	NotDropped DropReason = iota
	// DroppedEmptyName means the contact has no display name.
	DroppedEmptyName
	// DroppedExcluded means one of the contact's categories is excluded.
	DroppedExcluded
	// DroppedNoNumbers means no number survived classification and dedup.
	DroppedNoNumbers
)

func (r DropReason) String() string {
	switch r {
	case NotDropped:
		return "not_dropped"
	case DroppedEmptyName:
		return "empty_name"
	case DroppedExcluded:
		return "excluded_category"
	case DroppedNoNumbers:
		return "no_numbers"
	default:
		return "unknown"
	}
}

// qualify applies the name and category checks. Category matching is exact
// and case-sensitive.
func qualify(c contacts.RawContact, excluded map[string]struct{}) DropReason {
	if c.Name == "" {
		return DroppedEmptyName
	}
	for _, category := range c.Categories {
		if _, ok := excluded[category]; ok {
			return DroppedExcluded
		}
	}
	return NotDropped
}
