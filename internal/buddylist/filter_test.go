package buddylist

import (
	"testing"

	"blist_converter/internal/contacts"
)

func TestQualify(t *testing.T) {
	excluded := map[string]struct{}{"Archiv": {}}

	tests := []struct {
		name    string
		contact contacts.RawContact
		want    DropReason
	}{
		{name: "empty name", contact: contacts.RawContact{Name: ""}, want: DroppedEmptyName},
		{name: "excluded category", contact: contacts.RawContact{Name: "Old", Categories: []string{"Work", "Archiv"}}, want: DroppedExcluded},
		{name: "exclusion is case sensitive", contact: contacts.RawContact{Name: "Carl", Categories: []string{"archiv"}}, want: NotDropped},
		{name: "no categories", contact: contacts.RawContact{Name: "Dana"}, want: NotDropped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := qualify(tt.contact, excluded); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
