package buddylist

import "testing"

func TestGroupBuilderDefaultGroup(t *testing.T) {
	b := newGroupBuilder("others")
	b.add("Dana", []string{"4915123456780"}, nil)

	groups := b.result()
	if len(groups) != 1 || groups[0].Name != "others" {
		t.Fatalf("expected single others group, got %+v", groups)
	}
	if len(groups[0].Contacts) != 1 || groups[0].Contacts[0].Buddies[0].Alias != "Dana" {
		t.Fatalf("unexpected contacts %+v", groups[0].Contacts)
	}
}

func TestGroupBuilderEmptyCategoryResolvesToDefault(t *testing.T) {
	b := newGroupBuilder("others")
	b.add("Eve", []string{"4915123456780"}, []string{"", "Work"})

	groups := b.result()
	if len(groups) != 2 || groups[0].Name != "others" || groups[1].Name != "Work" {
		t.Fatalf("expected [others Work], got %+v", groups)
	}
}

func TestGroupBuilderCopiesBuddySetPerGroup(t *testing.T) {
	b := newGroupBuilder("others")
	b.add("Alice", []string{"4915123456780"}, []string{"A", "B"})

	groups := b.result()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	groups[0].Contacts[0].Buddies[0].Alias = "changed"
	if groups[1].Contacts[0].Buddies[0].Alias != "Alice" {
		t.Fatal("expected each group to hold its own copy of the buddy set")
	}
}

func TestGroupBuilderFirstSeenOrder(t *testing.T) {
	b := newGroupBuilder("others")
	b.add("A", []string{"1"}, []string{"Work"})
	b.add("B", []string{"2"}, []string{"Home"})
	b.add("C", []string{"3"}, []string{"Work"})

	groups := b.result()
	if len(groups) != 2 || groups[0].Name != "Work" || groups[1].Name != "Home" {
		t.Fatalf("expected [Work Home], got %+v", groups)
	}
	if len(groups[0].Contacts) != 2 || groups[0].Contacts[1].Buddies[0].Alias != "C" {
		t.Fatalf("expected insertion order within Work, got %+v", groups[0].Contacts)
	}
}
