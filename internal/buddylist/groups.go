package buddylist

// Buddy is one messenger identity of a contact.
type Buddy struct {
	Number string
	Alias  string
}

// BuddySet holds all buddies of one contact, preferred numbers first.
type BuddySet struct {
	Buddies []Buddy
}

// Group is a named buddy list group.
type Group struct {
	Name     string
	Contacts []BuddySet
}

// Document is the structure handed to the renderer.
type Document struct {
	OwnNumber string
	Groups    []Group
}

// groupBuilder collects buddy sets into groups in first-seen order.
type groupBuilder struct {
	defaultGroup string
	groups       []Group
	index        map[string]int
}

func newGroupBuilder(defaultGroup string) *groupBuilder {
	return &groupBuilder{
		defaultGroup: defaultGroup,
		index:        make(map[string]int),
	}
}

// add files the contact's buddies under each of its categories. A contact
// without categories goes to the default group. numbers must not be empty.
func (b *groupBuilder) add(name string, numbers []string, categories []string) {
	buddies := make([]Buddy, 0, len(numbers))
	for _, number := range numbers {
		buddies = append(buddies, Buddy{Number: number, Alias: name})
	}

	if len(categories) == 0 {
		categories = []string{""}
	}

	for _, category := range categories {
		if category == "" {
			category = b.defaultGroup
		}
		i := b.group(category)
		entry := BuddySet{Buddies: append([]Buddy(nil), buddies...)}
		b.groups[i].Contacts = append(b.groups[i].Contacts, entry)
	}
}

func (b *groupBuilder) group(name string) int {
	if i, ok := b.index[name]; ok {
		return i
	}
	b.groups = append(b.groups, Group{Name: name})
	b.index[name] = len(b.groups) - 1
	return len(b.groups) - 1
}

func (b *groupBuilder) result() []Group {
	return b.groups
}
