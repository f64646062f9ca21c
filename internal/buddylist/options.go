package buddylist

import "blist_converter/platform/phone"

// Defaults applied when an Options field is left empty.
const (
	DefaultOwnNumber = "0"
	DefaultGroupName = "others"
	DefaultExclude   = "Archiv"
)

// Options is the immutable configuration of one conversion run.
type Options struct {
	OwnNumber         string
	ExcludeCategories []string
	DefaultGroup      string
	Region            string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		OwnNumber:         DefaultOwnNumber,
		ExcludeCategories: []string{DefaultExclude},
		DefaultGroup:      DefaultGroupName,
		Region:            phone.DefaultRegion,
	}
}

func (o Options) withDefaults() Options {
	if o.OwnNumber == "" {
		o.OwnNumber = DefaultOwnNumber
	}
	if o.DefaultGroup == "" {
		o.DefaultGroup = DefaultGroupName
	}
	if o.Region == "" {
		o.Region = phone.DefaultRegion
	}
	return o
}

func (o Options) exclusionSet() map[string]struct{} {
	set := make(map[string]struct{}, len(o.ExcludeCategories))
	for _, c := range o.ExcludeCategories {
		set[c] = struct{}{}
	}
	return set
}
