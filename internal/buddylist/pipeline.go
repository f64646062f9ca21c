// Package buddylist turns raw address book records into grouped buddy sets.
//
// The pipeline never fails: unusable numbers and contacts are dropped and
// counted in Stats instead of being reported as errors.
package buddylist

import "blist_converter/internal/contacts"

// Stats describes what a conversion kept and what it absorbed.
type Stats struct {
	ContactsRead       int
	ContactsAccepted   int
	DroppedEmptyName   int
	DroppedExcluded    int
	DroppedNoNumbers   int
	NumbersKept        int
	NumbersUnparseable int
	NumbersInvalid     int
	NumbersFixedLine   int
	NumbersDuplicate   int
	Groups             int
}

// Dropped returns the number of contacts absent from the output.
func (s Stats) Dropped() int {
	return s.DroppedEmptyName + s.DroppedExcluded + s.DroppedNoNumbers
}

func (s *Stats) drop(reason DropReason) {
	switch reason {
	case DroppedEmptyName:
		s.DroppedEmptyName++
	case DroppedExcluded:
		s.DroppedExcluded++
	case DroppedNoNumbers:
		s.DroppedNoNumbers++
	}
}

func (s *Stats) addNumbers(t numberTally) {
	s.NumbersKept += t.kept
	s.NumbersUnparseable += t.unparseable
	s.NumbersInvalid += t.invalid
	s.NumbersFixedLine += t.fixedLine
	s.NumbersDuplicate += t.duplicate
}

// Pipeline converts contact records using a fixed set of options.
type Pipeline struct {
	opts     Options
	excluded map[string]struct{}
}

// NewPipeline creates a pipeline. Empty option fields fall back to defaults,
// except ExcludeCategories where empty means nothing is excluded.
func NewPipeline(opts Options) *Pipeline {
	opts = opts.withDefaults()
	opts.ExcludeCategories = append([]string(nil), opts.ExcludeCategories...)
	return &Pipeline{opts: opts, excluded: opts.exclusionSet()}
}

// Options returns a copy of the pipeline's options.
func (p *Pipeline) Options() Options {
	opts := p.opts
	opts.ExcludeCategories = append([]string(nil), p.opts.ExcludeCategories...)
	return opts
}

// Run converts records in order. Running the same input twice yields an
// identical Document.
func (p *Pipeline) Run(records []contacts.RawContact) (Document, Stats) {
	var stats Stats
	builder := newGroupBuilder(p.opts.DefaultGroup)

	for _, record := range records {
		stats.ContactsRead++

		if reason := qualify(record, p.excluded); reason != NotDropped {
			stats.drop(reason)
			continue
		}

		numbers, tally := cellNumbers(record.Numbers, p.opts.Region)
		stats.addNumbers(tally)
		if len(numbers) == 0 {
			stats.drop(DroppedNoNumbers)
			continue
		}

		builder.add(record.Name, numbers, record.Categories)
		stats.ContactsAccepted++
	}

	groups := builder.result()
	stats.Groups = len(groups)

	return Document{OwnNumber: p.opts.OwnNumber, Groups: groups}, stats
}

// Convert is a shorthand for NewPipeline(opts).Run(records).
func Convert(records []contacts.RawContact, opts Options) (Document, Stats) {
	return NewPipeline(opts).Run(records)
}
