package buddylist

import (
	"reflect"
	"testing"

	"blist_converter/internal/contacts"
)

func pref() contacts.Params {
	return contacts.Params{"TYPE": {"cell", "pref"}}
}

func TestCellNumbersPreferredFirst(t *testing.T) {
	numbers := []contacts.RawNumber{
		{Value: "0151 23456780"},
		{Value: "0151 23456781", Params: pref()},
		{Value: "0151 23456782"},
		{Value: "0151 23456783", Params: pref()},
	}

	got, tally := cellNumbers(numbers, "DE")

	want := []string{"4915123456781", "4915123456783", "4915123456780", "4915123456782"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if tally.kept != 4 {
		t.Fatalf("expected 4 kept numbers, got %d", tally.kept)
	}
}

func TestCellNumbersDiscardsUnusable(t *testing.T) {
	numbers := []contacts.RawNumber{
		{Value: "not a number"},
		{Value: "089123456"},
		{Value: "+49 151 2345"},
		{Value: "0151 23456780"},
	}

	got, tally := cellNumbers(numbers, "DE")

	if !reflect.DeepEqual(got, []string{"4915123456780"}) {
		t.Fatalf("expected only the mobile number, got %v", got)
	}
	if tally.unparseable != 1 || tally.fixedLine != 1 || tally.invalid != 1 {
		t.Fatalf("unexpected tally %+v", tally)
	}
}

func TestCellNumbersDedupesOnRawValue(t *testing.T) {
	numbers := []contacts.RawNumber{
		{Value: "0151 23456780"},
		{Value: "0151 23456780", Params: pref()},
		{Value: "+49 151 23456780"},
	}

	got, tally := cellNumbers(numbers, "DE")

	// The second entry repeats the raw string and is skipped even though it
	// is marked preferred. The third is formatted differently and survives.
	want := []string{"4915123456780", "4915123456780"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if tally.duplicate != 1 {
		t.Fatalf("expected 1 duplicate, got %d", tally.duplicate)
	}
}

func TestCellNumbersEmpty(t *testing.T) {
	got, _ := cellNumbers(nil, "DE")
	if len(got) != 0 {
		t.Fatalf("expected no numbers, got %v", got)
	}
}
