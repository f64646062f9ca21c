package phone

import "testing"

func TestCanonicalGermanMobile(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "international with spaces", in: "+49 151 23456789", want: "4915123456789"},
		{name: "national with slash", in: "0151/23456789", want: "4915123456789"},
		{name: "international with dashes", in: "+49-151-2345-6789", want: "4915123456789"},
		{name: "double zero prefix", in: "0049 151 23456789", want: "4915123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			number, discard := Classify(tt.in, "DE")
			if discard != Kept {
				t.Fatalf("expected %q to be kept, got %s", tt.in, discard)
			}
			if got := number.Canonical(); got != tt.want {
				t.Fatalf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyDiscards(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Discard
	}{
		{name: "empty", in: "   ", want: Unparseable},
		{name: "letters", in: "call me maybe", want: Unparseable},
		{name: "short mobile", in: "+49 151 2345", want: Invalid},
		{name: "munich landline", in: "089123456", want: FixedLine},
		{name: "mobile", in: "0151 23456789", want: Kept},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := Classify(tt.in, "DE")
			if got != tt.want {
				t.Fatalf("Classify(%q) discard = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalIgnoresInputFormatting(t *testing.T) {
	a, da := Classify("+49 (151) 234 567 89", "DE")
	b, db := Classify("015123456789", "DE")
	if da != Kept || db != Kept {
		t.Fatalf("expected both numbers to be kept, got %s and %s", da, db)
	}
	if a.Canonical() != b.Canonical() {
		t.Fatalf("expected identical canonical forms, got %q and %q", a.Canonical(), b.Canonical())
	}
}

func TestCanonicalOfZeroNumberIsEmpty(t *testing.T) {
	if got := (Number{}).Canonical(); got != "" {
		t.Fatalf("expected empty canonical for zero Number, got %q", got)
	}
}

func TestIsSupportedRegion(t *testing.T) {
	if !IsSupportedRegion("DE") {
		t.Fatal("expected DE to be supported")
	}
	if IsSupportedRegion("XX") {
		t.Fatal("expected XX to be unsupported")
	}
	if IsSupportedRegion("de") {
		t.Fatal("expected lowercase region to be rejected")
	}
}
