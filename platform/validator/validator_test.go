package validator

import (
	"strings"
	"testing"
)

type sample struct {
	Region   string `validate:"required,phoneregion"`
	FileType string `validate:"omitempty,oneof=vcf csv"`
}

func TestPhoneRegionRule(t *testing.T) {
	val := New()

	if err := val.Struct(sample{Region: "DE"}); err != nil {
		t.Fatalf("expected DE to validate, got %v", err)
	}
	if err := val.Var("AT", "phoneregion"); err != nil {
		t.Fatalf("expected AT to validate, got %v", err)
	}
	if err := val.Var("ZZ", "phoneregion"); err == nil {
		t.Fatal("expected ZZ to be rejected")
	}
}

func TestDescribeListsEveryFailure(t *testing.T) {
	val := New()

	err := val.Struct(sample{Region: "XX", FileType: "xls"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := Describe(err)
	if !strings.Contains(msg, `Region failed phoneregion (got "XX")`) {
		t.Fatalf("expected region failure in %q", msg)
	}
	if !strings.Contains(msg, `FileType failed oneof=vcf csv (got "xls")`) {
		t.Fatalf("expected file type failure in %q", msg)
	}
}
