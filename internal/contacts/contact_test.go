package contacts

import "testing"

func TestParamsAddUppercasesName(t *testing.T) {
	p := Params{}
	p.Add("type", "cell")
	p.Add(" Type ", "pref")

	if len(p["TYPE"]) != 2 {
		t.Fatalf("expected both values under TYPE, got %v", p)
	}
}

func TestPreferred(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   bool
	}{
		{name: "nil params", params: nil, want: false},
		{name: "cell only", params: Params{"TYPE": {"cell"}}, want: false},
		{name: "pref", params: Params{"TYPE": {"cell", "pref"}}, want: true},
		{name: "uppercase pref", params: Params{"TYPE": {"PREF"}}, want: true},
		{name: "pref under other key", params: Params{"X-LABEL": {"pref"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := RawNumber{Value: "0151 23456789", Params: tt.params}
			if got := n.Preferred(); got != tt.want {
				t.Fatalf("expected preferred=%v, got %v", tt.want, got)
			}
		})
	}
}
