package domain

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input  string
		want   Status
		wantOK bool
	}{
		{"published", StatusPublished, true},
		{"Published", StatusDraft, false},
		{" published", StatusDraft, false},
		{"draft", StatusDraft, true},
		{"archived", StatusDraft, false},
		{"", StatusDraft, false},
	}
	for _, tc := range cases {
		got, ok := ParseStatus(tc.input)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseStatus(%q) = %q,%v want %q,%v", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if got, ok := ParseCategory("Tableau"); !ok || got != CategoryTableau {
		t.Fatalf("expected tableau, got %q (%v)", got, ok)
	}
	if _, ok := ParseCategory("looker"); ok {
		t.Fatalf("expected looker to be rejected")
	}
	if len(Categories()) != 3 {
		t.Fatalf("expected exactly three categories, got %d", len(Categories()))
	}
}
