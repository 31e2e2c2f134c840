package buildcmd

import "testing"

func TestValidateContentCommandRejectsBlankDir(t *testing.T) {
	if err := (ValidateContentCommand{}).Validate(); err != nil {
		t.Fatalf("empty content dir should be allowed: %v", err)
	}
	if err := (ValidateContentCommand{ContentDir: "   "}).Validate(); err == nil {
		t.Fatal("expected error for blank content dir")
	}
}

func TestBuildSitemapCommandValidate(t *testing.T) {
	cases := []struct {
		name  string
		cmd   BuildSitemapCommand
		valid bool
	}{
		{"missing output", BuildSitemapCommand{BaseURL: "https://example.com"}, false},
		{"blank output", BuildSitemapCommand{Output: "  ", BaseURL: "https://example.com"}, false},
		{"missing base url", BuildSitemapCommand{Output: "public"}, false},
		{"invalid base url", BuildSitemapCommand{Output: "public", BaseURL: "not a url"}, false},
		{"valid", BuildSitemapCommand{Output: "public", BaseURL: "https://example.com"}, true},
	}
	for _, tc := range cases {
		err := tc.cmd.Validate()
		if tc.valid && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestExportSearchIndexCommandValidate(t *testing.T) {
	if err := (ExportSearchIndexCommand{}).Validate(); err == nil {
		t.Fatal("expected error when output missing")
	}
	if err := (ExportSearchIndexCommand{Output: "public", File: "nested/index.json"}).Validate(); err == nil {
		t.Fatal("expected error for nested file name")
	}
	if err := (ExportSearchIndexCommand{Output: "public", File: "index.txt"}).Validate(); err == nil {
		t.Fatal("expected error for non json file name")
	}
	if err := (ExportSearchIndexCommand{Output: "public", File: "search.json"}).Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
