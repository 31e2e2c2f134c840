package markdown

import (
	"reflect"
	"testing"
)

func TestNormalizeFlattensGroups(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte(`---
media:
  thumbnail: x.png
  video: y.mp4
title: T
---
`))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	got := Normalize(fm).Map()
	want := map[string]any{
		"thumbnail": "x.png",
		"video":     "y.mp4",
		"title":     "T",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeLaterGroupsWin(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte(`---
basic_info:
  title: First
display:
  title: Second
---
`))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	value, _ := Normalize(fm).Get("title")
	if value != "Second" {
		t.Fatalf("expected later group to win, got %v", value)
	}
}

func TestNormalizeKeepsScalarGroupKey(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte(`---
download: /files/model.xlsx
custom_field: kept
---
`))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	got := Normalize(fm).Map()
	if got["download"] != "/files/model.xlsx" {
		t.Fatalf("expected scalar download to pass through, got %v", got["download"])
	}
	if got["custom_field"] != "kept" {
		t.Fatalf("expected unknown key to pass through, got %v", got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"---\ntitle: Flat\ntools: [Excel]\norder: 1\n---\n",
		groupedProject,
		"---\n---\n",
	}
	for _, input := range inputs {
		fm, _, err := ParseFrontMatter([]byte(input))
		if err != nil {
			t.Fatalf("ParseFrontMatter: %v", err)
		}
		once := Normalize(fm)
		twice := Normalize(once)
		if !reflect.DeepEqual(once.Keys(), twice.Keys()) || !reflect.DeepEqual(once.Map(), twice.Map()) {
			t.Fatalf("normalize not idempotent for %q: %v vs %v", input, once.Map(), twice.Map())
		}
	}
}
