package validation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateAcceptsYAMLShapedPayload(t *testing.T) {
	payload := map[string]any{
		"title":    "Sales",
		"tools":    []any{"Power BI", "DAX"},
		"order":    2,
		"status":   "published",
		"featured": true,
		"date":     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		"extra":    map[string]any{"kept": true},
	}
	if err := Validate(SchemaProject, payload); err != nil {
		t.Fatalf("expected payload to validate, got %v", err)
	}
}

func TestValidateReportsIssues(t *testing.T) {
	payload := map[string]any{
		"tools":  3,
		"status": "archived",
	}
	err := Validate(SchemaProject, payload)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}

	issues := Issues(err)
	if len(issues) < 2 {
		t.Fatalf("expected at least two issues, got %v", issues)
	}
	var sawTools, sawStatus bool
	for _, issue := range issues {
		if strings.Contains(issue.Location, "tools") {
			sawTools = true
		}
		if strings.Contains(issue.Location, "status") {
			sawStatus = true
		}
	}
	if !sawTools || !sawStatus {
		t.Fatalf("expected tools and status issues, got %v", issues)
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("nope", map[string]any{})
	if !errors.Is(err, ErrSchemaUnknown) {
		t.Fatalf("expected ErrSchemaUnknown, got %v", err)
	}
}

func TestValidateSettingsSchemas(t *testing.T) {
	cases := []struct {
		schema  string
		payload any
		valid   bool
	}{
		{SchemaSite, map[string]any{"site": map[string]any{"title": "Lab"}}, true},
		{SchemaSite, map[string]any{"contact": "nope"}, false},
		{SchemaHero, map[string]any{"stats": []any{map[string]any{"value": "5+", "label": "Years"}}}, true},
		{SchemaHero, map[string]any{"stats": []any{map[string]any{"value": 5}}}, false},
		{SchemaNavigation, map[string]any{"links": []any{map[string]any{"label": "Home", "href": "/", "order": 1}}}, true},
		{SchemaNavigation, map[string]any{"links": "home"}, false},
		{SchemaSkills, map[string]any{"primary": []any{map[string]any{"name": "DAX", "context": "Modelling"}}}, true},
		{SchemaSkills, map[string]any{"familiar": []any{map[string]any{"context": "no name"}}}, false},
		{SchemaPage, map[string]any{"title": "About"}, true},
		{SchemaArticle, map[string]any{"tags": []any{"sql", 1}}, false},
	}
	for _, tc := range cases {
		err := Validate(tc.schema, tc.payload)
		if tc.valid && err != nil {
			t.Fatalf("%s: expected valid payload, got %v", tc.schema, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("%s: expected invalid payload %v", tc.schema, tc.payload)
		}
	}
}
