package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema names for the documents the content layer reads.
const (
	SchemaProject    = "project"
	SchemaArticle    = "article"
	SchemaPage       = "page"
	SchemaSite       = "site"
	SchemaHero       = "hero"
	SchemaNavigation = "navigation"
	SchemaSkills     = "skills"
)

var (
	ErrSchemaUnknown    = errors.New("schema unknown")
	ErrSchemaValidation = errors.New("schema validation failed")
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (i ValidationIssue) String() string {
	location := strings.TrimSpace(i.Location)
	if location == "" {
		location = "#"
	} else if !strings.HasPrefix(location, "#") {
		location = "#" + location
	}
	if i.Message == "" {
		return location
	}
	return fmt.Sprintf("%s: %s", location, i.Message)
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Schema string
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// Validate checks payload against the named embedded schema. The payload is
// round-tripped through encoding/json first so YAML-decoded values (ints,
// time.Time) are presented to the validator as JSON types.
func Validate(name string, payload any) error {
	compiled, err := registry.schema(name)
	if err != nil {
		return err
	}

	normalized, err := toJSONValue(payload)
	if err != nil {
		return &PayloadValidationError{
			Schema: name,
			Issues: []ValidationIssue{{Message: err.Error()}},
			Cause:  err,
		}
	}

	if err := compiled.Validate(normalized); err != nil {
		return &PayloadValidationError{
			Schema: name,
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func toJSONValue(payload any) (any, error) {
	if payload == nil {
		return map[string]any{}, nil
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	var out any
	if err := decoder.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}

type schemaRegistry struct {
	once     sync.Once
	compiled map[string]*jsonschema.Schema
	err      error
}

var registry = &schemaRegistry{}

func (r *schemaRegistry) schema(name string) (*jsonschema.Schema, error) {
	r.once.Do(r.compileAll)
	if r.err != nil {
		return nil, r.err
	}
	compiled, ok := r.compiled[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaUnknown, name)
	}
	return compiled, nil
}

func (r *schemaRegistry) compileAll() {
	entries, err := schemaFiles.ReadDir("schemas")
	if err != nil {
		r.err = fmt.Errorf("read embedded schemas: %w", err)
		return
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		file := path.Join("schemas", entry.Name())
		data, err := schemaFiles.ReadFile(file)
		if err != nil {
			r.err = fmt.Errorf("read schema %s: %w", file, err)
			return
		}
		if err := compiler.AddResource(entry.Name(), bytes.NewReader(data)); err != nil {
			r.err = fmt.Errorf("add schema %s: %w", file, err)
			return
		}
		names = append(names, entry.Name())
	}

	r.compiled = make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		compiled, err := compiler.Compile(name)
		if err != nil {
			r.err = fmt.Errorf("compile schema %s: %w", name, err)
			return
		}
		r.compiled[strings.TrimSuffix(name, ".json")] = compiled
	}
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
