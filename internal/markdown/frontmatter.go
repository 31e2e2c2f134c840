package markdown

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// ErrFrontMatterNotMapping is returned when the metadata header parses as YAML
// but is not a key/value mapping.
var ErrFrontMatterNotMapping = errors.New("markdown: frontmatter must be a mapping")

// yamlNodeFormat decodes the YAML header into a yaml.Node so the original key
// order survives; plain maps would lose it.
var yamlNodeFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// FrontMatter is an insertion-ordered key/value mapping. Nested mappings are
// stored as FrontMatter values so their order is available too.
type FrontMatter struct {
	keys   []string
	values map[string]any
}

// NewFrontMatter returns an empty mapping with room for size keys.
func NewFrontMatter(size int) FrontMatter {
	return FrontMatter{
		keys:   make([]string, 0, size),
		values: make(map[string]any, size),
	}
}

// Keys returns the keys in document order.
func (fm FrontMatter) Keys() []string {
	return append([]string(nil), fm.keys...)
}

// Len reports the number of keys.
func (fm FrontMatter) Len() int {
	return len(fm.keys)
}

// Get returns the value stored under key.
func (fm FrontMatter) Get(key string) (any, bool) {
	if fm.values == nil {
		return nil, false
	}
	value, ok := fm.values[key]
	return value, ok
}

// Set stores value under key. Existing keys keep their position.
func (fm *FrontMatter) Set(key string, value any) {
	if fm.values == nil {
		fm.values = map[string]any{}
	}
	if _, exists := fm.values[key]; !exists {
		fm.keys = append(fm.keys, key)
	}
	fm.values[key] = value
}

// Map converts the mapping, including nested mappings and sequences, into
// plain Go maps and slices.
func (fm FrontMatter) Map() map[string]any {
	out := make(map[string]any, len(fm.keys))
	for _, key := range fm.keys {
		out[key] = plainValue(fm.values[key])
	}
	return out
}

func plainValue(value any) any {
	switch typed := value.(type) {
	case FrontMatter:
		return typed.Map()
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = plainValue(item)
		}
		return out
	default:
		return value
	}
}

// ParseFrontMatter splits source into its YAML metadata header and Markdown
// body. Sources without a header return an empty mapping and the full body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var root yaml.Node

	body, err := frontmatter.Parse(bytes.NewReader(source), &root, yamlNodeFormat)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta, err := frontMatterFromNode(&root)
	if err != nil {
		return FrontMatter{}, nil, err
	}
	return meta, body, nil
}

func frontMatterFromNode(root *yaml.Node) (FrontMatter, error) {
	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return NewFrontMatter(0), nil
		}
		node = node.Content[0]
	}

	switch node.Kind {
	case 0:
		return NewFrontMatter(0), nil
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return NewFrontMatter(0), nil
		}
	}
	return FrontMatter{}, fmt.Errorf("%w (line %d)", ErrFrontMatterNotMapping, node.Line)
}

func decodeMapping(node *yaml.Node) (FrontMatter, error) {
	fm := NewFrontMatter(len(node.Content) / 2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		value, err := decodeNode(valueNode)
		if err != nil {
			return FrontMatter{}, fmt.Errorf("decode frontmatter key %q: %w", keyNode.Value, err)
		}
		fm.Set(keyNode.Value, value)
	}
	return fm, nil
}

func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := decodeNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, nil
		}
		return decodeNode(node.Alias)
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}
