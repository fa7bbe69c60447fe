package rulespec

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// FieldRules is one entry of a rule set: a field key and its ordered check chain.
type FieldRules struct {
	Key    string
	Checks []string
}

// Rules is an ordered rule set. Fields are validated in slice order.
type Rules []FieldRules

// Add appends a field entry and returns the extended rule set.
func (r Rules) Add(key string, checks ...string) Rules {
	return append(r, FieldRules{Key: key, Checks: checks})
}

// FromMap builds a rule set from an unordered map. Keys are sorted so the
// resulting order is deterministic.
func FromMap(m map[string][]string) Rules {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rules := make(Rules, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, FieldRules{Key: k, Checks: m[k]})
	}
	return rules
}

// Field is a normalized rule entry with the alias stripped from its key.
type Field struct {
	Name   string
	Checks []string
}

// Normalize splits every key into field name and alias. A later entry for
// an already seen field name replaces the earlier chain in place, keeping
// the original position. The returned alias map only holds aliased fields.
func (r Rules) Normalize() ([]Field, map[string]string) {
	fields := make([]Field, 0, len(r))
	aliases := make(map[string]string)
	index := make(map[string]int, len(r))

	for _, entry := range r {
		key := ParseFieldKey(entry.Key)
		if key.HasAlias() {
			aliases[key.Name] = key.Alias
		}
		if i, ok := index[key.Name]; ok {
			fields[i].Checks = entry.Checks
			continue
		}
		index[key.Name] = len(fields)
		fields = append(fields, Field{Name: key.Name, Checks: entry.Checks})
	}

	return fields, aliases
}

// UnmarshalYAML decodes a mapping of field keys to check lists, keeping the
// document order. A scalar value is treated as a single-check chain.
func (r *Rules) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected mapping at line %d", ErrInvalidRules, node.Line)
	}

	rules := make(Rules, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var checks []string
		switch valueNode.Kind {
		case yaml.SequenceNode:
			if err := valueNode.Decode(&checks); err != nil {
				return errors.Join(ErrInvalidRules, err)
			}
		case yaml.ScalarNode:
			checks = []string{valueNode.Value}
		default:
			return fmt.Errorf("%w: field %q must hold a list of checks", ErrInvalidRules, keyNode.Value)
		}

		rules = append(rules, FieldRules{Key: keyNode.Value, Checks: checks})
	}

	*r = rules
	return nil
}

// ParseRules decodes a YAML or JSON rules document.
func ParseRules(content []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(content, &rules); err != nil {
		if errors.Is(err, ErrInvalidRules) {
			return nil, err
		}
		return nil, errors.Join(ErrInvalidRules, err)
	}
	return rules, nil
}

// LoadRules reads and decodes a rules file.
func LoadRules(path string) (Rules, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadRules, err)
	}
	return ParseRules(content)
}
