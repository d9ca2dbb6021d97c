// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// StringList holds a field that the source data encodes either as a single
// string ("USA, France") or as an array (["USA", "France"]). Both decode
// without loss; String joins elements with ", " so element boundaries stay
// visible to comma tokenization.
type StringList []string

// String returns the elements joined with ", ".
func (l StringList) String() string {
	return strings.Join(l, ", ")
}

// IsEmpty reports whether the list holds no non-blank element.
func (l StringList) IsEmpty() bool {
	for _, s := range l {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// UnmarshalJSON accepts null, a scalar, or an array of scalars.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decoding string list: %w", err)
		}
		out := make(StringList, 0, len(raw))
		for _, r := range raw {
			s, err := scalarJSON(r)
			if err != nil {
				return err
			}
			out = append(out, s)
		}
		*l = out
		return nil
	}
	s, err := scalarJSON(data)
	if err != nil {
		return err
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = StringList{s}
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" || node.Value == "" {
			*l = nil
			return nil
		}
		*l = StringList{node.Value}
	case yaml.SequenceNode:
		out := make(StringList, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: string list element must be a scalar", child.Line)
			}
			out = append(out, child.Value)
		}
		*l = out
	default:
		return fmt.Errorf("line %d: string list must be a scalar or a sequence", node.Line)
	}
	return nil
}

// Text is a scalar that may arrive as a JSON string, number or boolean.
// Numeric attributes such as age_from are stored this way so "18" and 18
// decode identically.
type Text string

func (t Text) String() string { return string(t) }

// UnmarshalJSON accepts null, a string, a number or a boolean.
func (t *Text) UnmarshalJSON(data []byte) error {
	s, err := scalarJSON(bytes.TrimSpace(data))
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// UnmarshalYAML accepts any scalar.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*t = ""
		return nil
	}
	*t = Text(node.Value)
	return nil
}

// YesNoUnknown is the tri-state domain of fields such as healthy_volunteers,
// whose raw encodings include "Yes", "yes", true and null.
type YesNoUnknown uint8

const (
	Unknown YesNoUnknown = iota
	Yes
	No
)

// ParseYesNo maps a raw string to the tri-state, case-insensitively.
func ParseYesNo(s string) YesNoUnknown {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return Yes
	case "no", "n", "false":
		return No
	}
	return Unknown
}

// String returns "Yes", "No", or "" for Unknown.
func (v YesNoUnknown) String() string {
	switch v {
	case Yes:
		return "Yes"
	case No:
		return "No"
	}
	return ""
}

// Rank orders affirmative answers first: Yes=1, No=2, Unknown=3.
func (v YesNoUnknown) Rank() int {
	switch v {
	case Yes:
		return 1
	case No:
		return 2
	}
	return 3
}

// MarshalJSON encodes Unknown as null.
func (v YesNoUnknown) MarshalJSON() ([]byte, error) {
	if v == Unknown {
		return []byte("null"), nil
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts booleans, strings and null.
func (v *YesNoUnknown) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("true")):
		*v = Yes
		return nil
	case bytes.Equal(data, []byte("false")):
		*v = No
		return nil
	}
	s, err := scalarJSON(data)
	if err != nil {
		return err
	}
	*v = ParseYesNo(s)
	return nil
}

// MarshalYAML encodes Unknown as null.
func (v YesNoUnknown) MarshalYAML() (any, error) {
	if v == Unknown {
		return nil, nil
	}
	return v.String(), nil
}

// UnmarshalYAML accepts booleans, strings and null.
func (v *YesNoUnknown) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a yes/no scalar", node.Line)
	}
	*v = ParseYesNo(node.Value)
	return nil
}

// scalarJSON renders a JSON scalar as a string. Numbers keep their literal
// form; null becomes "".
func scalarJSON(data []byte) (string, error) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", fmt.Errorf("decoding string: %w", err)
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("expected a scalar, got %s", string(data[:1]))
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		return n.String(), nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return "", fmt.Errorf("decoding scalar %q: %w", string(data), err)
	}
	if b {
		return "true", nil
	}
	return "false", nil
}
