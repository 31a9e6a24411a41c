package chunk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ID identifies a chunk. Hosts assign either string or integer ids; the two
// kinds are distinct even when they print the same (StringID("1") is not
// NumberID(1)). The zero value is the empty string id.
type ID struct {
	str     string
	num     int64
	numeric bool
}

// StringID returns a string chunk id.
func StringID(s string) ID {
	return ID{str: s}
}

// NumberID returns an integer chunk id.
func NumberID(n int64) ID {
	return ID{num: n, numeric: true}
}

// IsNumber reports whether id is an integer id.
func (id ID) IsNumber() bool {
	return id.numeric
}

// String returns the string coercion of the id: the decimal form of integer
// ids and the raw value of string ids.
func (id ID) String() string {
	if id.numeric {
		return strconv.FormatInt(id.num, 10)
	}
	return id.str
}

// Literal renders the id as a JavaScript literal token: a bare decimal for
// integer ids and a double-quoted, escaped string otherwise. The result
// parses back to the same value.
func (id ID) Literal() string {
	if id.numeric {
		return strconv.FormatInt(id.num, 10)
	}
	return Quote(id.str)
}

// Quote returns s as a double-quoted JSON string. Unlike json.Marshal it
// leaves '<', '>' and '&' unescaped so the output matches JSON.stringify.
func Quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// strings always encode
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(id.Literal()), nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON strings become string ids
// and integral JSON numbers become integer ids.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("chunk id: %w", err)
		}
		*id = StringID(s)
		return nil
	}
	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*id = NumberID(n)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("chunk id must be a string or an integer, got %s", data)
	}
	n, ok := integral(f)
	if !ok {
		return fmt.Errorf("chunk id must be a string or an integer, got %s", data)
	}
	*id = NumberID(n)
	return nil
}

// integral returns f as an int64 when f has no fractional part and fits.
func integral(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// UnmarshalYAML implements yaml.Unmarshaler. Scalars tagged !!int, and
// !!float scalars without a fractional part, become integer ids. Any other
// scalar is taken verbatim as a string id.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("chunk id at line %d must be a scalar", node.Line)
	}
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("chunk id at line %d: %w", node.Line, err)
		}
		*id = NumberID(n)
		return nil
	}
	if node.Tag == "!!float" {
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("chunk id at line %d: %w", node.Line, err)
		}
		n, ok := integral(f)
		if !ok {
			return fmt.Errorf("chunk id at line %d must be a string or an integer, got %s", node.Line, node.Value)
		}
		*id = NumberID(n)
		return nil
	}
	*id = StringID(node.Value)
	return nil
}
