// toml package - toml/toml.go
//
// A small TOML subset: tables, and string/int/float/bool values. This is
// all the editor's config file uses.
package toml

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type Parser struct {
	lines   []string
	lineNum int
	result  map[string]any
	current map[string]any
}

func New() *Parser {
	return &Parser{
		result:  make(map[string]any),
		current: make(map[string]any),
	}
}

// ParseNative converts TOML string to native Go data structures.
func ParseNative(tomlData string) (map[string]any, error) {
	parser := New()
	if err := parser.parse(tomlData); err != nil {
		return nil, err
	}
	return parser.result, nil
}

// parse main parsing logic
func (p *Parser) parse(data string) error {
	p.lines = strings.Split(data, "\n")
	p.result = make(map[string]any)
	p.current = p.result

	for p.lineNum = 0; p.lineNum < len(p.lines); p.lineNum++ {
		line := strings.TrimSpace(p.lines[p.lineNum])
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			if err := p.parseTable(line); err != nil {
				return err
			}
			continue
		}

		if strings.Contains(line, "=") {
			if err := p.parseKeyValue(line); err != nil {
				return err
			}
			continue
		}

		return &ParseError{Line: p.lineNum + 1, Msg: "invalid syntax"}
	}

	return nil
}

// parseTable handles table parsing [table] or [table.subtable]
func (p *Parser) parseTable(line string) error {
	key := strings.TrimSpace(line[1 : len(line)-1])
	if key == "" {
		return &ParseError{Line: p.lineNum + 1, Msg: "empty table name"}
	}

	p.current = p.result
	for _, k := range strings.Split(key, ".") {
		next, exists := p.current[k]
		if !exists {
			newTable := make(map[string]any)
			p.current[k] = newTable
			p.current = newTable
			continue
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return &ParseError{Line: p.lineNum + 1, Msg: "key already exists"}
		}
		p.current = nextMap
	}
	return nil
}

// parseKeyValue handles key = value parsing
func (p *Parser) parseKeyValue(line string) error {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return &ParseError{Line: p.lineNum + 1, Msg: "invalid key-value pair"}
	}

	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return &ParseError{Line: p.lineNum + 1, Msg: "empty key"}
	}

	parsedValue, err := parseValue(value)
	if err != nil {
		return &ParseError{Line: p.lineNum + 1, Msg: err.Error()}
	}

	p.current[key] = parsedValue
	return nil
}

// parseValue handles value parsing
func parseValue(value string) (any, error) {
	// Handle strings
	if strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) && len(value) >= 2 {
		return value[1 : len(value)-1], nil
	}

	// Handle numbers
	if num, err := strconv.Atoi(value); err == nil {
		return num, nil
	}
	if num, err := strconv.ParseFloat(value, 64); err == nil {
		return num, nil
	}

	// Handle booleans
	if value == "true" {
		return true, nil
	}
	if value == "false" {
		return false, nil
	}

	return nil, fmt.Errorf("unrecognized value: %s", value)
}

// Encode renders a map as TOML text with keys in sorted order. Values of
// type map[string]any become tables; everything else must be a string,
// int, float64 or bool.
func Encode(data map[string]any) ([]byte, error) {
	var sb strings.Builder

	keys := sortedKeys(data)

	// Plain values first so they don't land inside a table.
	for _, k := range keys {
		if _, ok := data[k].(map[string]any); ok {
			continue
		}
		v, err := formatValue(data[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		fmt.Fprintf(&sb, "%s = %s\n", k, v)
	}

	for _, k := range keys {
		table, ok := data[k].(map[string]any)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n[%s]\n", k)
		for _, tk := range sortedKeys(table) {
			v, err := formatValue(table[tk])
			if err != nil {
				return nil, fmt.Errorf("key %q.%q: %w", k, tk, err)
			}
			fmt.Fprintf(&sb, "%s = %s\n", tk, v)
		}
	}

	return []byte(sb.String()), nil
}

func formatValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val), nil
	case int:
		return strconv.Itoa(val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
