package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Parse converts raw command-line values into the type of key's default and
// checks them against the field's choices.
func Parse(key string, raw []string) (any, error) {
	field, ok := Default[key]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", key)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", key)
	}

	var value any
	switch field.Value.(type) {
	case string:
		value = raw[0]
	case int:
		parsed, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %s", key, raw[0])
		}
		if parsed < 0 {
			return nil, fmt.Errorf("%s must not be negative", key)
		}
		value = parsed
	case bool:
		parsed, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %s", key, raw[0])
		}
		value = parsed
	case []string:
		value = raw
	default:
		return nil, fmt.Errorf("unsupported type for %s", key)
	}

	if s, isString := value.(string); isString {
		if choices := field.choices(); len(choices) > 0 && !lo.Contains(choices, s) {
			return nil, fmt.Errorf("invalid value %q for %s, expected one of: %s", s, key, strings.Join(choices, ", "))
		}
	}

	return value, nil
}
