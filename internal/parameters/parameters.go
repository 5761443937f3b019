// Package parameters handles generic configuration Params, a map[string]string parsed from
// a configuration string like "heuristic=manhattan,max_cost=50,workers=4".
//
// Components read the values they know with PopParamOr and, once done, call CheckAllUsed to
// reject misspelled or unknown keys.
package parameters

import (
	"github.com/pkg/errors"
	"slices"
	"strconv"
	"strings"
)

// Params represent generic configuration parameters.
type Params map[string]string

// Value types supported by GetParamOr and PopParamOr.
type Value interface {
	int | float32 | string
}

// NewFromConfigString create params from user's configuration string: a comma-separated
// list of "key=value" or "key" (a key without a value). Spaces around keys and values are
// trimmed, and empty entries are ignored.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=") // Values may contain '='.
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or
// returns the defaultValue if not.
//
// For non-string types, a key without a value returns the defaultValue.
func GetParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var parsed any
	var err error
	switch any(defaultValue).(type) {
	case string:
		return any(value).(T), nil
	case int:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err = strconv.Atoi(value)
	case float32:
		if value == "" {
			return defaultValue, nil
		}
		var f float64
		f, err = strconv.ParseFloat(value, 32)
		parsed = float32(f)
	}
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to %T", key, value, defaultValue)
	}
	return parsed.(T), nil
}

// CheckAllUsed returns an error listing the keys left in params, if any. It is meant to be
// called after all known parameters were retrieved with PopParamOr.
func CheckAllUsed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return errors.Errorf("unknown configuration parameter(s) %q", keys)
}
