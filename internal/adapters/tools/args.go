package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Argument values arrive JSON-decoded, so numbers are float64. Agents also
// send numbers and booleans as strings; both forms are accepted.

func optString(args map[string]any, key string) (string, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false, nil
	}
	switch s := v.(type) {
	case string:
		s = strings.TrimSpace(s)
		return s, s != "", nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true, nil
	case json.Number:
		return s.String(), true, nil
	}
	return "", false, invalidArg(key, v)
}

func requireString(args map[string]any, key string) (string, error) {
	s, ok, err := optString(args, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", missingArg(key)
	}
	return s, nil
}

func optFloat(args map[string]any, key string) (*float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case json.Number:
		x, err := n.Float64()
		if err != nil {
			return nil, invalidArg(key, v)
		}
		f = x
	case string:
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, nil
		}
		x, err := strconv.ParseFloat(strings.ReplaceAll(n, ",", "."), 64)
		if err != nil {
			return nil, invalidArg(key, v)
		}
		f = x
	default:
		return nil, invalidArg(key, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, invalidArg(key, v)
	}
	return &f, nil
}

func optInt(args map[string]any, key string) (int, bool, error) {
	f, err := optFloat(args, key)
	if err != nil || f == nil {
		return 0, false, err
	}
	if *f != math.Trunc(*f) || *f < math.MinInt32 || *f > math.MaxInt32 {
		return 0, false, invalidArg(key, args[key])
	}
	return int(*f), true, nil
}

func optBool(args map[string]any, key string) (*bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	var b bool
	switch x := v.(type) {
	case bool:
		b = x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "":
			return nil, nil
		case "true", "yes", "1", "כן":
			b = true
		case "false", "no", "0", "לא":
			b = false
		default:
			return nil, invalidArg(key, v)
		}
	default:
		return nil, invalidArg(key, v)
	}
	return &b, nil
}

// optStrings accepts a JSON array of strings or a single string.
func optStrings(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	switch xs := v.(type) {
	case string:
		add(xs)
	case []string:
		for _, s := range xs {
			add(s)
		}
	case []any:
		for _, x := range xs {
			s, ok := x.(string)
			if !ok {
				return nil, invalidArg(key, x)
			}
			add(s)
		}
	default:
		return nil, invalidArg(key, v)
	}
	return out, nil
}
