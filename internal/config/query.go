package config

import (
	"reflect"
	"strings"
	"time"
)

// GetValue loads the environment configuration and returns the value at the
// dotted path, e.g. "server.port" or "security.apiKey".
func GetValue(path string) (any, bool) {
	return Load().Lookup(path)
}

// Lookup walks a dotted path through c. Each segment matches a field's TOML key
// or its Go field name, ignoring case. It returns false when a segment does not
// exist, or when it names an optional field that is unset. Durations are
// returned as int64 milliseconds, the unit they are configured in.
func (c AppConfig) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	v := reflect.ValueOf(c)
	for _, segment := range strings.Split(path, ".") {
		if v.Kind() != reflect.Struct {
			return nil, false
		}

		field, ok := findField(v, segment)
		if !ok {
			return nil, false
		}
		v = field
	}

	if d, ok := v.Interface().(time.Duration); ok {
		return d.Milliseconds(), true
	}
	return v.Interface(), true
}

// findField returns the field of struct v named by segment. An omitempty field
// holding its zero value is treated as missing.
func findField(v reflect.Value, segment string) (reflect.Value, bool) {
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		key, opts, _ := strings.Cut(sf.Tag.Get("toml"), ",")
		if !strings.EqualFold(segment, key) && !strings.EqualFold(segment, sf.Name) {
			continue
		}

		fv := v.Field(i)
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			return reflect.Value{}, false
		}
		return fv, true
	}
	return reflect.Value{}, false
}
