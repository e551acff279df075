package interpolation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TagName marks fields to expand: `env_interpolation:"yes"`.
const TagName = "env_interpolation"

// ExpandStruct expands tagged fields of the struct v points to, in place.
// Tagged fields may be string, *string or []string. Untagged nested structs
// are walked so their own tagged fields are expanded too.
func ExpandStruct(v any, lookup LookupFunc) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, got %T", v)
	}
	return expandFields(val.Elem(), lookup)
}

func expandFields(val reflect.Value, lookup LookupFunc) error {
	typ := val.Type()
	var errs []error

	for i := range val.NumField() {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := expandFields(field, lookup); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", sf.Name, err))
			}
			continue
		}

		if !strings.EqualFold(sf.Tag.Get(TagName), "yes") {
			continue
		}

		switch {
		case field.Kind() == reflect.String:
			errs = append(errs, expandValue(field, sf.Name, lookup))
		case field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.String:
			if !field.IsNil() {
				errs = append(errs, expandValue(field.Elem(), sf.Name, lookup))
			}
		case field.Kind() == reflect.Slice && field.Type().Elem().Kind() == reflect.String:
			for j := range field.Len() {
				errs = append(errs, expandValue(field.Index(j), fmt.Sprintf("%s[%d]", sf.Name, j), lookup))
			}
		}
	}

	return errors.Join(errs...)
}

func expandValue(v reflect.Value, name string, lookup LookupFunc) error {
	expanded, err := Expand(v.String(), lookup)
	if err != nil {
		return fmt.Errorf("field %s: %w", name, err)
	}
	v.SetString(expanded)
	return nil
}
