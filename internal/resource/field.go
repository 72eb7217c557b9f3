package resource

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// setField returns a copy of rec with the JSON field name replaced by value.
// Numeric fields take numbers or numeric strings only.
func setField[T any](rec T, name string, value any) (T, error) {
	typ := reflect.TypeOf(rec)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return rec, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	field, ok := fieldByJSONName(typ, name)
	if !ok {
		return rec, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	v, err := coerce(field.Type, value)
	if err != nil {
		return rec, fmt.Errorf("%s: %w", name, err)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return rec, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return rec, err
	}

	enc, err := json.Marshal(v)
	if err != nil {
		return rec, fmt.Errorf("%w: %s", ErrInvalidValue, name)
	}
	fields[name] = enc

	raw, err = json.Marshal(fields)
	if err != nil {
		return rec, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return rec, fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
	}
	return out, nil
}

func fieldByJSONName(typ reflect.Type, name string) (reflect.StructField, bool) {
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}

		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch tag {
		case "-":
			continue
		case "":
			tag = f.Name
		}
		if tag == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// coerce converts form input to what a field of type t accepts.
func coerce(t reflect.Type, value any) (any, error) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch v := value.(type) {
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, ErrNotNumeric
			}
			return n, nil
		case int, int64, int32:
			return v, nil
		case float64:
			if v != float64(int64(v)) {
				return nil, ErrNotNumeric
			}
			return int64(v), nil
		default:
			return nil, ErrNotNumeric
		}

	case reflect.Float32, reflect.Float64:
		switch v := value.(type) {
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, ErrNotNumeric
			}
			return f, nil
		case float64, float32, int, int64, int32:
			return v, nil
		default:
			return nil, ErrNotNumeric
		}

	case reflect.Bool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, ErrInvalidValue
			}
			return b, nil
		default:
			return nil, ErrInvalidValue
		}

	case reflect.String:
		v, ok := value.(string)
		if !ok {
			return nil, ErrInvalidValue
		}
		return v, nil

	default:
		return value, nil
	}
}
