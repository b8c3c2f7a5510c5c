package validator

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// Rule is a single check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidatorFunc builds the rule for a field value and its tag parameters.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"email":    emailValidator,
		"phone":    phoneValidator,
		"numeric":  numericValidator,
		"positive": positiveValidator,
	}
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,}[0-9]$`)
)

// RegisterValidator adds or replaces a rule.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates v, which must be a pointer to a struct.
// It returns ValidationErrors when any rule fails.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	var errs ValidationErrors
	validateStruct(rv.Elem(), "", &errs)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStruct(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		path := fieldName(sf)
		if prefix != "" {
			path = prefix + "." + path
		}

		field := rv.Field(i)
		if field.Kind() == reflect.Pointer && !field.IsNil() {
			field = field.Elem()
		}
		if field.Kind() == reflect.Struct && tag == "" {
			validateStruct(field, path, errs)
			continue
		}
		if tag != "" {
			validateField(path, field, tag, errs)
		}
	}
}

func validateField(path string, field reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	empty := isEmpty(field)
	for _, raw := range strings.Split(tag, ";") {
		name, paramStr, _ := strings.Cut(strings.TrimSpace(raw), ":")
		name = strings.TrimSpace(name)
		if name == "" || (empty && name != "required") {
			continue
		}

		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			for _, p := range strings.Split(paramStr, ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}

		fn, ok := registry[name]
		if !ok {
			continue
		}
		if rule := fn(path, field, params); !rule.Check() {
			errs.Add(rule.Error)
		}
	}
}

// fieldName prefers the json tag name so errors match request payloads.
func fieldName(sf reflect.StructField) string {
	if tag := sf.Tag.Get("json"); tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return sf.Name
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func newError(field, message, key string, values map[string]any) ValidationError {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

func requiredValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool { return !isEmpty(value) },
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// size returns the rune count of strings, the length of collections and the
// numeric value of numbers.
func size(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.String:
		return float64(utf8.RuneCountInString(v.String())), true
	case reflect.Slice, reflect.Map, reflect.Array:
		return float64(v.Len()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func boundValidator(cmp func(got, limit float64) bool, message, key string) ValidatorFunc {
	return func(field string, value reflect.Value, params []string) Rule {
		var limit float64
		var err error
		if len(params) > 0 {
			limit, err = strconv.ParseFloat(params[0], 64)
		}
		return Rule{
			Check: func() bool {
				if len(params) == 0 || err != nil {
					return false
				}
				got, ok := size(value)
				return ok && cmp(got, limit)
			},
			Error: newError(field, message+" "+strings.Join(params, ","), key, map[string]any{"limit": strings.Join(params, ",")}),
		}
	}
}

var (
	minValidator = boundValidator(func(got, limit float64) bool { return got >= limit }, "must be at least", "validation.min")
	maxValidator = boundValidator(func(got, limit float64) bool { return got <= limit }, "must be at most", "validation.max")
)

func emailValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool { return value.Kind() == reflect.String && emailRegex.MatchString(value.String()) },
		Error: newError(field, "must be a valid email address", "validation.email", nil),
	}
}

func phoneValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool { return value.Kind() == reflect.String && phoneRegex.MatchString(strings.TrimSpace(value.String())) },
		Error: newError(field, "must be a valid phone number", "validation.phone", nil),
	}
}

func numericValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			if value.Kind() != reflect.String {
				_, ok := size(value)
				return ok
			}
			_, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64)
			return err == nil
		},
		Error: newError(field, "must be numeric", "validation.numeric", nil),
	}
}

func positiveValidator(field string, value reflect.Value, _ []string) Rule {
	return Rule{
		Check: func() bool {
			if value.Kind() == reflect.String {
				n, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64)
				return err == nil && n > 0
			}
			n, ok := size(value)
			return ok && n > 0
		},
		Error: newError(field, "must be positive", "validation.positive", nil),
	}
}
