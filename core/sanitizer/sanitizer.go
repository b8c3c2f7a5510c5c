package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
)

var (
	ErrInvalidTarget    = errors.New("sanitizer: target must be a pointer to struct")
	ErrUnknownSanitizer = errors.New("sanitizer: unknown sanitizer")
)

// Func transforms a single string value.
type Func func(string) string

var (
	registryMu sync.RWMutex
	registry   = map[string]Func{
		"trim":        strings.TrimSpace,
		"lower":       strings.ToLower,
		"single_line": SingleLine,
		"collapse":    CollapseSpaces,
		"no_control":  RemoveControlChars,
	}
)

// RegisterSanitizer adds or replaces a named sanitizer.
func RegisterSanitizer(name string, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SingleLine trims the value and joins its lines with single spaces.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CollapseSpaces replaces runs of spaces and tabs with one space while
// keeping line breaks.
func CollapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// RemoveControlChars drops non-printable runes other than newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			return r
		}
		return -1
	}, s)
}

// Apply runs the semicolon-separated sanitizers of tag over value.
func Apply(value, tag string) (string, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for name := range strings.SplitSeq(tag, ";") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		fn, ok := registry[name]
		if !ok {
			return value, fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
		}
		value = fn(value)
	}
	return value, nil
}

// SanitizeStruct applies the `sanitize` tags of v in place. Nested structs
// and pointers to structs are walked; string pointers and string slices are
// sanitized element-wise.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	return sanitizeStruct(rv.Elem())
}

func sanitizeStruct(rv reflect.Value) error {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}
		if err := sanitizeValue(field, tag); err != nil {
			return fmt.Errorf("%s: %w", rt.Field(i).Name, err)
		}
	}
	return nil
}

func sanitizeValue(v reflect.Value, tag string) error {
	switch v.Kind() {
	case reflect.String:
		if tag == "" {
			return nil
		}
		s, err := Apply(v.String(), tag)
		if err != nil {
			return err
		}
		v.SetString(s)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return sanitizeValue(v.Elem(), tag)
	case reflect.Struct:
		return sanitizeStruct(v)
	case reflect.Slice:
		if tag == "" || v.Type().Elem().Kind() != reflect.String {
			return nil
		}
		for j := range v.Len() {
			if err := sanitizeValue(v.Index(j), tag); err != nil {
				return err
			}
		}
	}
	return nil
}
