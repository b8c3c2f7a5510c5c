// Package sanitizer normalizes user-supplied form fields before validation.
//
// Fields opt in with a `sanitize` struct tag listing sanitizers separated by
// semicolons, applied left to right:
//
//	type Form struct {
//		Username string `sanitize:"trim"`
//		Email    string `sanitize:"trim;lower"`
//		Phone    string `sanitize:"single_line"`
//		Secret   string `sanitize:"-"`
//	}
//
//	if err := sanitizer.SanitizeStruct(&form); err != nil {
//		return err
//	}
//
// Unknown sanitizer names fail with ErrUnknownSanitizer so a typo in a tag
// is caught by the first test that touches the form. Untagged fields are
// left untouched; passwords in particular should never be tagged.
//
// Custom sanitizers are added with RegisterSanitizer.
package sanitizer
