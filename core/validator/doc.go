// Package validator validates structs through `validate` field tags.
//
// Rules are separated by semicolons; parameters follow a colon and are
// comma-separated:
//
//	type CreateUser struct {
//		Username string `validate:"required;min:3;max:32"`
//		Email    string `validate:"required;email"`
//		Phone    string `validate:"required;phone"`
//	}
//
//	if err := validator.ValidateStruct(&req); err != nil {
//		var verrs validator.ValidationErrors
//		if errors.As(err, &verrs) {
//			// verrs.Fields() lists the offending fields
//		}
//	}
//
// Empty optional fields skip every rule except required. Nested structs
// without a tag are validated recursively with dotted field paths.
// Custom rules are added with RegisterValidator.
package validator
