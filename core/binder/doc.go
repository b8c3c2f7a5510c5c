// Package binder decodes HTTP request data into Go structs.
//
// Each binder reads one part of the request. Handlers combine them with Bind:
//
//	type ProductsRequest struct {
//		Category string `query:"category"`
//		MaxPrice string `query:"max_price"`
//	}
//
//	var req ProductsRequest
//	if err := binder.Bind(r, &req, binder.Query()); err != nil {
//		// errors.Is(err, binder.ErrFailedToParseQuery)
//	}
//
// JSON is strict: unknown fields, trailing data and non-JSON content types are
// rejected. An empty body leaves the target untouched. Query and Path fill
// string, integer, float and bool fields (and pointers to them) addressed by
// the `query` and `path` tags; untagged fields use the lower-cased field name
// and "-" skips a field.
package binder
