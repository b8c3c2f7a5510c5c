// Package response builds handler.Response values for JSON and plain text
// bodies, structured HTTP errors and response decorators.
//
//	func order(ctx *router.Context) handler.Response {
//		o, err := load(ctx, ctx.Param("id"))
//		if err != nil {
//			return response.Error(response.ErrNotFound.WithError(err))
//		}
//		return response.JSON(o)
//	}
//
// JSONErrorHandler renders any error returned that way as an HTTPError body.
package response
