package handler

import (
	"context"
	"net/http"
)

// Context is the request scope handed to every handler and middleware.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
