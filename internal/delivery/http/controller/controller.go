// Package controller defines the transport-neutral request/response contract shared by every endpoint,
// and the stages that can be chained around it.
package controller

import (
	"context"
	"net/http"

	"authcore/internal/domain/entity"
)

// Request is what a controller sees of an inbound call.
type Request struct {
	Body    map[string]any  // Decoded request body.
	Header  http.Header     // Inbound headers.
	Account *entity.Account // The resolved caller on protected routes; nil otherwise.
}

// Controller handles one request and always answers with a response envelope.
type Controller interface {
	Handle(ctx context.Context, req *Request) *Response
}

// Func adapts a plain function to the Controller interface.
type Func func(ctx context.Context, req *Request) *Response

// Handle calls f(ctx, req).
func (f Func) Handle(ctx context.Context, req *Request) *Response {
	return f(ctx, req)
}

// Middleware is one stage of a controller chain. It may inspect or forward the downstream response.
type Middleware func(next Controller) Controller

// Chain wraps c with the given stages. The first stage is the outermost.
func Chain(c Controller, stages ...Middleware) Controller {
	for i := len(stages) - 1; i >= 0; i-- {
		c = stages[i](c)
	}

	return c
}
