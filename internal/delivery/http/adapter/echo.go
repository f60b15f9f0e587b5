// Package adapter binds transport-neutral controllers to echo.
package adapter

import (
	"net/http"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/delivery/http/controller"
	"authcore/internal/delivery/http/response"
	"authcore/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

var binder = &echo.DefaultBinder{}

// Route serves ctrl as an echo handler.
func Route(ctrl controller.Controller) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := newRequest(c)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
		}

		return response.Render(c, ctrl.Handle(c.Request().Context(), req))
	}
}

// Middleware runs ctrl before the next handler. A 200 lets the request through and,
// when the body is an account, attaches it to the request. Anything else is written as the reply.
func Middleware(ctrl controller.Controller) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := &controller.Request{
				Header:  c.Request().Header,
				Account: deliverycontext.GetAccount(c),
			}

			res := ctrl.Handle(c.Request().Context(), req)
			if res == nil || res.StatusCode != http.StatusOK {
				return response.Render(c, res)
			}

			if account, ok := res.Body.(*entity.Account); ok && account != nil {
				deliverycontext.SetAccount(c, account)
			}

			return next(c)
		}
	}
}

func newRequest(c echo.Context) (*controller.Request, error) {
	body := map[string]any{}
	if err := binder.BindBody(c, &body); err != nil {
		return nil, err
	}

	return &controller.Request{
		Body:    body,
		Header:  c.Request().Header,
		Account: deliverycontext.GetAccount(c),
	}, nil
}
