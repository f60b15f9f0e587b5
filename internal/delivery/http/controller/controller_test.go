package controller

import (
	"context"
	"net/http"
	"testing"

	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_FirstStageIsOutermost(t *testing.T) {
	var order []string
	stage := func(name string) Middleware {
		return func(next Controller) Controller {
			return Func(func(ctx context.Context, req *Request) *Response {
				order = append(order, name)
				return next.Handle(ctx, req)
			})
		}
	}

	c := Chain(Func(func(context.Context, *Request) *Response {
		order = append(order, "controller")
		return OK(nil)
	}), stage("outer"), stage("inner"))

	res := c.Handle(context.Background(), &Request{})

	require.NotNil(t, res)
	assert.Equal(t, []string{"outer", "inner", "controller"}, order)
}

func TestChain_NoStages(t *testing.T) {
	inner := Func(func(context.Context, *Request) *Response { return OK("body") })

	res := Chain(inner).Handle(context.Background(), &Request{})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "body", res.Body)
}

func TestResponse_Class(t *testing.T) {
	tests := []struct {
		name string
		res  *Response
		want Class
	}{
		{"ok", OK("body"), ClassSuccess},
		{"created", &Response{StatusCode: http.StatusCreated}, ClassSuccess},
		{"bad request", BadRequest(errors.New("Missing param: email")), ClassClientError},
		{"not found", &Response{StatusCode: http.StatusNotFound}, ClassClientError},
		{"unauthorized", &Response{StatusCode: http.StatusUnauthorized}, ClassAccessDenied},
		{"forbidden", Forbidden(domainerrors.ErrEmailInUse), ClassAccessDenied},
		{"server error", ServerError(errors.New("boom")), ClassServerError},
		{"bad gateway", &Response{StatusCode: http.StatusBadGateway}, ClassServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.Class())
			assert.Equal(t, tt.want == ClassServerError, tt.res.IsServerError())
		})
	}
}

func TestForbidden_DefaultsToAccessDenied(t *testing.T) {
	res := Forbidden(nil)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, domainerrors.ErrAccessDenied, res.Err)
}

func TestServerError_KeepsCauseAndHidesBody(t *testing.T) {
	cause := errors.New("connection refused")

	res := ServerError(cause)

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Nil(t, res.Body)
	assert.ErrorIs(t, res.Err, cause)
	assert.Contains(t, errors.StackTrace(res.Err), "controller_test.go")
}

func TestServerError_NilCause(t *testing.T) {
	res := ServerError(nil)

	require.Error(t, res.Err)
	assert.True(t, res.IsServerError())
}
