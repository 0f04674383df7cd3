package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"marketplace/internal/api/handler/v1handler"
	"marketplace/internal/api/specs/v1specs"
	"marketplace/internal/moderation"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
	"testing"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing reason")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid payload: missing reason", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_ReasonCode_Conflict(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("could not report: %w", serrors.WithReason(serrors.ErrConflict,
		moderation.ErrPublicationUnderReview, "publication is under review"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, 409, res.StatusCode)
	require.Equal(t, "PUBLICATION_UNDER_REVIEW", res.Response.Code)
	require.Equal(t, "publication is under review", res.Response.Message)
}

func TestNewError_Forbidden(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrForbidden)
	require.Equal(t, 403, res.StatusCode)
	require.Equal(t, "forbidden", res.Response.Message)
}

func TestNewError_MissingToken_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), &ogenerrors.SecurityError{
		OperationContext: ogenerrors.OperationContext{Name: v1specs.ReviewedIncidencesOperation, ID: "reviewedIncidences"},
		Err:              ogenerrors.ErrSecurityRequirementIsNotSatisfied,
	})
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	require.Equal(t, "missing bearer token", res.Response.Message)
}

func TestNewError_SecurityHandlerError_KeepsKind(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), &ogenerrors.SecurityError{
		Security: "BearerAuth",
		Err:      serrors.With(serrors.ErrForbidden, "requires one of roles [MODERATOR]"),
	})
	require.Equal(t, 403, res.StatusCode)
	require.Equal(t, "requires one of roles [MODERATOR]", res.Response.Message)
}

func TestNewError_DecodeErrors_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), &ogenerrors.DecodeRequestError{Err: errors.New("unexpected EOF")})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid request: unexpected EOF", res.Response.Message)

	res = h.NewError(context.Background(), &ogenerrors.DecodeParamsError{Err: errors.New("path: id: invalid UUID length: 3")})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "invalid parameters: path: id: invalid UUID length: 3", res.Response.Message)
}
