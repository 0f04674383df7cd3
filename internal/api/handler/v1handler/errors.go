package v1handler

import (
	"context"
	"errors"
	"marketplace/internal/api/specs/v1specs"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

var kindStatus = []struct {
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to an error response. Semantic errors keep their message,
// anything else is reported as an internal error and sent to sentry.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	err = fromServerError(err)
	res := &v1specs.ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response: v1specs.Error{
			Code:    serrors.Code(err),
			Message: "internal error",
		},
	}

	for _, ks := range kindStatus {
		if !errors.Is(err, ks.kind) {
			continue
		}
		res.StatusCode = ks.status
		res.Response.Message = ks.message
		if se := serrors.From(err); se != nil && se.Message() != "" {
			res.Response.Message = se.Message()
		}

		break
	}

	if res.StatusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub()
		}
		hub.CaptureException(err)
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err), zap.Int("status_code", res.StatusCode))
	}

	return res
}

// fromServerError turns the errors raised by the generated server before a
// handler runs into semantic errors.
func fromServerError(err error) error {
	var (
		secErr    *ogenerrors.SecurityError
		paramsErr *ogenerrors.DecodeParamsError
		reqErr    *ogenerrors.DecodeRequestError
	)
	switch {
	case errors.As(err, &secErr):
		if errors.Is(secErr.Err, ogenerrors.ErrSecurityRequirementIsNotSatisfied) {
			return serrors.Wrap(serrors.ErrUnauthorized, err, "missing bearer token")
		}
		if serrors.From(secErr.Err) == nil {
			return serrors.Wrap(serrors.ErrUnauthorized, err, "unauthorized")
		}

		return secErr.Err
	case errors.As(err, &paramsErr):
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid parameters: %s", paramsErr.Err)
	case errors.As(err, &reqErr):
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request: %s", reqErr.Err)
	}

	return err
}
