// Package v1handler implements the v1 moderation API on top of the
// generated v1specs server.
package v1handler

import (
	"marketplace/internal/api/specs/v1specs"
	"marketplace/internal/moderation"
	"marketplace/pkg/logger"

	"github.com/ogen-go/ogen/middleware"
	"go.uber.org/zap"
)

type Deps struct {
	Moderation moderation.Service
}

type Handler struct {
	Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{
		Deps: deps,
	}
}

// LogOperation adds the operation id to the request logger fields.
func LogOperation(req middleware.Request, next middleware.Next) (middleware.Response, error) {
	req.Context = logger.WithFields(req.Context, zap.String("operation", req.OperationID))

	return next(req)
}

func page(number, size v1specs.OptInt) moderation.Page {
	return moderation.Page{
		Number: uint(number.Or(0)),
		Size:   uint(size.Or(0)),
	}
}
