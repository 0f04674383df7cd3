package serrors_test

import (
	"errors"
	"fmt"
	"marketplace/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errPublicationUnderReview = serrors.NewKind("PUBLICATION_UNDER_REVIEW")

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestCategoryKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	require.Equal(t, "incidence 42 not found", serrors.With(serrors.ErrNotFound, "incidence %d not found", 42).Error())
	require.Equal(t, "loading incidence: db down", serrors.Wrap(serrors.ErrNotFound, base, "loading incidence").Error())
	require.Equal(t, "NOT_FOUND", serrors.KindOnly(serrors.ErrNotFound).Error())
	require.Equal(t, "PUBLICATION_UNDER_REVIEW",
		serrors.WithReason(serrors.ErrConflict, errPublicationUnderReview, "").Error())
}

func TestIsMatchesKindReasonAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)

	r := serrors.WithReason(serrors.ErrConflict, errPublicationUnderReview, "publication is under review")
	wrapped := fmt.Errorf("could not report: %w", r)
	require.ErrorIs(t, wrapped, serrors.ErrConflict)
	require.ErrorIs(t, wrapped, errPublicationUnderReview)
	require.NotErrorIs(t, wrapped, serrors.ErrNotFound)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Nil(t, e.Reason())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())

	r := serrors.WithReason(serrors.ErrConflict, errPublicationUnderReview, "x")
	require.Equal(t, errPublicationUnderReview, r.Reason())
}

func TestFromAndCode(t *testing.T) {
	require.Nil(t, serrors.From(nil))
	require.Nil(t, serrors.From(errors.New("plain")))
	require.Equal(t, "INTERNAL", serrors.Code(errors.New("plain")))

	require.Equal(t, "NOT_FOUND", serrors.Code(serrors.ErrNotFound))
	require.Equal(t, serrors.ErrNotFound, serrors.From(serrors.ErrNotFound).Kind())

	wrapped := fmt.Errorf("outer: %w", serrors.WithReason(serrors.ErrConflict, errPublicationUnderReview, "msg"))
	require.Equal(t, "PUBLICATION_UNDER_REVIEW", serrors.Code(wrapped))
	require.Equal(t, "msg", serrors.From(wrapped).Message())

	require.Equal(t, "CONFLICT", serrors.Code(serrors.With(serrors.ErrConflict, "dupe")))
}
