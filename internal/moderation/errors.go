package moderation

import "marketplace/pkg/serrors"

// Rejection reasons. Each is raised together with a category kind from
// serrors so transports can map the category and expose the reason as a code.
var (
	ErrPublicationNotFound = serrors.NewKind("PUBLICATION_NOT_FOUND")
	ErrReporterNotFound    = serrors.NewKind("REPORTER_NOT_FOUND")
	ErrModeratorNotFound   = serrors.NewKind("MODERATOR_NOT_FOUND")
	ErrSellerNotFound      = serrors.NewKind("SELLER_NOT_FOUND")
	ErrIncidenceNotFound   = serrors.NewKind("INCIDENCE_NOT_FOUND")
	ErrSystemUserNotFound  = serrors.NewKind("SYSTEM_USER_NOT_FOUND")

	ErrPublicationUnderReview  = serrors.NewKind("PUBLICATION_UNDER_REVIEW")
	ErrIncidenceAppealed       = serrors.NewKind("INCIDENCE_APPEALED")
	ErrIncidenceNotOpen        = serrors.NewKind("INCIDENCE_NOT_OPEN")
	ErrIncidenceAlreadyClaimed = serrors.NewKind("INCIDENCE_ALREADY_CLAIMED")
	ErrIncidenceAlreadyDecided = serrors.NewKind("INCIDENCE_ALREADY_DECIDED")

	ErrIncidenceNotDecided      = serrors.NewKind("INCIDENCE_NOT_DECIDED")
	ErrIncidenceAlreadyAppealed = serrors.NewKind("INCIDENCE_ALREADY_APPEALED")
	ErrIncidenceClosed          = serrors.NewKind("INCIDENCE_CLOSED")
	ErrIncidenceNotClaimed      = serrors.NewKind("INCIDENCE_NOT_CLAIMED")
	ErrNotPublicationOwner      = serrors.NewKind("NOT_PUBLICATION_OWNER")
)

// categories maps every reason to its category kind.
var categories = map[serrors.Kind]serrors.Kind{ //nolint: gochecknoglobals
	ErrPublicationNotFound: serrors.ErrNotFound,
	ErrReporterNotFound:    serrors.ErrNotFound,
	ErrModeratorNotFound:   serrors.ErrNotFound,
	ErrSellerNotFound:      serrors.ErrNotFound,
	ErrIncidenceNotFound:   serrors.ErrNotFound,
	ErrSystemUserNotFound:  serrors.ErrNotFound,

	ErrPublicationUnderReview:   serrors.ErrConflict,
	ErrIncidenceAppealed:        serrors.ErrConflict,
	ErrIncidenceNotOpen:         serrors.ErrConflict,
	ErrIncidenceAlreadyClaimed:  serrors.ErrConflict,
	ErrIncidenceAlreadyDecided:  serrors.ErrConflict,
	ErrIncidenceNotDecided:      serrors.ErrConflict,
	ErrIncidenceAlreadyAppealed: serrors.ErrConflict,
	ErrIncidenceClosed:          serrors.ErrConflict,

	ErrIncidenceNotClaimed: serrors.ErrForbidden,
	ErrNotPublicationOwner: serrors.ErrForbidden,
}

// reject builds the semantic error for a rejection reason.
func reject(reason serrors.Kind, msgFmt string, args ...any) *serrors.Error {
	category, ok := categories[reason]
	if !ok {
		category = serrors.ErrInternal
	}

	return serrors.WithReason(category, reason, msgFmt, args...)
}
