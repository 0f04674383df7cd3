package moderation

import (
	"fmt"
	"marketplace/pkg/domain"
	"marketplace/pkg/serrors"
)

// DefaultReportThreshold is the number of reports that puts an OPEN incidence
// under review.
const DefaultReportThreshold = 3

// NewReport is what the policy needs to know about an incoming report.
type NewReport struct {
	Source domain.ReportSource
}

// Outcome is the result of evaluating a report. It is one of
// CreateIncidence, AttachReport or Reject.
type Outcome interface {
	isOutcome()
}

// CreateIncidence opens a new incidence in Status with the report as its
// first entry.
type CreateIncidence struct {
	Status domain.IncidenceStatus
}

// AttachReport appends the report to the existing incidence. Escalate moves
// the incidence and its publication under review.
type AttachReport struct {
	Escalate bool
}

// Reject refuses the report.
type Reject struct {
	Reason serrors.Kind
}

func (CreateIncidence) isOutcome() {}
func (AttachReport) isOutcome()    {}
func (Reject) isOutcome()          {}

// Err returns the semantic error for the rejection.
func (r Reject) Err() *serrors.Error {
	switch r.Reason {
	case ErrIncidenceAppealed:
		return reject(r.Reason, "incidence is appealed and accepts no more reports")
	case ErrIncidenceAlreadyDecided:
		return reject(r.Reason, "incidence already has a decision")
	case ErrPublicationUnderReview:
		return reject(r.Reason, "publication is under review and accepts no more user reports")
	default:
		return reject(r.Reason, "report rejected")
	}
}

// Policy decides what happens to a report given the publication's current
// non-terminal incidence. It has no side effects.
type Policy struct {
	// Threshold is the report count, including the new one, at which an OPEN
	// incidence is escalated.
	Threshold int
}

// Evaluate applies the escalation rules. existing is nil when the publication
// has no non-terminal incidence.
func (p Policy) Evaluate(existing *domain.Incidence, report NewReport) (Outcome, error) {
	if !report.Source.Valid() {
		return nil, fmt.Errorf("unknown report source %q", report.Source)
	}

	if existing == nil || existing.Status.Terminal() {
		if report.Source == domain.ReportSourceSystem {
			return CreateIncidence{Status: domain.IncidenceStatusUnderReview}, nil
		}

		return CreateIncidence{Status: domain.IncidenceStatusOpen}, nil
	}

	if existing.Status == domain.IncidenceStatusAppealed {
		return Reject{Reason: ErrIncidenceAppealed}, nil
	}
	if !existing.Status.Valid() {
		return nil, fmt.Errorf("incidence %s has unknown status %q", existing.ID, existing.Status)
	}
	if existing.Decided() {
		return Reject{Reason: ErrIncidenceAlreadyDecided}, nil
	}

	switch existing.Status {
	case domain.IncidenceStatusUnderReview:
		if report.Source == domain.ReportSourceUser {
			return Reject{Reason: ErrPublicationUnderReview}, nil
		}

		return AttachReport{}, nil
	case domain.IncidenceStatusOpen:
		threshold := p.Threshold
		if threshold <= 0 {
			threshold = DefaultReportThreshold
		}
		escalate := report.Source == domain.ReportSourceSystem || len(existing.Reports)+1 >= threshold

		return AttachReport{Escalate: escalate}, nil
	case domain.IncidenceStatusAppealed, domain.IncidenceStatusClosed:
	}

	return nil, fmt.Errorf("incidence %s has unexpected status %q", existing.ID, existing.Status)
}
