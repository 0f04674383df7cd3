package moderation_test

import (
	"marketplace/internal/moderation"
	"marketplace/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func incidenceWith(status domain.IncidenceStatus, reports int, decision domain.Decision) *domain.Incidence {
	return &domain.Incidence{
		Status:   status,
		Reports:  make([]domain.Report, reports),
		Decision: decision,
	}
}

func TestPolicy_Evaluate(t *testing.T) {
	policy := moderation.Policy{Threshold: 3}
	user := moderation.NewReport{Source: domain.ReportSourceUser}
	system := moderation.NewReport{Source: domain.ReportSourceSystem}

	cases := []struct {
		name     string
		existing *domain.Incidence
		report   moderation.NewReport
		want     moderation.Outcome
	}{
		{"first user report opens", nil, user,
			moderation.CreateIncidence{Status: domain.IncidenceStatusOpen}},
		{"first system report goes to review", nil, system,
			moderation.CreateIncidence{Status: domain.IncidenceStatusUnderReview}},
		{"closed incidence is ignored", incidenceWith(domain.IncidenceStatusClosed, 5, domain.DecisionNone), user,
			moderation.CreateIncidence{Status: domain.IncidenceStatusOpen}},
		{"appealed rejects user", incidenceWith(domain.IncidenceStatusAppealed, 1, domain.DecisionAccepted), user,
			moderation.Reject{Reason: moderation.ErrIncidenceAppealed}},
		{"appealed rejects system", incidenceWith(domain.IncidenceStatusAppealed, 1, domain.DecisionAccepted), system,
			moderation.Reject{Reason: moderation.ErrIncidenceAppealed}},
		{"decided open rejects", incidenceWith(domain.IncidenceStatusOpen, 1, domain.DecisionRejected), user,
			moderation.Reject{Reason: moderation.ErrIncidenceAlreadyDecided}},
		{"decided under review rejects system", incidenceWith(domain.IncidenceStatusUnderReview, 1, domain.DecisionAccepted), system,
			moderation.Reject{Reason: moderation.ErrIncidenceAlreadyDecided}},
		{"under review rejects user", incidenceWith(domain.IncidenceStatusUnderReview, 3, domain.DecisionNone), user,
			moderation.Reject{Reason: moderation.ErrPublicationUnderReview}},
		{"under review accepts system", incidenceWith(domain.IncidenceStatusUnderReview, 3, domain.DecisionNone), system,
			moderation.AttachReport{Escalate: false}},
		{"open below threshold attaches", incidenceWith(domain.IncidenceStatusOpen, 1, domain.DecisionNone), user,
			moderation.AttachReport{Escalate: false}},
		{"open reaching threshold escalates", incidenceWith(domain.IncidenceStatusOpen, 2, domain.DecisionNone), user,
			moderation.AttachReport{Escalate: true}},
		{"open above threshold escalates", incidenceWith(domain.IncidenceStatusOpen, 7, domain.DecisionNone), user,
			moderation.AttachReport{Escalate: true}},
		{"open system report escalates", incidenceWith(domain.IncidenceStatusOpen, 0, domain.DecisionNone), system,
			moderation.AttachReport{Escalate: true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := policy.Evaluate(c.existing, c.report)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestPolicy_Threshold(t *testing.T) {
	open := incidenceWith(domain.IncidenceStatusOpen, 3, domain.DecisionNone)
	user := moderation.NewReport{Source: domain.ReportSourceUser}

	got, err := moderation.Policy{Threshold: 5}.Evaluate(open, user)
	require.NoError(t, err)
	require.Equal(t, moderation.AttachReport{Escalate: false}, got)

	got, err = moderation.Policy{Threshold: 4}.Evaluate(open, user)
	require.NoError(t, err)
	require.Equal(t, moderation.AttachReport{Escalate: true}, got)

	// zero threshold falls back to the default of 3
	got, err = moderation.Policy{}.Evaluate(incidenceWith(domain.IncidenceStatusOpen, 2, domain.DecisionNone), user)
	require.NoError(t, err)
	require.Equal(t, moderation.AttachReport{Escalate: true}, got)
}

func TestPolicy_Errors(t *testing.T) {
	policy := moderation.Policy{Threshold: 3}

	_, err := policy.Evaluate(nil, moderation.NewReport{Source: "BOT"})
	require.Error(t, err)

	_, err = policy.Evaluate(incidenceWith("ARCHIVED", 1, domain.DecisionNone),
		moderation.NewReport{Source: domain.ReportSourceUser})
	require.Error(t, err)
}

func TestReject_Err(t *testing.T) {
	err := moderation.Reject{Reason: moderation.ErrPublicationUnderReview}.Err()
	require.ErrorIs(t, err, moderation.ErrPublicationUnderReview)
	require.Equal(t, "PUBLICATION_UNDER_REVIEW", err.Reason().Error())
	require.Equal(t, "CONFLICT", err.Kind().Error())
}
