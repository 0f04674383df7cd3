package domain_test

import (
	"encoding/json"
	"marketplace/pkg/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIncidenceStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to domain.IncidenceStatus
		want     bool
	}{
		{domain.IncidenceStatusOpen, domain.IncidenceStatusUnderReview, true},
		{domain.IncidenceStatusOpen, domain.IncidenceStatusAppealed, true},
		{domain.IncidenceStatusOpen, domain.IncidenceStatusClosed, true},
		{domain.IncidenceStatusOpen, domain.IncidenceStatusOpen, false},
		{domain.IncidenceStatusUnderReview, domain.IncidenceStatusAppealed, true},
		{domain.IncidenceStatusUnderReview, domain.IncidenceStatusOpen, false},
		{domain.IncidenceStatusUnderReview, domain.IncidenceStatusClosed, false},
		{domain.IncidenceStatusAppealed, domain.IncidenceStatusOpen, false},
		{domain.IncidenceStatusAppealed, domain.IncidenceStatusClosed, false},
		{domain.IncidenceStatusClosed, domain.IncidenceStatusOpen, false},
		{domain.IncidenceStatusClosed, domain.IncidenceStatusUnderReview, false},
		{domain.IncidenceStatus("BOGUS"), domain.IncidenceStatusOpen, false},
	}

	for _, c := range cases {
		t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
			require.Equal(t, c.want, c.from.CanTransitionTo(c.to))
		})
	}
}

func TestIncidenceStatus_Terminal(t *testing.T) {
	require.True(t, domain.IncidenceStatusClosed.Terminal())
	for _, s := range domain.ActiveIncidenceStatuses() {
		require.False(t, s.Terminal(), s)
		require.True(t, s.Valid(), s)
	}
	require.False(t, domain.IncidenceStatus("").Valid())
}

func TestDecision_Valid(t *testing.T) {
	require.True(t, domain.DecisionAccepted.Valid())
	require.True(t, domain.DecisionRejected.Valid())
	require.False(t, domain.DecisionNone.Valid())
	require.False(t, domain.Decision("MAYBE").Valid())
}

func TestIncidence_Helpers(t *testing.T) {
	moderator := domain.UserID(uuid.New())
	other := domain.UserID(uuid.New())

	inc := domain.Incidence{Status: domain.IncidenceStatusOpen}
	require.False(t, inc.Claimed())
	require.False(t, inc.Decided())
	require.False(t, inc.Appealed())
	require.False(t, inc.ClaimedBy(moderator))

	inc.ModeratorID = &moderator
	inc.Decision = domain.DecisionAccepted
	require.True(t, inc.Claimed())
	require.True(t, inc.ClaimedBy(moderator))
	require.False(t, inc.ClaimedBy(other))
	require.True(t, inc.Decided())

	inc.AppealedAt = time.Now()
	require.True(t, inc.Appealed())
}

func TestReportEnums_Valid(t *testing.T) {
	require.True(t, domain.ReportSourceUser.Valid())
	require.True(t, domain.ReportSourceSystem.Valid())
	require.False(t, domain.ReportSource("BOT").Valid())
	require.True(t, domain.ReportReasonScam.Valid())
	require.False(t, domain.ReportReason("").Valid())
}

func TestUser_FullName(t *testing.T) {
	require.Equal(t, "Ada Lovelace", domain.User{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	require.Equal(t, "Ada", domain.User{FirstName: "Ada"}.FullName())
}

func TestIDs_JSON(t *testing.T) {
	id := domain.IncidenceID(uuid.MustParse("2f6a4c1e-8d4b-4d7e-9f0a-3b5c6d7e8f90"))
	b, err := json.Marshal(struct {
		ID  domain.IncidenceID `json:"id"`
		Mod *domain.UserID     `json:"mod"`
	}{ID: id})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"2f6a4c1e-8d4b-4d7e-9f0a-3b5c6d7e8f90","mod":null}`, string(b))

	var out struct {
		ID domain.PublicationID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"2f6a4c1e-8d4b-4d7e-9f0a-3b5c6d7e8f90"}`), &out))
	require.Equal(t, id.String(), out.ID.String())

	require.Error(t, json.Unmarshal([]byte(`{"id":"nope"}`), &out))
}
