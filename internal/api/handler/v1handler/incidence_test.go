package v1handler_test

import (
	"crypto/rsa"
	"encoding/json"
	"errors"
	"marketplace/internal/api/handler/v1handler"
	"marketplace/internal/api/specs/v1specs"
	"marketplace/internal/moderation"
	mockmoderation "marketplace/internal/moderation/mock"
	"marketplace/pkg/domain"
	"marketplace/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiFixture struct {
	srv     *v1specs.Server
	service *mockmoderation.MockService
	priv    *rsa.PrivateKey
	userID  uuid.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mockmoderation.NewMockService(ctrl)

	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	srv, err := v1specs.NewServer(v1handler.New(v1handler.Deps{Moderation: service}),
		sh,
		v1specs.WithPathPrefix("/v1"),
		v1specs.WithMiddleware(v1handler.LogOperation))
	require.NoError(t, err)

	return &apiFixture{srv: srv, service: service, priv: priv, userID: uuid.New()}
}

func (f *apiFixture) do(t *testing.T, method, target, body string, roles ...domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	now := time.Now()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+signJWTRS256(t, f.priv, f.userID.String(), now, now.Add(time.Hour), roles...))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func TestReportByUser(t *testing.T) {
	f := newAPIFixture(t)
	publicationID := uuid.New()
	incidenceID := uuid.New()

	f.service.EXPECT().ReportByUser(gomock.Any(), moderation.UserReport{
		PublicationID: domain.PublicationID(publicationID),
		ReporterID:    domain.UserID(f.userID),
		Reason:        domain.ReportReasonScam,
		Comment:       "asks for payment outside the platform",
	}).Return(&moderation.ReportOutcome{
		IncidenceID:   domain.IncidenceID(incidenceID),
		PublicationID: domain.PublicationID(publicationID),
		Status:        domain.IncidenceStatusOpen,
		Message:       "report received",
	}, nil)

	rec := f.do(t, http.MethodPost, "/v1/incidences/report",
		`{"publicationId":"`+publicationID.String()+`","reason":"SCAM","comment":"asks for payment outside the platform"}`,
		domain.RoleBuyer)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	out := decodeBody[v1specs.ReportOutcome](t, rec)
	require.Equal(t, incidenceID, out.IncidenceId)
	require.Equal(t, v1specs.IncidenceStatusOPEN, out.Status)
}

func TestReportByUser_Rejected(t *testing.T) {
	f := newAPIFixture(t)
	publicationID := uuid.New()

	f.service.EXPECT().ReportByUser(gomock.Any(), gomock.Any()).Return(nil,
		serrors.WithReason(serrors.ErrConflict, moderation.ErrPublicationUnderReview, "publication is under review"))

	rec := f.do(t, http.MethodPost, "/v1/incidences/report",
		`{"publicationId":"`+publicationID.String()+`","reason":"SPAM"}`, domain.RoleSeller)
	require.Equal(t, http.StatusConflict, rec.Code)

	out := decodeBody[v1specs.Error](t, rec)
	require.Equal(t, "PUBLICATION_UNDER_REVIEW", out.Code)
	require.Equal(t, "publication is under review", out.Message)
}

func TestReportByUser_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "empty body", body: ``},
		{name: "trailing data", body: `{"publicationId":"` + uuid.NewString() + `","reason":"SCAM"} {}`},
		{name: "missing publication", body: `{"reason":"SCAM"}`},
		{name: "bad publication id", body: `{"publicationId":"nope","reason":"SCAM"}`},
		{name: "unknown reason", body: `{"publicationId":"` + uuid.NewString() + `","reason":"BORING"}`},
		{name: "comment too long", body: `{"publicationId":"` + uuid.NewString() + `","reason":"SCAM","comment":"` +
			strings.Repeat("x", 2001) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			rec := f.do(t, http.MethodPost, "/v1/incidences/report", tt.body, domain.RoleBuyer)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			require.Equal(t, "BAD_REQUEST", decodeBody[v1specs.Error](t, rec).Code)
		})
	}
}

func TestReportByUser_ModeratorForbidden(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/incidences/report",
		`{"publicationId":"`+uuid.NewString()+`","reason":"SCAM"}`, domain.RoleModerator)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReportBySystem(t *testing.T) {
	f := newAPIFixture(t)
	publicationID := uuid.New()

	f.service.EXPECT().ReportBySystem(gomock.Any(), moderation.SystemReport{
		PublicationID: domain.PublicationID(publicationID),
		Reason:        domain.ReportReasonDangerousContent,
		Comment:       "flagged",
	}).Return(&moderation.ReportOutcome{Status: domain.IncidenceStatusUnderReview}, nil)

	rec := f.do(t, http.MethodPost, "/v1/incidences/system-report",
		`{"publicationId":"`+publicationID.String()+`","reason":"DANGEROUS_CONTENT","comment":"flagged"}`,
		domain.RoleAdmin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, v1specs.IncidenceStatusUNDERREVIEW, decodeBody[v1specs.ReportOutcome](t, rec).Status)

	rec = f.do(t, http.MethodPost, "/v1/incidences/system-report",
		`{"publicationId":"`+publicationID.String()+`","reason":"DANGEROUS_CONTENT"}`, domain.RoleBuyer)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnreviewedIncidences(t *testing.T) {
	f := newAPIFixture(t)

	f.service.EXPECT().UnreviewedIncidences(gomock.Any(), moderation.Page{Number: 2, Size: 5}).
		Return(&moderation.IncidencePage{Items: []moderation.IncidenceDetails{}, Number: 2, Size: 5, Total: 11}, nil)

	rec := f.do(t, http.MethodGet, "/v1/incidences/unreviewed?page=2&size=5", "", domain.RoleModerator)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	out := decodeBody[v1specs.IncidencePage](t, rec)
	require.Equal(t, int64(11), out.Total)
	require.Equal(t, 5, out.Size)
}

func TestUnreviewedIncidences_InvalidPage(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/incidences/unreviewed?page=-1", "", domain.RoleModerator)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewedIncidences(t *testing.T) {
	f := newAPIFixture(t)

	f.service.EXPECT().ReviewedIncidences(gomock.Any(), domain.UserID(f.userID), moderation.Page{}).
		Return(&moderation.IncidencePage{Items: []moderation.IncidenceDetails{}, Size: 10}, nil)

	rec := f.do(t, http.MethodGet, "/v1/incidences/reviewed", "", domain.RoleModerator)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestClaim(t *testing.T) {
	f := newAPIFixture(t)
	incidenceID := uuid.New()

	f.service.EXPECT().Claim(gomock.Any(), domain.IncidenceID(incidenceID), domain.UserID(f.userID)).
		Return(&moderation.ClaimOutcome{
			IncidenceID:   domain.IncidenceID(incidenceID),
			ModeratorID:   domain.UserID(f.userID),
			ModeratorName: "Mia Mod",
		}, nil)

	rec := f.do(t, http.MethodPost, "/v1/incidences/"+incidenceID.String()+"/claim", "", domain.RoleModerator)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "Mia Mod", decodeBody[v1specs.ClaimOutcome](t, rec).ModeratorName)
}

func TestClaim_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "not found",
			err:    serrors.WithReason(serrors.ErrNotFound, moderation.ErrIncidenceNotFound, "incidence not found"),
			status: http.StatusNotFound,
			code:   "INCIDENCE_NOT_FOUND",
		},
		{
			name:   "already claimed",
			err:    serrors.WithReason(serrors.ErrConflict, moderation.ErrIncidenceAlreadyClaimed, "already claimed"),
			status: http.StatusConflict,
			code:   "INCIDENCE_ALREADY_CLAIMED",
		},
		{
			name:   "storage failure",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
			code:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.service.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := f.do(t, http.MethodPost, "/v1/incidences/"+uuid.NewString()+"/claim", "", domain.RoleModerator)
			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, tt.code, decodeBody[v1specs.Error](t, rec).Code)
		})
	}
}

func TestClaim_InvalidID(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/incidences/42/claim", "", domain.RoleModerator)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMakeDecision(t *testing.T) {
	f := newAPIFixture(t)
	incidenceID := uuid.New()

	f.service.EXPECT().MakeDecision(gomock.Any(), domain.IncidenceID(incidenceID), domain.UserID(f.userID),
		domain.DecisionAccepted).
		Return(&moderation.DecisionOutcome{
			IncidenceID: domain.IncidenceID(incidenceID),
			Decision:    domain.DecisionAccepted,
			Status:      domain.IncidenceStatusOpen,
		}, nil)

	rec := f.do(t, http.MethodPost, "/v1/incidences/"+incidenceID.String()+"/decision",
		`{"decision":"ACCEPTED"}`, domain.RoleModerator)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, v1specs.DecisionACCEPTED, decodeBody[v1specs.DecisionOutcome](t, rec).Decision)

	rec = f.do(t, http.MethodPost, "/v1/incidences/"+incidenceID.String()+"/decision",
		`{"decision":"MAYBE"}`, domain.RoleModerator)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppeal(t *testing.T) {
	f := newAPIFixture(t)
	incidenceID := uuid.New()

	f.service.EXPECT().Appeal(gomock.Any(), domain.IncidenceID(incidenceID), domain.UserID(f.userID),
		"the item is a replica").
		Return(&moderation.AppealOutcome{
			IncidenceID: domain.IncidenceID(incidenceID),
			Status:      domain.IncidenceStatusAppealed,
		}, nil)

	rec := f.do(t, http.MethodPost, "/v1/incidences/"+incidenceID.String()+"/appeal",
		`{"argument":"the item is a replica"}`, domain.RoleSeller)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, v1specs.IncidenceStatusAPPEALED, decodeBody[v1specs.AppealOutcome](t, rec).Status)
}

func TestAppeal_NotOwner(t *testing.T) {
	f := newAPIFixture(t)

	f.service.EXPECT().Appeal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.WithReason(serrors.ErrForbidden, moderation.ErrNotPublicationOwner, "not the owner"))

	rec := f.do(t, http.MethodPost, "/v1/incidences/"+uuid.NewString()+"/appeal",
		`{"argument":"mine"}`, domain.RoleSeller)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "NOT_PUBLICATION_OWNER", decodeBody[v1specs.Error](t, rec).Code)
}

func TestRequestContentCheck(t *testing.T) {
	f := newAPIFixture(t)
	publicationID := uuid.New()

	f.service.EXPECT().RequestContentCheck(gomock.Any(), domain.PublicationID(publicationID)).Return(true, nil)

	rec := f.do(t, http.MethodPost, "/v1/publications/"+publicationID.String()+"/content-check", "", domain.RoleAdmin)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	out := decodeBody[v1specs.ContentCheckOutcome](t, rec)
	require.True(t, out.Enqueued)
	require.Equal(t, publicationID, out.PublicationId)
}

func TestUnreviewedIncidences_Details(t *testing.T) {
	f := newAPIFixture(t)
	moderatorID := domain.UserID(uuid.New())
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	f.service.EXPECT().UnreviewedIncidences(gomock.Any(), moderation.Page{}).
		Return(&moderation.IncidencePage{
			Items: []moderation.IncidenceDetails{{
				ID:           domain.IncidenceID(uuid.New()),
				Status:       domain.IncidenceStatusUnderReview,
				Decision:     domain.DecisionRejected,
				CreatedAt:    createdAt,
				LastReportAt: createdAt,
				ModeratorID:  &moderatorID,
				Publication:  moderation.PublicationSummary{Name: "Bike", Status: domain.PublicationStatusVisible},
				Reports: []moderation.ReportDetails{{
					Reason:   domain.ReportReasonSpam,
					Source:   domain.ReportSourceUser,
					Reporter: moderation.ReporterSummary{FirstName: "Ana"},
				}},
			}},
			Size:  10,
			Total: 1,
		}, nil)

	rec := f.do(t, http.MethodGet, "/v1/incidences/unreviewed", "", domain.RoleModerator)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	out := decodeBody[v1specs.IncidencePage](t, rec)
	require.Len(t, out.Items, 1)
	item := out.Items[0]
	require.Equal(t, v1specs.IncidenceStatusUNDERREVIEW, item.Status)
	require.Equal(t, v1specs.NewOptDecision(v1specs.DecisionREJECTED), item.Decision)
	require.Equal(t, v1specs.NewOptUUID(uuid.UUID(moderatorID)), item.ModeratorId)
	require.True(t, createdAt.Equal(item.CreatedAt))
	require.Equal(t, "Bike", item.Publication.Name)
	require.Len(t, item.Reports, 1)
	require.Equal(t, v1specs.ReportReasonSPAM, item.Reports[0].Reason)
	require.Equal(t, "Ana", item.Reports[0].Reporter.FirstName)
}

func TestRouting(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/incidences/report", "", domain.RoleBuyer)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "POST", rec.Header().Get("Allow"))

	rec = f.do(t, http.MethodGet, "/v1/incidences/"+uuid.NewString()+"/history", "", domain.RoleModerator)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/v2/incidences/unreviewed", "", domain.RoleModerator)
	require.Equal(t, http.StatusNotFound, rec.Code)

	route, ok := f.srv.FindRoute(http.MethodPost, "/v1/incidences/"+uuid.NewString()+"/claim")
	require.True(t, ok)
	require.Equal(t, v1specs.ClaimIncidenceOperation, route.Name())
	require.Equal(t, "/incidences/{id}/claim", route.PathPattern())
}

func TestMissingToken(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/incidences/reviewed", nil)
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	out := decodeBody[v1specs.Error](t, rec)
	require.Equal(t, "UNAUTHORIZED", out.Code)
	require.Equal(t, "missing bearer token", out.Message)
}
