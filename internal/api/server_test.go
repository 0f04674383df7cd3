package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"marketplace/internal/api"
	"marketplace/internal/api/handler/v1handler"
	"marketplace/internal/moderation"
	mockmoderation "marketplace/internal/moderation/mock"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type serverFixture struct {
	srv     *httptest.Server
	service *mockmoderation.MockService
	priv    *rsa.PrivateKey
}

func newServerFixture(t *testing.T, pprof bool) *serverFixture {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	service := mockmoderation.NewMockService(ctrl)

	server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Moderation: service}}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
		},
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
		EnablePprof:    pprof,
		Registry:       prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(server.Handler)
	t.Cleanup(srv.Close)

	return &serverFixture{srv: srv, service: service, priv: priv}
}

func (f *serverFixture) token(t *testing.T, roles ...domain.Role) string {
	t.Helper()
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, v1handler.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Roles: roles,
	}).SignedString(f.priv)
	require.NoError(t, err)

	return signed
}

func (f *serverFixture) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(f.srv.URL + path) //nolint: noctx
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestServer_Specs(t *testing.T) {
	f := newServerFixture(t, false)

	resp, body := f.get(t, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))
	require.Contains(t, body, "/incidences/{id}/claim")

	resp, body = f.get(t, "/v1/docs/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Marketplace Moderation Service")
}

func TestServer_RouteMetrics(t *testing.T) {
	f := newServerFixture(t, false)

	f.service.EXPECT().UnreviewedIncidences(gomock.Any(), moderation.Page{}).
		Return(&moderation.IncidencePage{Items: []moderation.IncidenceDetails{}, Size: 10}, nil)

	req, err := http.NewRequest(http.MethodGet, f.srv.URL+"/v1/incidences/unreviewed", nil) //nolint: noctx
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+f.token(t, domain.RoleModerator))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, body := f.get(t, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "http_server_request_duration")
	require.True(t, strings.Contains(body, `http_route="GET /v1/incidences/unreviewed"`), body)
}

func TestServer_Unauthenticated(t *testing.T) {
	f := newServerFixture(t, false)

	resp, body := f.get(t, "/v1/incidences/reviewed")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, body, `"code":"UNAUTHORIZED"`)
}

func TestServer_Pprof(t *testing.T) {
	resp, _ := newServerFixture(t, false).get(t, "/debug/pprof/")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = newServerFixture(t, true).get(t, "/debug/pprof/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
