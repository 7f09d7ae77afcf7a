package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hq/uni-admin-gateway/internal/models"
	"github.com/campus-hq/uni-admin-gateway/pkg/config"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Access() string { return s.token }

func newTestClient(t *testing.T, tokens *staticTokens, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(config.UpstreamConfig{BaseURL: srv.URL + "/api/"}, tokens, nil, nil)
	return client, srv
}

func mintToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return signed
}

func TestClientAttachesBearerWhenTokenPresent(t *testing.T) {
	tokens := &staticTokens{token: mintToken(t)}
	var gotAuth string
	client, _ := newTestClient(t, tokens, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`)) //nolint:errcheck
	})

	var students []models.Student
	require.NoError(t, client.GetList(context.Background(), "students/", &students))
	assert.Equal(t, "Bearer "+tokens.token, gotAuth)
}

func TestClientOmitsBearerWhenTokenAbsent(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, &staticTokens{}, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`)) //nolint:errcheck
	})

	var students []models.Student
	require.NoError(t, client.GetList(context.Background(), "students/", &students))
	assert.Empty(t, gotAuth)
}

func TestClientReadsTokenOnEveryRequest(t *testing.T) {
	tokens := &staticTokens{}
	var auths []string
	client, _ := newTestClient(t, tokens, func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`)) //nolint:errcheck
	})

	var students []models.Student
	require.NoError(t, client.GetList(context.Background(), "students/", &students))

	tokens.token = "fresh"
	require.NoError(t, client.GetList(context.Background(), "students/", &students))

	require.Len(t, auths, 2)
	assert.Empty(t, auths[0])
	assert.Equal(t, "Bearer fresh", auths[1])
}

func TestClientKeepsTrailingSlashPaths(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, &staticTokens{}, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"id":42}`)) //nolint:errcheck
	})

	col := NewCollection(client, "students/")
	var students []models.Student
	_ = col.List(context.Background(), &students)
	var student models.Student
	require.NoError(t, col.Get(context.Background(), 42, &student))
	require.NoError(t, col.Update(context.Background(), 42, map[string]string{}, nil))
	require.NoError(t, col.Delete(context.Background(), 42))

	assert.Equal(t, []string{"/api/students/", "/api/students/42/", "/api/students/42/", "/api/students/42/"}, paths)
}

func TestClientStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   *appErrors.Error
	}{
		{http.StatusUnauthorized, appErrors.ErrUnauthorized},
		{http.StatusForbidden, appErrors.ErrForbidden},
		{http.StatusNotFound, appErrors.ErrNotFound},
		{http.StatusBadRequest, appErrors.ErrValidation},
		{http.StatusInternalServerError, appErrors.ErrUpstream},
		{http.StatusBadGateway, appErrors.ErrUpstream},
	}

	for _, tc := range cases {
		client, _ := newTestClient(t, &staticTokens{}, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"detail":"nope"}`)) //nolint:errcheck
		})

		err := client.Get(context.Background(), "students/1/", &models.Student{})
		require.Error(t, err, "status %d", tc.status)
		assert.True(t, errors.Is(err, tc.want), "status %d should map to %s", tc.status, tc.want.Code)
	}
}

func TestClientConnectionFailure(t *testing.T) {
	client := NewClient(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1/api/"}, &staticTokens{}, nil, nil)

	err := client.Get(context.Background(), "students/", &[]models.Student{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrUpstream))
}

func TestObtainToken(t *testing.T) {
	access := mintToken(t)
	client, _ := newTestClient(t, &staticTokens{}, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/token/", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["username"] != "admin" || creds["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"No active account found"}`)) //nolint:errcheck
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access": access, "refresh": "refresh-token"}) //nolint:errcheck
	})

	pair, err := client.ObtainToken(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, access, pair.Access)
	assert.Equal(t, "refresh-token", pair.Refresh)

	_, err = client.ObtainToken(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidCredentials))
}

func TestReportFetchesExtractNamedMember(t *testing.T) {
	client, _ := newTestClient(t, &staticTokens{}, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/reports/top-5-students/":
			w.Write([]byte(`{"top_5":[{"id":1,"full_name":"A","gpa":"4.00"}]}`)) //nolint:errcheck
		case "/api/reports/debtors/":
			w.Write([]byte(`{"debtors":[]}`)) //nolint:errcheck
		case "/api/reports/students-above-average/":
			w.Write([]byte(`{}`)) //nolint:errcheck
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	top, err := client.TopStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "4.00", top[0].GPA)

	debtors, err := client.Debtors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, debtors)
	assert.Empty(t, debtors)

	above, err := client.StudentsAboveAverage(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, above)
	assert.Empty(t, above)
}
