package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

type stubStudentAPI struct {
	students []models.Student
	cached   bool
	err      error
	deleted  []int64
}

func (s *stubStudentAPI) List(ctx context.Context) ([]models.Student, bool, error) {
	return s.students, s.cached, s.err
}

func (s *stubStudentAPI) Get(ctx context.Context, id int64) (*models.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.students {
		if s.students[i].ID == id {
			return &s.students[i], nil
		}
	}
	return nil, appErrors.ErrNotFound
}

func (s *stubStudentAPI) Create(ctx context.Context, form dto.StudentForm) (*models.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	student := models.Student{ID: 99, FullName: form.FullName, Email: form.Email, Status: form.Status, GPA: form.GPA}
	return &student, nil
}

func (s *stubStudentAPI) Update(ctx context.Context, id int64, form dto.StudentForm) (*models.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	student := models.Student{ID: id, FullName: form.FullName}
	return &student, nil
}

func (s *stubStudentAPI) Delete(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func newStudentTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, recorder
}

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *appErrors.Error `json:"error"`
	Meta  map[string]any   `json:"meta"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return env
}

func TestStudentHandlerList(t *testing.T) {
	api := &stubStudentAPI{students: []models.Student{{ID: 1, FullName: "Alice", GPA: "3.50"}}, cached: true}
	h := NewStudentHandler(api)

	c, recorder := newStudentTestContext(t, http.MethodGet, "/students", "")
	h.List(c)

	require.Equal(t, http.StatusOK, recorder.Code)
	env := decodeEnvelope(t, recorder)
	var rows []models.Student
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].FullName)
	assert.Equal(t, true, env.Meta["cache_hit"])
	assert.Equal(t, "no-store", recorder.Header().Get("Cache-Control"))
}

func TestStudentHandlerCreate(t *testing.T) {
	h := NewStudentHandler(&stubStudentAPI{})

	body := `{"full_name":"Bob","email":"bob@uni.edu","status":"active","gpa":"3.10"}`
	c, recorder := newStudentTestContext(t, http.MethodPost, "/students", body)
	h.Create(c)

	require.Equal(t, http.StatusCreated, recorder.Code)
	env := decodeEnvelope(t, recorder)
	var created models.Student
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(99), created.ID)
	assert.Equal(t, "Bob", created.FullName)
}

func TestStudentHandlerCreateBadJSON(t *testing.T) {
	h := NewStudentHandler(&stubStudentAPI{})

	c, recorder := newStudentTestContext(t, http.MethodPost, "/students", `{"full_name":`)
	h.Create(c)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)
	require.NotNil(t, env.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, env.Error.Code)
}

func TestStudentHandlerGetBadID(t *testing.T) {
	h := NewStudentHandler(&stubStudentAPI{})

	c, recorder := newStudentTestContext(t, http.MethodGet, "/students/abc", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	h.Get(c)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)
	require.NotNil(t, env.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, env.Error.Code)
}

func TestStudentHandlerDelete(t *testing.T) {
	api := &stubStudentAPI{}
	h := NewStudentHandler(api)

	c, recorder := newStudentTestContext(t, http.MethodDelete, "/students/4", "")
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	h.Delete(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, []int64{4}, api.deleted)
}

func TestStudentHandlerUpstreamFailure(t *testing.T) {
	api := &stubStudentAPI{err: appErrors.ErrUpstream}
	h := NewStudentHandler(api)

	c, recorder := newStudentTestContext(t, http.MethodGet, "/students", "")
	h.List(c)

	require.Equal(t, http.StatusBadGateway, recorder.Code)
	env := decodeEnvelope(t, recorder)
	require.NotNil(t, env.Error)
	assert.Equal(t, appErrors.ErrUpstream.Code, env.Error.Code)
}
