package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hq/uni-admin-gateway/internal/models"
)

func TestDecodeListBareArray(t *testing.T) {
	var students []models.Student
	err := decodeList([]byte(`[{"id":1,"full_name":"A"},{"id":2,"full_name":"B"}]`), &students)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, int64(2), students[1].ID)
}

func TestDecodeListResultsWrapper(t *testing.T) {
	body := []byte(`{"count":1,"next":null,"results":[{"id":1,"full_name":"A","email":"a@x.com","status":"active","gpa":"3.50"}]}`)

	var students []models.Student
	err := decodeList(body, &students)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "3.50", students[0].GPA)
	assert.Equal(t, "active", students[0].Status)
}

func TestDecodeListWrapperWithoutResults(t *testing.T) {
	students := []models.Student{{ID: 99}}
	err := decodeList([]byte(`{"detail":"something"}`), &students)
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestDecodeListNullResults(t *testing.T) {
	var students []models.Student
	err := decodeList([]byte(`{"results":null}`), &students)
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestDecodeListEmptyBody(t *testing.T) {
	var students []models.Student
	err := decodeList(nil, &students)
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestDecodeListMalformed(t *testing.T) {
	var students []models.Student
	assert.Error(t, decodeList([]byte(`{"results": "nope"}`), &students))
}
