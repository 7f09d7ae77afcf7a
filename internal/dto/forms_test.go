package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeacherPayloadNullDepartment(t *testing.T) {
	form := TeacherForm{FullName: "Dr. Smith", Position: "professor", Department: ""}

	payload, err := form.Payload()
	require.NoError(t, err)
	assert.Nil(t, payload.Department)

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"department":null`, "unassigned foreign keys must serialize as explicit null")
}

func TestTeacherPayloadNumericDepartment(t *testing.T) {
	form := TeacherForm{FullName: "Dr. Smith", Position: "lecturer", Department: " 7 "}

	payload, err := form.Payload()
	require.NoError(t, err)
	require.NotNil(t, payload.Department)
	assert.Equal(t, int64(7), *payload.Department)
}

func TestTeacherPayloadBadDepartment(t *testing.T) {
	form := TeacherForm{FullName: "Dr. Smith", Position: "lecturer", Department: "history"}

	_, err := form.Payload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "department")
}

func TestCoursePayloadCoercion(t *testing.T) {
	form := CourseForm{Name: "Algebra", Credits: "4", Teacher: "12"}

	payload, err := form.Payload()
	require.NoError(t, err)
	assert.Equal(t, 4, payload.Credits)
	require.NotNil(t, payload.Teacher)
	assert.Equal(t, int64(12), *payload.Teacher)
}

func TestCoursePayloadNullTeacher(t *testing.T) {
	form := CourseForm{Name: "Algebra", Credits: "3"}

	payload, err := form.Payload()
	require.NoError(t, err)

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"teacher":null`)
}

func TestCoursePayloadBadCredits(t *testing.T) {
	form := CourseForm{Name: "Algebra", Credits: "many"}

	_, err := form.Payload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credits")
}

func TestPaymentPayloadDefaults(t *testing.T) {
	form := PaymentForm{Student: "3", Amount: "120.50"}

	payload, err := form.Payload()
	require.NoError(t, err)
	assert.Equal(t, int64(3), payload.Student)
	assert.Equal(t, 120.50, payload.Amount)
	assert.Equal(t, "pending", payload.Status)
}

func TestPaymentPayloadBadStudent(t *testing.T) {
	form := PaymentForm{Student: "", Amount: "10"}

	_, err := form.Payload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "student")
}
