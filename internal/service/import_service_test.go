package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

type fakeStudentCreator struct {
	created []dto.StudentForm
	failFor map[string]error
}

func (f *fakeStudentCreator) Create(ctx context.Context, form dto.StudentForm) error {
	if err, ok := f.failFor[form.Email]; ok {
		return err
	}
	f.created = append(f.created, form)
	return nil
}

func TestImportStudentsMixedRows(t *testing.T) {
	creator := &fakeStudentCreator{failFor: map[string]error{
		"bad@uni.edu": appErrors.Clone(appErrors.ErrValidation, "invalid student form"),
	}}
	svc := &ImportService{students: creator}

	csv := "full_name,email,status,gpa\n" +
		"Alice,alice@uni.edu,active,3.50\n" +
		"Bob,bad@uni.edu,active,9.99\n" +
		"Carol, carol@uni.edu ,graduated,3.10\n"

	summary, err := svc.ImportStudents(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.TotalErrors)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "line 3:")

	require.Len(t, creator.created, 2)
	assert.Equal(t, "carol@uni.edu", creator.created[1].Email, "cell whitespace should be trimmed")
}

func TestImportStudentsHeaderValidation(t *testing.T) {
	svc := &ImportService{students: &fakeStudentCreator{}}

	_, err := svc.ImportStudents(context.Background(), strings.NewReader("full_name,email\nAlice,a@uni.edu\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestImportStudentsEmptyFile(t *testing.T) {
	svc := &ImportService{students: &fakeStudentCreator{}}

	_, err := svc.ImportStudents(context.Background(), strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestImportStudentsErrorCap(t *testing.T) {
	failures := map[string]error{}
	var sb strings.Builder
	sb.WriteString("full_name,email,status,gpa\n")
	for i := 0; i < 14; i++ {
		email := fmt.Sprintf("dup%d@uni.edu", i)
		failures[email] = appErrors.Clone(appErrors.ErrValidation, "duplicate email")
		sb.WriteString(fmt.Sprintf("Student %d,%s,active,3.00\n", i, email))
	}
	svc := &ImportService{students: &fakeStudentCreator{failFor: failures}}

	summary, err := svc.ImportStudents(context.Background(), strings.NewReader(sb.String()))
	require.NoError(t, err)

	assert.Equal(t, 14, summary.TotalRows)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 14, summary.TotalErrors)
	assert.Len(t, summary.Errors, importErrorLimit)
}
