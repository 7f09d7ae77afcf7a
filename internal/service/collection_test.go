package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-hq/uni-admin-gateway/internal/models"
	"github.com/campus-hq/uni-admin-gateway/internal/repository"
)

type fakeCollectionClient struct {
	rows      []models.Student
	listCalls int
	nextID    int64
}

func (f *fakeCollectionClient) List(ctx context.Context, dest any) error {
	f.listCalls++
	data, _ := json.Marshal(f.rows)
	return json.Unmarshal(data, dest)
}

func (f *fakeCollectionClient) Get(ctx context.Context, id int64, dest any) error {
	for _, row := range f.rows {
		if row.ID == id {
			data, _ := json.Marshal(row)
			return json.Unmarshal(data, dest)
		}
	}
	return nil
}

func (f *fakeCollectionClient) Create(ctx context.Context, payload, dest any) error {
	f.nextID++
	data, _ := json.Marshal(payload)
	var row models.Student
	_ = json.Unmarshal(data, &row)
	row.ID = f.nextID
	f.rows = append(f.rows, row)
	if dest != nil {
		echo, _ := json.Marshal(row)
		return json.Unmarshal(echo, dest)
	}
	return nil
}

func (f *fakeCollectionClient) Update(ctx context.Context, id int64, payload, dest any) error {
	return nil
}

func (f *fakeCollectionClient) Delete(ctx context.Context, id int64) error {
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

type recordedMutation struct {
	action   string
	entity   string
	objectID *int64
}

type fakeRecorder struct {
	records []recordedMutation
}

func (f *fakeRecorder) Record(ctx context.Context, action, entity string, objectID *int64, payload any) {
	f.records = append(f.records, recordedMutation{action: action, entity: entity, objectID: objectID})
}

func newTestCacheService(enabled bool) *CacheService {
	return NewCacheService(repository.NewMemoryCacheRepository(), nil, time.Minute, zap.NewNop(), enabled)
}

func TestCollectionListCachesSnapshot(t *testing.T) {
	upstream := &fakeCollectionClient{rows: []models.Student{{ID: 1, FullName: "A"}}}
	col := NewCollectionService("students", upstream, newTestCacheService(true), nil, time.Minute, zap.NewNop())

	var first []models.Student
	cached, err := col.List(context.Background(), &first)
	require.NoError(t, err)
	assert.False(t, cached)
	require.Len(t, first, 1)

	var second []models.Student
	cached, err = col.List(context.Background(), &second)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, upstream.listCalls)
}

func TestCollectionListCacheDisabled(t *testing.T) {
	upstream := &fakeCollectionClient{}
	col := NewCollectionService("students", upstream, newTestCacheService(false), nil, time.Minute, zap.NewNop())

	var rows []models.Student
	for i := 0; i < 2; i++ {
		cached, err := col.List(context.Background(), &rows)
		require.NoError(t, err)
		assert.False(t, cached)
	}
	assert.Equal(t, 2, upstream.listCalls)
}

func TestCollectionCreateSettlesCache(t *testing.T) {
	upstream := &fakeCollectionClient{}
	col := NewCollectionService("students", upstream, newTestCacheService(true), nil, time.Minute, zap.NewNop())

	var rows []models.Student
	_, err := col.List(context.Background(), &rows)
	require.NoError(t, err)
	require.Empty(t, rows)

	var created models.Student
	require.NoError(t, col.Create(context.Background(), models.Student{FullName: "New"}, &created))
	assert.Equal(t, int64(1), created.ID)

	// the fresh snapshot was fetched during the mutation, so the next
	// read is a cache hit that already includes the new record
	var after []models.Student
	cached, err := col.List(context.Background(), &after)
	require.NoError(t, err)
	assert.True(t, cached)
	require.Len(t, after, 1)
	assert.Equal(t, "New", after[0].FullName)
}

func TestCollectionMutationInvalidatesOwnTagOnly(t *testing.T) {
	cacheSvc := newTestCacheService(true)
	students := &fakeCollectionClient{}
	teachers := &fakeCollectionClient{rows: []models.Student{{ID: 9}}}
	studentsCol := NewCollectionService("students", students, cacheSvc, nil, time.Minute, zap.NewNop())
	teachersCol := NewCollectionService("teachers", teachers, cacheSvc, nil, time.Minute, zap.NewNop())

	var rows []models.Student
	_, err := studentsCol.List(context.Background(), &rows)
	require.NoError(t, err)
	_, err = teachersCol.List(context.Background(), &rows)
	require.NoError(t, err)
	require.Equal(t, 1, teachers.listCalls)

	require.NoError(t, studentsCol.Create(context.Background(), models.Student{FullName: "X"}, nil))

	cached, err := teachersCol.List(context.Background(), &rows)
	require.NoError(t, err)
	assert.True(t, cached, "sibling collection snapshot must survive the mutation")
	assert.Equal(t, 1, teachers.listCalls)
}

func TestCollectionDeleteRecordsAudit(t *testing.T) {
	upstream := &fakeCollectionClient{rows: []models.Student{{ID: 4}}}
	recorder := &fakeRecorder{}
	col := NewCollectionService("students", upstream, newTestCacheService(true), recorder, time.Minute, zap.NewNop())

	require.NoError(t, col.Delete(context.Background(), 4))

	require.Len(t, recorder.records, 1)
	assert.Equal(t, "delete", recorder.records[0].action)
	assert.Equal(t, "students", recorder.records[0].entity)
	require.NotNil(t, recorder.records[0].objectID)
	assert.Equal(t, int64(4), *recorder.records[0].objectID)
}

func TestCollectionWarmReplacesSnapshot(t *testing.T) {
	upstream := &fakeCollectionClient{}
	col := NewCollectionService("students", upstream, newTestCacheService(true), nil, time.Minute, zap.NewNop())

	var rows []models.Student
	_, err := col.List(context.Background(), &rows)
	require.NoError(t, err)

	upstream.rows = []models.Student{{ID: 1, FullName: "Fresh"}}
	require.NoError(t, col.Warm(context.Background()))

	cached, err := col.List(context.Background(), &rows)
	require.NoError(t, err)
	assert.True(t, cached)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fresh", rows[0].FullName)
}
