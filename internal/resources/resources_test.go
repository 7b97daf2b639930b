package resources

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/elicitd/internal/records"
)

func readReq(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func textOf(t *testing.T, contents []mcp.ResourceContents) mcp.TextResourceContents {
	t.Helper()
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	return tc
}

type failingStore struct{ records.Store }

func (failingStore) All(context.Context, records.Kind) ([]records.Record, error) {
	return nil, errors.New("database is locked")
}

func TestDefinitions(t *testing.T) {
	h := NewHandler(records.NewMemoryStore())
	assert.Equal(t, "records://users", h.UsersResource().URI)
	assert.Equal(t, "records://jobs", h.JobsResource().URI)
	assert.Equal(t, "application/json", h.UsersResource().MIMEType)
}

func TestHandleUsers(t *testing.T) {
	store := records.NewMemoryStore()
	_, err := records.Seed(context.Background(), store)
	require.NoError(t, err)

	contents, err := NewHandler(store).HandleUsers(context.Background(), readReq(UsersURI))
	require.NoError(t, err)

	tc := textOf(t, contents)
	assert.Equal(t, UsersURI, tc.URI)
	assert.Equal(t, "application/json", tc.MIMEType)
	assert.JSONEq(t,
		`[{"id":1,"name":"John Doe","email":"john@example.com","age":30,"role":"developer"}]`,
		tc.Text)
}

func TestHandleJobs_Empty(t *testing.T) {
	contents, err := NewHandler(records.NewMemoryStore()).HandleJobs(context.Background(), readReq(JobsURI))
	require.NoError(t, err)
	assert.Equal(t, "[]", textOf(t, contents).Text)
}

func TestHandle_StoreError(t *testing.T) {
	contents, err := NewHandler(failingStore{}).HandleJobs(context.Background(), readReq(JobsURI))
	require.NoError(t, err)

	tc := textOf(t, contents)
	assert.Equal(t, "text/plain", tc.MIMEType)
	assert.Contains(t, tc.Text, "Error: ")
	assert.Contains(t, tc.Text, "database is locked")
}
