package upstream

import (
	"context"
	"fmt"
	"strings"
)

// Collection is the CRUD surface of a single upstream collection endpoint.
// Paths keep the upstream's trailing-slash convention: the collection lives
// at "students/" and item 42 at "students/42/".
type Collection struct {
	client *Client
	path   string
}

// NewCollection binds a client to one collection path.
func NewCollection(client *Client, path string) *Collection {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return &Collection{client: client, path: path}
}

// Path returns the collection path relative to the API base.
func (c *Collection) Path() string {
	return c.path
}

// List fetches every record into dest, a pointer to a slice.
func (c *Collection) List(ctx context.Context, dest any) error {
	return c.client.GetList(ctx, c.path, dest)
}

// Get fetches a single record by id.
func (c *Collection) Get(ctx context.Context, id int64, dest any) error {
	return c.client.Get(ctx, c.itemPath(id), dest)
}

// Create posts a new record, decoding the upstream's echo into dest when
// dest is non-nil.
func (c *Collection) Create(ctx context.Context, payload, dest any) error {
	return c.client.Post(ctx, c.path, payload, dest)
}

// Update replaces the record with the given id.
func (c *Collection) Update(ctx context.Context, id int64, payload, dest any) error {
	return c.client.Put(ctx, c.itemPath(id), payload, dest)
}

// Delete removes the record with the given id.
func (c *Collection) Delete(ctx context.Context, id int64) error {
	return c.client.Delete(ctx, c.itemPath(id))
}

func (c *Collection) itemPath(id int64) string {
	return fmt.Sprintf("%s%d/", c.path, id)
}
