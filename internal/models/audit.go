package models

import (
	"encoding/json"
	"time"
)

// Audit actions recorded by the gateway.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditEntry records a mutation the gateway dispatched upstream.
type AuditEntry struct {
	ID        string          `db:"id" json:"id"`
	Action    string          `db:"action" json:"action"`
	Entity    string          `db:"entity" json:"entity"`
	ObjectID  *int64          `db:"object_id" json:"object_id"`
	Payload   json.RawMessage `db:"payload" json:"payload,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
