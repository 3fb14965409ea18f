package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Analysis represents one stored optimization run: the input requirement and
// the ranked options it produced, both kept as JSON documents. The documents
// are RawMessage so API responses embed them as JSON rather than base64.
type Analysis struct {
	ID          uuid.UUID       `json:"id"`
	SkillName   string          `json:"skill_name"`
	Level       string          `json:"level"`
	Requirement json.RawMessage `json:"requirement"`
	Result      json.RawMessage `json:"result"`
	Recommended string          `json:"recommended"`
	Source      string          `json:"source"` // "api", "cli" or "backend"
	CreatedAt   time.Time       `json:"created_at"`
}

// AnalysisSummary is the listing row for stored analyses, without the JSON payloads.
type AnalysisSummary struct {
	ID          uuid.UUID `json:"id"`
	SkillName   string    `json:"skill_name"`
	Level       string    `json:"level"`
	Recommended string    `json:"recommended"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// User represents a user account row.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PasswordSet  bool      `json:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
