package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents an extraction job for data transfer between layers.
type ExtractJob struct {
	ID            uuid.UUID       `json:"id"`
	FileID        uuid.UUID       `json:"file_id"`
	ContractID    *uuid.UUID      `json:"contract_id,omitempty"`
	Format        string          `json:"format"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        *string         `json:"status,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	NeedsReview   bool            `json:"needs_review"`
	PageTokens    json.RawMessage `json:"page_tokens,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
}

// ContractFile represents an uploaded scan for data transfer between layers.
type ContractFile struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	PageCount  int       `json:"page_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}
