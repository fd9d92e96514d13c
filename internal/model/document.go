package model

import "time"

// BusinessDocument is a file stored for a business. The object lives in
// object storage; this is its metadata row.
type BusinessDocument struct {
	DocumentID  string    `json:"document_id"`
	BusinessID  int64     `json:"business_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedBy  int64     `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	URL         string    `json:"url,omitempty"`
}
