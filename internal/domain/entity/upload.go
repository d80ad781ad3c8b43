package entity

import (
	"time"
)

// Upload records one stored image so its owner can list and remove it later.
type Upload struct {
	ID          string    `json:"id" firestore:"id"`
	URL         string    `json:"url" firestore:"url"`
	Folder      string    `json:"folder" firestore:"folder"`
	UploadedBy  string    `json:"uploaded_by" firestore:"uploadedBy"`
	Filename    string    `json:"filename" firestore:"filename"`
	ContentType string    `json:"content_type" firestore:"contentType"`
	Size        int64     `json:"size" firestore:"size"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
