package port

import (
	"context"
	"io"
	"time"
)

// UploadInput describes an object to store.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// UploadOutput describes a stored object.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage defines the contract for storing generated export files.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}
