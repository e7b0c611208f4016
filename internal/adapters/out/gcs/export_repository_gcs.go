// internal/adapters/out/gcs/export_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// ExportRepositoryGCS uploads generated reports to one bucket.
type ExportRepositoryGCS struct {
	Client     *storage.Client
	BucketName string
}

func NewExportRepositoryGCS(client *storage.Client, bucket string) *ExportRepositoryGCS {
	return &ExportRepositoryGCS{Client: client, BucketName: strings.TrimSpace(bucket)}
}

func (r *ExportRepositoryGCS) Bucket() string { return r.BucketName }

// Upload streams r into bucket/objectPath.
func (r *ExportRepositoryGCS) Upload(ctx context.Context, objectPath, contentType string, src io.Reader) error {
	if r == nil || r.Client == nil {
		return errors.New("export_repository_gcs: storage client is nil")
	}
	if r.BucketName == "" {
		return errors.New("export_repository_gcs: bucket is empty")
	}
	obj, err := cleanObjectPath(objectPath)
	if err != nil {
		return err
	}

	w := r.Client.Bucket(r.BucketName).Object(obj).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	w.ChunkSize = 0
	w.Metadata = map[string]string{
		"uploadedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()
		return fmt.Errorf("export_repository_gcs: write %s: %w", obj, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("export_repository_gcs: close %s: %w", obj, err)
	}
	return nil
}

// PublicURL is where the object is readable when the bucket is public.
func (r *ExportRepositoryGCS) PublicURL(objectPath string) string {
	return publicURL(r.BucketName, objectPath)
}
