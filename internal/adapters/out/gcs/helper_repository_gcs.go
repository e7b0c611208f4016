// internal/adapters/out/gcs/helper_repository_gcs.go
package gcs

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// cleanObjectPath sanitizes every segment and rejects empty or traversing paths.
func cleanObjectPath(p string) (string, error) {
	raw := strings.Split(strings.TrimLeft(strings.TrimSpace(p), "/"), "/")
	parts := make([]string, 0, len(raw))
	for _, seg := range raw {
		s := sanitizePathSegment(seg)
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "", errors.New("gcs: object path is empty")
	}
	return strings.Join(parts, "/"), nil
}

// sanitizePathSegment drops separators and leading/trailing dots and spaces.
func sanitizePathSegment(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return strings.Trim(s, ". ")
}

func publicURL(bucket, objectPath string) string {
	parts := strings.Split(strings.TrimLeft(objectPath, "/"), "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, strings.Join(parts, "/"))
}
