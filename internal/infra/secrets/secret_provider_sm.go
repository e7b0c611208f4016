// internal/infra/secrets/secret_provider_sm.go
package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrSecretNotConfigured = errors.New("secret_provider: not configured")
	ErrSecretNotFound      = errors.New("secret_provider: secret not found")
)

type versionAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

// ProviderSM reads credentials (SendGrid key, DB password) from Secret Manager.
type ProviderSM struct {
	client    versionAccessor
	ProjectID string
}

func NewProviderSM(ctx context.Context, projectID string) (*ProviderSM, error) {
	pid := strings.TrimSpace(projectID)
	if pid == "" {
		return nil, fmt.Errorf("%w: projectID is empty", ErrSecretNotConfigured)
	}
	c, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &ProviderSM{client: c, ProjectID: pid}, nil
}

// ResourceName accepts a bare secret id or a full resource path.
// Bare ids resolve to the latest version.
func (p *ProviderSM) ResourceName(secret string) string {
	s := strings.TrimSpace(secret)
	switch {
	case strings.HasPrefix(s, "projects/") && strings.Contains(s, "/versions/"):
		return s
	case strings.HasPrefix(s, "projects/"):
		return s + "/versions/latest"
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", p.ProjectID, s)
}

func (p *ProviderSM) Get(ctx context.Context, secret string) (string, error) {
	if p == nil || p.client == nil {
		return "", ErrSecretNotConfigured
	}
	if strings.TrimSpace(secret) == "" {
		return "", fmt.Errorf("%w: empty secret name", ErrSecretNotConfigured)
	}

	res, err := p.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: p.ResourceName(secret),
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, secret)
		}
		return "", err
	}
	if res == nil || res.Payload == nil {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, secret)
	}
	v := strings.TrimSpace(string(res.Payload.Data))
	if v == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrSecretNotFound, secret)
	}
	return v, nil
}

func (p *ProviderSM) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}
