// internal/infra/firestore/client.go
package firestoreinfra

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ClientWrapper holds a Firestore client and the project it talks to.
type ClientWrapper struct {
	Client    *firestore.Client
	ProjectID string
}

// NewClient opens a Firestore client. An empty credentialsFile uses ADC.
func NewClient(ctx context.Context, projectID, credentialsFile string, log *zap.Logger) (*ClientWrapper, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore: project id is empty")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: create client: %w", err)
	}
	if log != nil {
		log.Info("firestore connected", zap.String("project", projectID))
	}
	return &ClientWrapper{Client: client, ProjectID: projectID}, nil
}

// Ping lists collections; Firestore has no dedicated health call.
func (cw *ClientWrapper) Ping(ctx context.Context) error {
	if cw == nil || cw.Client == nil {
		return fmt.Errorf("firestore: client is nil")
	}
	if _, err := cw.Client.Collections(ctx).GetAll(); err != nil {
		return fmt.Errorf("firestore: ping: %w", err)
	}
	return nil
}

func (cw *ClientWrapper) Close() error {
	if cw == nil || cw.Client == nil {
		return nil
	}
	return cw.Client.Close()
}
