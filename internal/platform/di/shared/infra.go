// internal/platform/di/shared/infra.go
package shared

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	kafkaout "storefront/internal/adapters/out/kafka"
	mailout "storefront/internal/adapters/out/mail"
	appcfg "storefront/internal/infra/config"
	"storefront/internal/infra/database"
	firestoreinfra "storefront/internal/infra/firestore"
	"storefront/internal/infra/secrets"
	"storefront/internal/infra/seed"
)

// Infra is shared runtime infrastructure for DI.
//   - owns external clients (Firestore / GCS / Firebase Auth / Secret Manager / SQL / Kafka)
//   - owns the seed data both services start from
//
// Infra must NOT depend on routers or handlers.
type Infra struct {
	Config *appcfg.Config
	Log    *zap.Logger
	Seed   *seed.Data

	// Clients (owned; Close-managed). Nil when the feature is not configured.
	Firestore    *firestoreinfra.ClientWrapper
	GCS          *storage.Client
	FirebaseAuth *firebaseauth.Client
	Secrets      *secrets.ProviderSM
	DB           *database.DB
	Publisher    *kafkaout.EventPublisher
	Mailer       *mailout.SendGridClient
}

// NewInfra initializes shared infra.
// Seed, Firestore (CART_STORE=firestore), GCS (EXPORT_BUCKET) and SQL (DB_DRIVER) are strict.
// Secret Manager, Firebase Auth, Kafka and SendGrid are best-effort (warn + continue).
func NewInfra(ctx context.Context, cfg *appcfg.Config, log *zap.Logger) (*Infra, error) {
	if cfg == nil {
		return nil, errors.New("shared.infra: config is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	inf := &Infra{Config: cfg, Log: log}
	l := log.Named("shared.infra")

	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("shared.infra: %w", err)
	}
	inf.Seed = data

	var clientOpts []option.ClientOption
	if cfg.NeedsGCP() {
		credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
		if credFile == "" {
			credFile = strings.TrimSpace(cfg.GCPCreds)
		}
		if credFile != "" {
			clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
			l.Info("using credentials file for GCP clients", zap.String("file", redactPath(credFile)))
		} else {
			l.Info("using Application Default Credentials")
		}
	}

	// 1) Secret Manager (best-effort; only when a secret is referenced)
	if cfg.SendGridSecretName != "" || cfg.DBPasswordSecret != "" {
		sp, err := secrets.NewProviderSM(ctx, cfg.FirestoreProjectID)
		if err != nil {
			l.Warn("secret manager init failed; secret-backed settings disabled", zap.Error(err))
		} else {
			inf.Secrets = sp
		}
	}

	// 2) SQL query layer (strict when configured)
	if cfg.DBDriver != "" {
		opts := database.Options{
			Driver:   cfg.DBDriver,
			DSN:      cfg.DatabaseURL,
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: inf.secretOr(ctx, cfg.DBPasswordSecret, cfg.DBPassword),
			Name:     cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
			Path:     cfg.SQLitePath,
		}
		db, err := database.NewConnection(ctx, opts, log)
		if err != nil {
			_ = inf.Close()
			return nil, fmt.Errorf("shared.infra: %w", err)
		}
		inf.DB = db
	} else {
		l.Info("DB_DRIVER empty; report endpoints disabled")
	}

	// 3) Firestore (strict when the cart store needs it)
	if cfg.CartStore == appcfg.CartStoreFirestore {
		fs, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, credentialsFile(clientOpts, cfg), log)
		if err != nil {
			_ = inf.Close()
			return nil, fmt.Errorf("shared.infra: %w", err)
		}
		inf.Firestore = fs
	}

	// 4) GCS (strict when an export bucket is configured)
	if cfg.ExportBucket != "" {
		gcs, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			_ = inf.Close()
			return nil, fmt.Errorf("shared.infra: storage.NewClient failed: %w", err)
		}
		inf.GCS = gcs
		l.Info("GCS storage client initialized", zap.String("bucket", cfg.ExportBucket))
	}

	// 5) Firebase Auth (best-effort; console middleware answers 503 without it)
	if cfg.ConsoleAuthRequired {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, clientOpts...)
		if err != nil {
			l.Warn("firebase app init failed", zap.Error(err))
		} else if authClient, err := app.Auth(ctx); err != nil {
			l.Warn("firebase auth init failed", zap.Error(err))
		} else {
			inf.FirebaseAuth = authClient
			l.Info("Firebase Auth initialized")
		}
	}

	// 6) Kafka publisher (no connection until first write)
	pub, err := kafkaout.NewEventPublisher(kafkaout.Config{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaTopic,
		ClientID: cfg.KafkaClientID,
	}, log)
	if err != nil {
		l.Warn("kafka publisher disabled", zap.Error(err))
	} else {
		inf.Publisher = pub
	}

	// 7) SendGrid (best-effort; contact messages are logged without it)
	if key := inf.secretOr(ctx, cfg.SendGridSecretName, cfg.SendGridAPIKey); key != "" {
		m, err := mailout.NewSendGridClient(key, log)
		if err != nil {
			l.Warn("sendgrid disabled", zap.Error(err))
		} else {
			inf.Mailer = m
		}
	}

	return inf, nil
}

// secretOr resolves name through Secret Manager, falling back to plain.
func (i *Infra) secretOr(ctx context.Context, name, plain string) string {
	if strings.TrimSpace(name) == "" || i.Secrets == nil {
		return plain
	}
	v, err := i.Secrets.Get(ctx, name)
	if err != nil {
		i.Log.Warn("secret lookup failed; using plain value", zap.String("secret", name), zap.Error(err))
		return plain
	}
	return v
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	var errs []error
	if i.Publisher != nil {
		errs = append(errs, i.Publisher.Close())
	}
	if i.Firestore != nil {
		errs = append(errs, i.Firestore.Close())
	}
	if i.GCS != nil {
		errs = append(errs, i.GCS.Close())
	}
	if i.Secrets != nil {
		errs = append(errs, i.Secrets.Close())
	}
	if i.DB != nil {
		errs = append(errs, i.DB.Close())
	}
	return errors.Join(errs...)
}

func credentialsFile(opts []option.ClientOption, cfg *appcfg.Config) string {
	if len(opts) == 0 {
		return ""
	}
	if f := strings.TrimSpace(cfg.FirestoreCredentialsFile); f != "" {
		return f
	}
	return strings.TrimSpace(cfg.GCPCreds)
}

func redactPath(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" {
		return ""
	}
	parts := strings.Split(p, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return "***"
	}
	return "***/" + last
}
