package app

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/ewok0116/CS308-Project/internal/config"
	"github.com/ewok0116/CS308-Project/internal/logger"
)

type Infra struct {
	Firestore *firestore.Client
	Auth      *fbauth.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	var opts []option.ClientOption
	if cfg.ServiceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	}

	fbApp, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	fsClient, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firestore client: %w", err)
	}

	logger.Info("firestore ready", nil)

	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize auth client: %w", err)
	}

	logger.Info("firebase auth ready", nil)

	return &Infra{
		Firestore: fsClient,
		Auth:      authClient,
	}, nil
}
