package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/ewok0116/CS308-Project/internal/auth"
	"github.com/ewok0116/CS308-Project/internal/auth/credentials"
	"github.com/ewok0116/CS308-Project/internal/auth/handler"
	"github.com/ewok0116/CS308-Project/internal/auth/resolver"
	"github.com/ewok0116/CS308-Project/internal/catalog"
	"github.com/ewok0116/CS308-Project/internal/config"
	"github.com/ewok0116/CS308-Project/internal/logger"
	"github.com/ewok0116/CS308-Project/internal/middleware"
	"github.com/ewok0116/CS308-Project/internal/roles"
	"github.com/ewok0116/CS308-Project/internal/store"
	"github.com/ewok0116/CS308-Project/internal/users"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	docs := store.NewFirestore(infra.Firestore)
	userStore := users.NewStore(docs)

	identity := auth.NewFirebase(infra.Auth)
	roleResolver := resolver.NewStoreResolver(userStore)

	credentialService := credentials.NewService(userStore)
	roleService := roles.NewService(docs, userStore, identity)

	authHandler := handler.NewHandler(credentialService)
	roleHandler := roles.NewHandler(roleService)
	catalogHandler := catalog.NewHandler(docs)

	authenticate := middleware.Authenticate(identity, roleResolver)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	catalogHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)
	roleHandler.RegisterRoutes(router, authenticate)

	for _, route := range router.Routes() {
		logger.Info("route registered", map[string]any{
			"method": route.Method,
			"path":   route.Path,
		})
	}

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.Firestore.Close()
	}, nil
}
