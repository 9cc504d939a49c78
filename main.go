// File: lovelink/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lovelink/config"
	"lovelink/database"
	documentRepo "lovelink/database/repository/document"
	userRepoPkg "lovelink/database/repository/user"
	"lovelink/handlers"
	"lovelink/middleware"
	"lovelink/routes"
	"lovelink/services/user"
	"lovelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	logger, err := utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := database.Connect(context.Background(), cfg.MongoURI(), logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := client.Database(cfg.DBName)

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db.Collection(database.UsersCollection))
	bioRepo := documentRepo.NewMongoDocumentRepo(db.Collection(database.BiodataCollection))
	storyRepo := documentRepo.NewMongoDocumentRepo(db.Collection(database.SuccessStoriesCollection))
	favouriteRepo := documentRepo.NewMongoDocumentRepo(db.Collection(database.FavouritesCollection))
	requestRepo := documentRepo.NewMongoDocumentRepo(db.Collection(database.ContactRequestsCollection))

	// Index failures are logged, not fatal: existing data may violate them.
	indexCtx := context.Background()
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("main: users index", zap.Error(err))
	}
	for name, repo := range map[string]*documentRepo.MongoDocumentRepo{
		database.FavouritesCollection:      favouriteRepo,
		database.ContactRequestsCollection: requestRepo,
	} {
		if err := repo.EnsureIndexes(indexCtx, "email"); err != nil {
			logger.Warn("main: owner index", zap.String("collection", name), zap.Error(err))
		}
	}

	// services.
	tokens := utils.NewTokenManager([]byte(cfg.AccessTokenSecret), cfg.TokenTTL)
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	tokenHandler := handlers.NewTokenHandler(tokens)
	userHandler := handlers.NewUserHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens:      tokens,
		UserService: userService,

		IssueTokenHandler: tokenHandler.IssueTokenHandler,

		// User endpoints.
		GetAllUsersHandler:    userHandler.GetAllUsersHandler,
		GetAdminStatusHandler: userHandler.GetAdminStatusHandler,
		RegisterUserHandler:   userHandler.RegisterUserHandler,
		PromoteToAdminHandler: userHandler.PromoteToAdminHandler,
		DeleteUserHandler:     userHandler.DeleteUserHandler,

		// Document collections.
		Biodata:         handlers.NewResourceHandler(bioRepo),
		SuccessStories:  handlers.NewResourceHandler(storyRepo),
		Favourites:      handlers.NewResourceHandler(favouriteRepo),
		ContactRequests: handlers.NewResourceHandler(requestRepo),

		HealthHandler: handlers.NewHealthHandler(client),
		RootHandler:   handlers.RootHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())

	routes.RegisterRoutes(router, handlerBundle, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Love Link running on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
