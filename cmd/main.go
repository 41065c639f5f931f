package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "personalbook/internal/api/http/context"
	"personalbook/internal/api/http/router"
	httpServer "personalbook/internal/api/http/server"
	"personalbook/internal/config"
	"personalbook/internal/logger"
	"personalbook/internal/model"
	"personalbook/internal/notifier"
	"personalbook/internal/repository/postgres"
	"personalbook/internal/server"
	"personalbook/internal/service"
	storage "personalbook/internal/storage/minio"
	"personalbook/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	var registrationNotifier model.Notifier
	if cfg.Notifier.Enabled {
		registrationNotifier, err = notifier.NewSES(ctx, cfg.Notifier.Region, cfg.Notifier.Sender, logger)
		if err != nil {
			logger.Fatal("failed to create SES notifier", "error", err)
		}
	} else {
		registrationNotifier = notifier.NewNoop(logger)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(userRepo, tokenManager, logger)
	if err := authService.EnsureMaster(ctx, service.MasterSeed{
		Email:    cfg.Master.Email,
		Password: cfg.Master.Password,
		Username: cfg.Master.Username,
	}); err != nil {
		logger.Fatal("failed to seed master admin", "error", err)
	}

	usersService := service.NewUsers(userRepo, registrationNotifier, logger)
	profileService := service.NewProfile(profileRepo, userRepo, storageClient, logger)

	r := router.New(authService, usersService, profileService, tokenManager, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
