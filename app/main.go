package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comments/internal/config"
	"github.com/Guyuepp/blog-comments/internal/repository"
	mysqlRepo "github.com/Guyuepp/blog-comments/internal/repository/mysql"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/blog-comments/internal/repository/redis"
	"github.com/Guyuepp/blog-comments/internal/rest"
	"github.com/Guyuepp/blog-comments/internal/rest/middleware"
	"github.com/Guyuepp/blog-comments/internal/usecase/comment"
	"github.com/Guyuepp/blog-comments/internal/usecase/user"
	"github.com/Guyuepp/blog-comments/internal/workers"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func openDB(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			} else if err = sqlDB.Ping(); err == nil {
				return db, nil
			} else {
				logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				_ = sqlDB.Close()
			}
		}
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

func main() {
	cfg := config.Load()

	// prepare database
	db, err := openDB(cfg.Database.DSN())
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			logrus.Fatal("auto migrate failed: ", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Comment 三层：DB -> Cache -> Repository 协调层
	commentDBRepo := mysqlRepo.NewCommentRepository(db)
	commentCache := myRedisCache.NewCommentCache(client)
	commentRepo := repository.NewCommentRepository(commentDBRepo, commentCache)

	articleRepo := mysqlRepo.NewArticleRepository(db)
	userRepo := mysqlRepo.NewUserRepository(db)
	tokenRepo := mysqlRepo.NewTokenRepository(db)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)

	// Start worker
	refresher := workers.NewRefreshCommentsWorker(commentRepo)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		refresher.Start(ctx)
	}()

	// Build service Layer
	commentSvc := comment.NewService(commentRepo, articleRepo, bloomRepo, refresher)
	userSvc := user.NewService(userRepo, tokenRepo)

	if err := commentSvc.InitBloomFilter(ctx); err != nil {
		logrus.Errorf("failed to init bloom filter: %v", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	route.POST("/login", rest.NewUserHandler(userSvc).Login)
	rest.NewCommentHandler(commentSvc).Register(route, middleware.TokenAuth(userSvc))

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Waiting for worker to flush...")
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		logrus.Warn("worker did not finish before shutdown timeout")
	}

	logrus.Info("Server exiting")
}
