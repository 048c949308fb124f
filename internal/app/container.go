package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/config"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/infrastructure/auth"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/infrastructure/database"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/infrastructure/notifications"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/infrastructure/repositories"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/infrastructure/storage"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/services"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/tasks"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	BlobStore   domain.BlobStore
	Runner      *tasks.Runner

	// Repositories
	AccountRepo  domain.AccountRepository
	PaperRepo    domain.PaperRepository
	ActivityRepo domain.ActivityRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	MailSender  domain.MailSender
	VerifySvc   domain.VerificationService
	Recorder    domain.ActivityRecorder
	AccountSvc  domain.AccountService
	PaperSvc    domain.PaperService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(ctx); err != nil {
		return nil, err
	}
	if err := container.initStorage(ctx); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return c.RedisClient.Ping(ctx).Err()
}

func (c *Container) initStorage(ctx context.Context) error {
	switch c.Config.StorageBackend {
	case "s3":
		store, err := storage.NewS3Store(ctx, storage.S3Config{
			Region:       c.Config.S3Region,
			Bucket:       c.Config.S3Bucket,
			BaseEndpoint: c.Config.S3Endpoint,
			AccessKey:    c.Config.S3Key,
			SecretKey:    c.Config.S3Secret,
			BaseURL:      c.Config.StorageBaseURL,
		})
		if err != nil {
			return err
		}
		c.BlobStore = store
	case "local", "":
		store, err := storage.NewLocalStore(c.Config.LocalDir, c.Config.StorageBaseURL)
		if err != nil {
			return err
		}
		c.BlobStore = store
	default:
		return fmt.Errorf("unknown storage backend %q", c.Config.StorageBackend)
	}
	return nil
}

func (c *Container) initRepositories() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.PaperRepo = repositories.NewPaperRepository(c.DB)
	c.ActivityRepo = repositories.NewActivityRepository(c.DB)
}

func (c *Container) initServices() {
	c.Runner = tasks.NewRunner(256, 30*time.Second)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.SessionSecret, c.Config.SessionIssuer, c.Config.SessionTTL)
	c.MailSender = notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
		c.Config.SMTPDialTimeout,
		c.Config.SMTPGreetingTimeout,
	)

	c.VerifySvc = services.NewVerificationService(c.RedisClient, services.VerificationConfig{
		TTL:          c.Config.VerificationTTL,
		MaxAttempts:  c.Config.VerifyMaxAttempts,
		ResendWindow: c.Config.VerifyResendWindow,
	})
	c.Recorder = services.NewActivityRecorder(c.ActivityRepo, c.Runner)

	c.AccountSvc = services.NewAccountService(
		c.AccountRepo,
		c.PasswordSvc,
		c.VerifySvc,
		c.MailSender,
		c.BlobStore,
		c.Recorder,
		c.Runner,
	)
	c.PaperSvc = services.NewPaperService(c.PaperRepo, c.BlobStore, c.Recorder, c.Runner)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Runner != nil {
		c.Runner.Close()
	}

	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
