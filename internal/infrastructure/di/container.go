package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	infraAuthz "github.com/ChosunOne/treasury-sub000/internal/infrastructure/authz"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/cache"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/database"
	infraRepo "github.com/ChosunOne/treasury-sub000/internal/infrastructure/repository"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/account"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/asset"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/institution"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/transaction"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/user"
	"github.com/ChosunOne/treasury-sub000/pkg/config"
	"github.com/ChosunOne/treasury-sub000/pkg/cursor"
	"github.com/ChosunOne/treasury-sub000/pkg/jwt"
)

// カーソル署名キーの共有TTL
const cursorKeyTTL = 24 * time.Hour

// Container はアプリケーションの依存関係を保持するDIコンテナです
type Container struct {
	// Infrastructure
	PgClient    *database.PostgresClient
	RedisClient *cache.RedisClient
	TxManager   *database.TxManager

	// Services
	JWTService  *jwt.JWTService
	RateLimiter *cache.RateLimiter
	CursorKeys  *cache.CursorKeyCache
	CursorCodec *cursor.Codec

	// Authorization
	PolicyOracle       authz.PolicyOracle
	PermissionResolver authz.PermissionResolver

	// Repositories
	AccountRepo     repository.AccountRepository
	AssetRepo       repository.AssetRepository
	InstitutionRepo repository.InstitutionRepository
	TransactionRepo repository.TransactionRepository
	UserRepo        repository.UserRepository

	// Service Factories
	Accounts     *account.ServiceFactory
	Assets       *asset.ServiceFactory
	Institutions *institution.ServiceFactory
	Transactions *transaction.ServiceFactory
	Users        *user.ServiceFactory

	// config
	config *config.Config
}

// Options はContainer作成時のオプションを定義します
// テストでは接続済みのクライアントやオラクルを差し込める
type Options struct {
	PostgresPool *pgxpool.Pool
	RedisClient  *redis.Client
	PolicyOracle authz.PolicyOracle
}

// NewContainer は新しいContainerを作成します
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(ctx, cfg, Options{})
}

// NewContainerWithOptions はオプションを指定してContainerを作成します
func NewContainerWithOptions(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{
		config: cfg,
	}

	// PostgreSQL
	if opts.PostgresPool != nil {
		c.TxManager = database.NewTxManager(opts.PostgresPool)
	} else {
		slog.Info("connecting to PostgreSQL...")
		pgClient, err := database.NewPostgresClient(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.PgClient = pgClient
		c.TxManager = database.NewTxManager(pgClient.Pool())
		slog.Info("connected to PostgreSQL")
	}

	// Redis
	redisClient := opts.RedisClient
	if redisClient == nil {
		slog.Info("connecting to Redis...")
		redisConfig := cache.DefaultConfig()
		redisConfig.URL = cfg.Redis.URL
		client, err := cache.NewRedisClient(redisConfig)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.RedisClient = client
		redisClient = client.Client()
		slog.Info("connected to Redis")
	}
	c.RateLimiter = cache.NewRateLimiter(redisClient)
	c.CursorKeys = cache.NewCursorKeyCache(redisClient, cursorKeyTTL)
	c.CursorCodec = cursor.NewCodec(c.CursorKeys)

	// JWT Service
	c.JWTService = jwt.NewJWTService(jwt.Config{
		SecretKey:         cfg.JWT.SecretKey,
		Issuer:            cfg.JWT.Issuer,
		Audience:          cfg.JWT.Audience,
		AccessTokenExpiry: cfg.JWT.AccessTokenExpiry,
	})

	// Policy Oracle
	if opts.PolicyOracle != nil {
		c.PolicyOracle = opts.PolicyOracle
	} else {
		oracle, err := infraAuthz.NewCasbinOracle(cfg.Policy.ModelPath, cfg.Policy.PolicyPath)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to load policy: %w", err)
		}
		c.PolicyOracle = oracle
	}
	c.PermissionResolver = infraAuthz.NewPermissionResolver(c.PolicyOracle)

	// Repositories
	c.AccountRepo = infraRepo.NewAccountRepository(c.TxManager)
	c.AssetRepo = infraRepo.NewAssetRepository(c.TxManager)
	c.InstitutionRepo = infraRepo.NewInstitutionRepository(c.TxManager)
	c.TransactionRepo = infraRepo.NewTransactionRepository(c.TxManager)
	c.UserRepo = infraRepo.NewUserRepository(c.TxManager)

	// Service Factories
	c.Accounts = account.NewServiceFactory(c.AccountRepo, c.TxManager, c.PermissionResolver)
	c.Assets = asset.NewServiceFactory(c.AssetRepo, c.TxManager, c.PermissionResolver)
	c.Institutions = institution.NewServiceFactory(c.InstitutionRepo, c.TxManager, c.PermissionResolver)
	c.Transactions = transaction.NewServiceFactory(c.TransactionRepo, c.TxManager, c.PermissionResolver)
	c.Users = user.NewServiceFactory(c.UserRepo, c.TxManager, c.PermissionResolver)

	return c, nil
}

// Close はリソースをクリーンアップします
func (c *Container) Close() error {
	var errs []error

	if c.PgClient != nil {
		c.PgClient.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}
