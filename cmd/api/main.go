package main

import (
	"time"

	"pos/internal/config"
	"pos/internal/domain/model"
	"pos/internal/handler"
	"pos/internal/infra/cartstore"
	"pos/internal/infra/db"
	infraOAuth "pos/internal/infra/oauth"
	infraRepo "pos/internal/infra/repository"
	repo "pos/internal/repository"
	"pos/internal/server"
	"pos/internal/usecase"
	auth "pos/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くても起動できる
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.SaleRecord{},
		&model.SessionRecord{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	catalogRepo := infraRepo.NewCatalogGormRepository(gormDB)
	salesRepo := infraRepo.NewSalesGormRepository(gormDB)
	sessionLog := infraRepo.NewSessionLogGormRepository(gormDB)

	//セッションはプロセス内
	sessions := infraRepo.NewSessionMemoryStore()

	//カート置き場（REDIS_ADDRがあればRedis、無ければメモリ）
	var carts repo.CartStore
	if cfg.RedisAddr != "" {
		carts = cartstore.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Info("cart store: redis", zap.String("addr", cfg.RedisAddr))
	} else {
		carts = cartstore.NewMemoryStore()
		logger.Info("cart store: memory")
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//注文IDの採番方法
	var orderIDs usecase.OrderIDGenerator
	if cfg.OrderIDStrategy == "sequential" {
		orderIDs = usecase.NewSequentialOrderIDGenerator(salesRepo)
	} else {
		orderIDs = usecase.NewRandomOrderIDGenerator(idGen)
	}
	logger.Info("order id strategy", zap.String("strategy", cfg.OrderIDStrategy))

	//OAuthクライアントとIDトークン検証
	oauthClient := infraOAuth.NewGoogleClient(cfg.OAuthClientID, cfg.OAuthClientSecret, cfg.OAuthRedirectURL)
	verifier := infraOAuth.NewJWTVerifier(
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.IDTokenSecret), nil
		},
		cfg.OAuthIssuer,
		cfg.OAuthClientID,
	)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)
	cartUC := usecase.NewCartUsecase(carts, catalogRepo)
	checkoutUC := usecase.NewCheckoutUsecase(carts, salesRepo, orderIDs, clock)
	reportUC := usecase.NewReportUsecase(salesRepo, logger)
	loginUC := auth.NewLoginUsecase(oauthClient, verifier, sessions, sessionLog, idGen, clock)
	credUC := auth.NewCredentialUsecase(oauthClient, sessions, clock)

	//Handler生成
	h := server.Handlers{
		Auth:    handler.NewAuthHandler(loginUC, credUC, cfg.GoEnv == "prod"),
		Product: handler.NewProductHandler(catalogUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(checkoutUC),
		Report:  handler.NewReportHandler(reportUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, h, sessions, credUC, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
