package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/crownline/shop-backend/internal/cfg"
	v1Http "github.com/crownline/shop-backend/internal/delivery/v1/http"
	"github.com/crownline/shop-backend/internal/infrastructure/kafka"
	"github.com/crownline/shop-backend/internal/infrastructure/mailer"
	minioInfra "github.com/crownline/shop-backend/internal/infrastructure/minio"
	"github.com/crownline/shop-backend/internal/infrastructure/paystack"
	s3Repo "github.com/crownline/shop-backend/internal/repository/minio"
	"github.com/crownline/shop-backend/internal/repository/pgdb"
	pgdbConv "github.com/crownline/shop-backend/internal/repository/pgdb/converter"
	"github.com/crownline/shop-backend/internal/repository/redis"
	redisConv "github.com/crownline/shop-backend/internal/repository/redis/converter"
	"github.com/crownline/shop-backend/internal/usecase"
	"github.com/crownline/shop-backend/pkg/clients"
	"github.com/crownline/shop-backend/pkg/closer"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/crownline/shop-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает конфигурацию, инфраструктуру и слои приложения.
type App struct {
	cfg    *config.Config
	logger logger.Logger
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	return &App{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Run поднимает все зависимости, запускает HTTP-сервер и outbox-воркер
// и блокируется до сигнала остановки. Ресурсы закрываются в порядке LIFO.
func (a *App) Run() error {
	cfg, log := a.cfg, a.logger

	// Контекст фоновых задач: его отмена начинает остановку воркеров
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	cl := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("Database pool closed")
		return nil
	})

	productConv := pgdbConv.NewProductConverter()
	categoryConv := pgdbConv.NewCategoryConverter()
	orderConv := pgdbConv.NewOrderConverter()
	customerConv := pgdbConv.NewCustomerConverter()
	locationConv := pgdbConv.NewLocationConverter()
	zoneConv := pgdbConv.NewShippingZoneConverter()
	outboxConv := pgdbConv.NewOutboxEventConverter()

	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, categoryConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	customerRepo := pgdb.NewCustomerRepo(db.Pool, customerConv)
	locationRepo := pgdb.NewLocationRepo(db.Pool, locationConv)
	zoneRepo := pgdb.NewShippingZoneRepo(db.Pool, zoneConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		log.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, appCtx)
	cl.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cartStore := redis.NewCartStore(redisClient, redisConv.NewCartConverter(), cfg.Redis, log)
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.NewProductConverter(), cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	outboxWorker.Start(appCtx)
	cl.Add(func(ctx context.Context) error {
		outboxWorker.Stop()
		log.Infof("Outbox worker stopped")
		return nil
	})

	orderMailer, err := mailer.NewMailer(cfg.Smtp, log, appCtx)
	if err != nil {
		log.Errorf(err, "failed to initialize mailer")
		return err
	}
	cl.Add(func(ctx context.Context) error {
		return orderMailer.WaitForDrain(ctx)
	})

	paymentVerifier := paystack.NewVerifier(cfg.Paystack)

	cartUC := usecase.NewCartUC(cartStore, productRepo, log)
	checkoutUC := usecase.NewCheckoutUC(
		cartStore,
		zoneRepo,
		orderRepo,
		customerRepo,
		outboxRepo,
		db.Pool,
		paymentVerifier,
		orderMailer,
		cfg.Shipping,
		log,
	)
	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, locationRepo, cacheRepo, log)
	adminUC := usecase.NewAdminUC(
		productRepo,
		categoryRepo,
		orderRepo,
		customerRepo,
		locationRepo,
		imagesInfra,
		cacheRepo,
		db.Pool,
		log,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(cartUC, checkoutUC, catalogUC, adminUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	appCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		log.Warnf("Shutdown finished with errors: %v", err)
	}

	log.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
