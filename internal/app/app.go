package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/cfg"
	v1Http "github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/delivery/v1/http"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/infrastructure/kafka"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/repository/pgdb"
	pgdbConv "github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/repository/pgdb/converter"
	redisRepo "github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/repository/redis"
	redisConv "github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/repository/redis/converter"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/usecase"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/clients"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/clock"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/closer"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/logger"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	ensureTopicsTimeout = 10 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// App собирает зависимости сервиса продаж и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("Postgres pool closed")
		return nil
	})

	customerConv := &pgdbConv.CustomerConverterImpl{}
	branchConv := &pgdbConv.BranchConverterImpl{}
	productConv := &pgdbConv.ProductConverterImpl{}
	saleConv := &pgdbConv.SaleConverterImpl{}

	customerRepo := pgdb.NewCustomerRepo(db.Pool, customerConv)
	branchRepo := pgdb.NewBranchRepo(db.Pool, branchConv)
	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	saleRepo := pgdb.NewSaleRepo(db.Pool, saleConv, customerConv, branchConv, productConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cachedProductRepo := redisRepo.NewCachedProductRepo(
		productRepo, redisClient, &redisConv.ProductConverterImpl{}, cfg.Redis, log,
	)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopics(ensureTopicsTimeout); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	notifier := kafka.NewSaleCreatedNotifier(producer, clock.NewRealClock())

	resolver := usecase.NewEntityResolver(customerRepo, branchRepo, cachedProductRepo)
	validator := usecase.NewSaleValidator(clock.NewRealClock())

	saleUC := usecase.NewSaleUC(
		saleRepo,
		resolver,
		validator,
		notifier,
		db.Pool,
		clock.NewRealClock(),
		log,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(saleUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения
// или фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

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
