package app

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/library-engine/library/config"
	"github.com/Astemirdum/library-engine/library/internal/handler"
	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/library/internal/repository"
	"github.com/Astemirdum/library-engine/library/internal/server"
	"github.com/Astemirdum/library-engine/library/internal/service"
	"github.com/Astemirdum/library-engine/library/migrations"
	"github.com/Astemirdum/library-engine/pkg/auth"
	"github.com/Astemirdum/library-engine/pkg/database"
	"github.com/Astemirdum/library-engine/pkg/kafka"
	"github.com/Astemirdum/library-engine/pkg/logger"
)

// Core is the store and the service on top of it, shared by the HTTP server
// and the CLI commands.
type Core struct {
	DB       *sqlx.DB
	Service  *service.Service
	producer sarama.SyncProducer
	log      *zap.Logger
}

func NewCore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Core, error) {
	db, err := database.NewDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, errors.Wrap(err, "db init")
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "repo")
	}

	core := &Core{DB: db, log: log}
	opts := []service.Option{service.WithStrictIssue(cfg.Loan.StrictIssue)}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			db.Close()
			return nil, errors.Wrap(err, "kafka.NewProducer")
		}
		core.producer = producer
		opts = append(opts, service.WithPublisher(kafka.NewPublisher(producer, cfg.Kafka.Topic)))
	}
	core.Service = service.NewService(repo, auth.NewHasher(bcrypt.DefaultCost), log, opts...)
	return core, nil
}

func (c *Core) Close() {
	if c.producer != nil {
		if err := c.producer.Close(); err != nil {
			c.log.Warn("producer close", zap.Error(err))
		}
	}
	if err := c.DB.Close(); err != nil {
		c.log.Warn("db close", zap.Error(err))
	}
}

// maintenance is the staff identity used by CLI commands.
var maintenance = auth.Session{Role: auth.RoleStaff, ID: "cli", Name: "cli"}

func (c *Core) ReloadCatalog(ctx context.Context, src io.Reader) (model.ReloadResult, error) {
	return c.Service.ReloadCatalog(ctx, maintenance, src)
}

func (c *Core) RegisterStaff(ctx context.Context, id, name, password string) error {
	return c.Service.RegisterStaff(ctx, model.RegisterRequest{ID: id, Name: name, Password: password})
}

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	core, err := NewCore(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer core.Close()

	if cfg.SeedDemoAccounts {
		if err := core.Service.SeedDemoStudents(context.Background()); err != nil {
			return errors.Wrap(err, "seed demo accounts")
		}
	}

	h := handler.New(core.Service, auth.NewIssuer(cfg.Auth), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("strict_issue", cfg.Loan.StrictIssue))

	runErr := make(chan error, 1)
	go func() {
		runErr <- srv.Run()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case termSig := <-sig:
		log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	case err := <-runErr:
		if err != nil {
			return errors.Wrap(err, "server run")
		}
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// Migrate applies the embedded migrations and exits.
func Migrate(ctx context.Context, cfg *config.Config) error {
	db, err := database.NewDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return err
	}
	return db.Close()
}
