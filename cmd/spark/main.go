package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/socialspark/spark/internal/assist"
	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/feed"
	"github.com/socialspark/spark/internal/flusher"
	"github.com/socialspark/spark/internal/health"
	"github.com/socialspark/spark/internal/preferences"
	"github.com/socialspark/spark/internal/server"
	"github.com/socialspark/spark/internal/service/impl"
	"github.com/socialspark/spark/internal/session"
	"github.com/socialspark/spark/internal/storage"
	"github.com/socialspark/spark/internal/storage/file"
	"github.com/socialspark/spark/internal/storage/memory"
	"github.com/socialspark/spark/internal/storage/postgres"
	"github.com/socialspark/spark/internal/storage/redis"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"30s" description:"request processing timeout"`

	Storage string `long:"storage" env:"STORAGE" default:"file" description:"key-value storage backend" choice:"memory" choice:"file" choice:"postgres" choice:"redis"`

	FileDir string `long:"file.dir" env:"FILE_DIR" default:"data" description:"directory for file storage"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	RedisAddr     string `long:"redis.addr" env:"REDIS_ADDR" default:"localhost:6379" description:"redis address"`
	RedisPassword string `long:"redis.password" env:"REDIS_PASSWORD" description:"redis password"`
	RedisDB       int    `long:"redis.db" env:"REDIS_DB" default:"0" description:"redis database"`
	RedisPrefix   string `long:"redis.prefix" env:"REDIS_PREFIX" default:"spark:" description:"prefix for redis keys"`

	GeminiAPIKey  string        `long:"gemini.api_key" env:"API_KEY" description:"gemini api key, assistant is disabled when empty"`
	GeminiModel   string        `long:"gemini.model" env:"GEMINI_MODEL" default:"gemini-2.5-flash" description:"gemini model"`
	AssistTimeout time.Duration `long:"assist.timeout" env:"ASSIST_TIMEOUT" default:"20s" description:"timeout for a single assistant request"`

	FlushInterval time.Duration `long:"feed.flush_interval" env:"FEED_FLUSH_INTERVAL" default:"30s" description:"interval to retry writing posts after a storage failure"`

	ThemeDefault string `long:"theme.default" env:"THEME_DEFAULT" default:"light" description:"theme used until one is toggled" choice:"light" choice:"dark"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "SocialSpark"
	parser.LongDescription = "SocialSpark feed server"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.WithFields(logrus.Fields{
		"storage": opts.Storage,
		"assist":  opts.GeminiAPIKey != "",
		"model":   opts.GeminiModel,
	}).Info("service starting")

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "spark",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := mustGetStorage(ctx)
	f := feed.New(s)
	fl := flusher.New(f, opts.FlushInterval)

	svc := impl.New(
		session.New(s, session.MockProvider{}),
		f,
		preferences.NewTheme(s, entities.Theme(opts.ThemeDefault)),
		assist.NewDraft(mustGetAssistant(ctx)),
	)

	if err := svc.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start service")
	}

	r := chi.NewMux()
	server.SetupRouter(svc, r, opts.RequestTimeout,
		health.SubjectPinger(opts.Storage, s.Ping),
		fl,
	)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	logrus.Info("service started")

	if err := serve(ctx, &srv, fl.Run); err != nil {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

// serve runs srv and workers until a termination signal comes or any of them fails.
func serve(ctx context.Context, srv *http.Server, workers ...func(ctx context.Context) error) error {
	gr, gctx := errgroup.WithContext(ctx)

	for i := range workers {
		w := workers[i]
		gr.Go(func() error {
			return w(gctx)
		})
	}

	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		defer signal.Stop(sigs)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-gctx.Done():
		}

		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()

		if err := srv.Shutdown(sctx); err != nil {
			logrus.WithError(err).Error("failed to gracefully shutdown server")
		}

		return errTerminated
	})

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func mustGetStorage(ctx context.Context) storage.Storage {
	switch opts.Storage {
	case "memory":
		logrus.Warn("memory storage is used, nothing will survive restart")
		return memory.New()
	case "file":
		s, err := file.New(opts.FileDir)
		if err != nil {
			logrus.WithError(err).Fatal("failed to create file storage")
		}
		return s
	case "postgres":
		return postgres.New(mustGetDB(ctx))
	case "redis":
		c := goredis.NewClient(&goredis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})

		s := redis.New(c, opts.RedisPrefix)
		if err := s.Ping(ctx); err != nil {
			logrus.WithError(err).Fatal("failed to ping redis")
		}
		return s
	default:
		logrus.Fatalf("unknown storage %s", opts.Storage)
		return nil
	}
}

func mustGetDB(ctx context.Context) *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	if err := postgres.Migrate(db, opts.PostgresMigrations); err != nil {
		logrus.WithError(err).Fatal("failed to migrate postgres")
	}

	return db
}

func mustGetAssistant(ctx context.Context) *assist.Assistant {
	if opts.GeminiAPIKey == "" {
		logrus.Warn("empty gemini api key, assistant is disabled")
		return assist.New(nil, opts.AssistTimeout)
	}

	m, err := assist.NewGemini(ctx, opts.GeminiAPIKey, opts.GeminiModel)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create gemini model")
	}

	return assist.New(m, opts.AssistTimeout)
}
