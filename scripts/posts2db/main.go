package main

import (
	"context"
	"database/sql"
	"errors"
	"io/ioutil"
	"os"

	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/socialspark/spark/internal/entities"
	"github.com/socialspark/spark/internal/feed"
	"github.com/socialspark/spark/internal/storage"
	"github.com/socialspark/spark/internal/storage/postgres"
)

var opts = struct {
	Posts              string `long:"posts" env:"POSTS" default:"posts.json" description:"path to posts export, a JSON array of posts"`
	Force              bool   `long:"force" env:"FORCE" description:"overwrite posts already stored"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "posts2db"
	parser.LongDescription = "Posts export to database importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("posts2db started")

	b, err := ioutil.ReadFile(opts.Posts)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read posts")
	}

	posts, skipped, err := feed.DecodePosts(string(b))
	if err != nil {
		logrus.WithError(err).Fatal("failed to decode posts")
	}

	for _, i := range skipped {
		logrus.WithField("index", i).Warn("invalid post skipped")
	}

	ctx := context.Background()
	s := postgres.New(mustGetDB(ctx))

	if !opts.Force {
		switch _, err := s.Load(ctx, entities.PostsKey); {
		case err == nil:
			logrus.Fatal("posts are already stored, use --force to overwrite")
		case !errors.Is(err, storage.ErrNotFound):
			logrus.WithError(err).Fatal("failed to check stored posts")
		}
	}

	v, err := feed.EncodePosts(posts)
	if err != nil {
		logrus.WithError(err).Fatal("failed to encode posts")
	}

	if err := s.Save(ctx, entities.PostsKey, v); err != nil {
		logrus.WithError(err).Fatal("failed to put posts into db")
	}

	logrus.Infof("%d posts imported, %d skipped", len(posts), len(skipped))
}

func mustGetDB(ctx context.Context) *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	if err := postgres.Migrate(db, opts.PostgresMigrations); err != nil {
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
