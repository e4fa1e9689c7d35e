package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"postomat/pkg/config"
	"postomat/pkg/content"
	"postomat/pkg/domain"
	"postomat/pkg/feed"
	"postomat/pkg/repository"
	"postomat/pkg/scheduler"
	"postomat/pkg/telegram"
	"postomat/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Fatalf("[ERROR] can't load config: %v", err)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Telegram.Token)
	lgr.Printf("[INFO] starting postomat version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		lgr.Printf("[ERROR] postomat failed: %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run wires the application together and blocks until ctx is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			lgr.Printf("[WARN] failed to close database: %v", cerr)
		}
	}()

	transport, err := telegram.New(telegram.Config{
		Token:      cfg.Telegram.Token,
		RatePerSec: cfg.Telegram.RatePerSec,
		Debug:      cfg.Telegram.Debug,
	})
	if err != nil {
		return fmt.Errorf("init telegram transport: %w", err)
	}

	preparer := content.NewPreparer()
	fetcher := feed.NewFetcher(cfg.Feeds.FetchTimeout, cfg.Feeds.UserAgent)
	filter := feed.NewFilter()

	sched := scheduler.NewScheduler(repos.Job, scheduler.Config{MaxInFlight: cfg.Scheduler.MaxInFlight})
	sched.Register(domain.JobPublish, scheduler.NewPublisher(repos.Post, transport, preparer, sched,
		scheduler.PublisherConfig{SendTimeout: cfg.Scheduler.SendTimeout, MaxConcurrent: cfg.Scheduler.MaxConcurrent}))
	sched.Register(domain.JobDeleteMessage, scheduler.NewDeleter(transport))
	sched.Register(domain.JobCheckFeed, scheduler.NewFeedChecker(repos.Feed, repos.Item, fetcher, filter, preparer, transport,
		scheduler.FeedCheckerConfig{SendTimeout: cfg.Scheduler.SendTimeout, MaxConcurrent: cfg.Scheduler.MaxConcurrent}))

	// reconcile durable state before any timer can fire
	recovery := scheduler.NewRecovery(repos.Post, repos.Feed, sched)
	if err := recovery.Run(ctx); err != nil {
		return fmt.Errorf("recovery sweep: %w", err)
	}

	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	srv := server.New(cfg, &serverDB{
		PostRepository: repos.Post,
		FeedRepository: repos.Feed,
		JobRepository:  repos.Job,
	}, sched, revision, debug)

	err = srv.Run(ctx)

	// let in-flight firings finish their status writes
	sched.Stop(true)
	return err
}

// serverDB combines the repositories behind the server's Database interface
type serverDB struct {
	*repository.PostRepository
	*repository.FeedRepository
	*repository.JobRepository
}

func setupLog(dbg, noColor bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	var cleaned []string
	for _, s := range secrets {
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) > 0 {
		logOpts = append(logOpts, lgr.Secret(cleaned...))
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
