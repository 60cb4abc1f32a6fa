package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aigenie/genie-server/accounts"
	"github.com/aigenie/genie-server/advisor"
	"github.com/aigenie/genie-server/entitlements"
	"github.com/aigenie/genie-server/goals"
	"github.com/aigenie/genie-server/internal/config"
	"github.com/aigenie/genie-server/internal/latency"
	"github.com/aigenie/genie-server/oneshot"
	"github.com/aigenie/genie-server/server"
	"github.com/aigenie/genie-server/store"
	"github.com/aigenie/genie-server/store/memstore"
	"github.com/aigenie/genie-server/store/sqlitestore"
	"github.com/aigenie/genie-server/token"
	"github.com/aigenie/genie-server/video"
	"github.com/aigenie/genie-server/wisdom"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatal().Err(err).Msg("Error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	handler, closeStore, err := buildServer(c)
	if err != nil {
		return err
	}
	defer closeStore()

	httpServer := &http.Server{Addr: c.GetPort(), Handler: handler}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func buildServer(c config.Config) (*server.Server, func(), error) {
	st, closeStore, err := openStore(c)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := token.NewIssuer([]byte(c.GetTokenSecret()), c.GetTokenIssuer(), c.GetTokenExpiry())
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	var codec accounts.CredentialCodec = accounts.Base64Codec{}
	if c.GetCredentialScheme() == config.CredentialSchemeBcrypt {
		codec = accounts.BcryptCodec{}
	}

	sleep := serviceSleeper(c)

	accountsService, err := accounts.NewService(st, codec, tokens, accounts.WithSleeper(sleep))
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	wisdomService, err := wisdom.NewService(st)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	entitlementsService, err := entitlements.NewService(st, entitlements.WithSleeper(sleep))
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	oneshotService, err := oneshot.NewService(st, oneshot.WithSleeper(sleep))
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	goalsService, err := goals.NewService(st)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	advisorService := advisor.NewService(advisor.WithSleeper(sleep))

	var videoClient *video.Client
	if c.GetVideoAPIKey() != "" {
		videoClient = video.NewClient(c.GetVideoAPIKey(), video.WithBaseURL(c.GetVideoAPIBaseURL()))
	} else {
		log.Warn().Msg("VIDEO_API_KEY not set, video generation disabled")
	}

	srv, err := server.New(c, server.Services{
		Accounts:     accountsService,
		Wisdom:       wisdomService,
		Entitlements: entitlementsService,
		OneShot:      oneshotService,
		Goals:        goalsService,
		Advisor:      advisorService,
		Video:        videoClient,
		Tokens:       tokens,
	})
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return srv, closeStore, nil
}

func openStore(c config.Config) (store.Store, func(), error) {
	switch c.GetStoreDriver() {
	case config.StoreDriverMemory:
		return memstore.New(), func() {}, nil
	case config.StoreDriverSQLite:
		st, err := sqlitestore.Open(c.GetStorePath())
		if err != nil {
			return nil, nil, fmt.Errorf("sqlitestore.Open: %w", err)
		}
		log.Info().Str("path", c.GetStorePath()).Msg("sqlite store opened")
		return st, func() { _ = st.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", c.GetStoreDriver())
	}
}

func serviceSleeper(c config.Config) latency.Sleeper {
	if c.GetSimulateLatency() {
		return latency.Wait
	}
	return latency.None
}

func setupLogging(c config.Config) {
	if c.GetEnv() == "DEV" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
