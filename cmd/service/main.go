package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/fitquest/internal"
	"github.com/2beens/fitquest/internal/config"
	"github.com/2beens/fitquest/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	versionInfo, versionErr := tryGetLastCommitHash()

	logging.Setup(logging.LoggerSetupParams{
		ServiceName:   "fitquest-service",
		Environment:   cfg.Environment,
		Release:       versionInfo,
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     os.Getenv("SENTRY_DSN"),
	})

	if versionErr != nil {
		log.Tracef("failed to get last commit hash / version info: %s", versionErr)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	log.Warnf("---->> running in [%s] environment", *env)
	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	llmAPIKey := os.Getenv("LLM_API_KEY")
	if llmAPIKey == "" {
		log.Errorf("text generation API key not set, use LLM_API_KEY env var to set it")
	}

	youTubeAPIKey := os.Getenv("YOUTUBE_API_KEY")
	if youTubeAPIKey == "" {
		log.Errorf("youtube API key not set, use YOUTUBE_API_KEY env var to set it")
	}

	redisPassword := os.Getenv("FITQUEST_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITQUEST_REDIS_PASS")
	}

	postgresPassword := os.Getenv("FITQUEST_DB_PASS")
	if postgresPassword == "" {
		log.Warnln("postgres password not set. use FITQUEST_DB_PASS")
	}

	adminTokenHash := os.Getenv("FITQUEST_ADMIN_TOKEN_HASH")
	if adminTokenHash == "" {
		log.Errorf("admin token hash not set, admin routes are closed. use FITQUEST_ADMIN_TOKEN_HASH")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	honeycombAPIKey := os.Getenv("HONEYCOMB_API_KEY")
	if honeycombEnabled && honeycombAPIKey == "" {
		log.Warnln("HONEYCOMB_API_KEY env var not set")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			LLMAPIKey:               llmAPIKey,
			YouTubeAPIKey:           youTubeAPIKey,
			RedisPassword:           redisPassword,
			PostgresPassword:        postgresPassword,
			AdminTokenHash:          adminTokenHash,
			HoneycombTracingEnabled: honeycombEnabled,
			HoneycombAPIKey:         honeycombAPIKey,
			HoneycombDataset:        os.Getenv("HONEYCOMB_DATASET"),
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
