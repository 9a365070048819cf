package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/fitquest/internal/auth"
	"github.com/2beens/fitquest/internal/calendar"
	"github.com/2beens/fitquest/internal/config"
	"github.com/2beens/fitquest/internal/db"
	"github.com/2beens/fitquest/internal/llm"
	"github.com/2beens/fitquest/internal/logbook"
	"github.com/2beens/fitquest/internal/middleware"
	"github.com/2beens/fitquest/internal/misc"
	"github.com/2beens/fitquest/internal/musclebalance"
	"github.com/2beens/fitquest/internal/profiles"
	"github.com/2beens/fitquest/internal/programs"
	"github.com/2beens/fitquest/internal/quests"
	"github.com/2beens/fitquest/internal/quota"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/internal/videos"
	"github.com/2beens/fitquest/internal/workouts"
)

const (
	maxRequestBodyBytes = 1 << 20
	videoPruneInterval  = 24 * time.Hour
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	adminChecker *auth.AdminChecker
	rateLimiter  middleware.RequestRateLimiter
	dailyQuota   *quota.DailyQuota

	profiles  *profiles.Service
	quests    *quests.Service
	balance   *musclebalance.Service
	videos    *videos.Resolver
	tracker   *workouts.Tracker
	generator *programs.Generator
	logbook   *logbook.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	LLMAPIKey               string
	YouTubeAPIKey           string
	RedisPassword           string
	PostgresPassword        string
	AdminTokenHash          string
	HoneycombTracingEnabled bool
	HoneycombAPIKey         string
	HoneycombDataset        string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(tracing.HoneycombSetupParams{
		Enabled:     params.HoneycombTracingEnabled,
		ServiceName: "fitquest-backend",
		APIKey:      params.HoneycombAPIKey,
		Dataset:     params.HoneycombDataset,
	})
	if err != nil {
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDB,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDB},
	)
	promRegistry := metrics.SetupPrometheus(params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("fitquest", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	searcher, err := videos.NewYouTubeSearcher(ctx, videos.YouTubeSearcherParams{
		APIKey:         params.YouTubeAPIKey,
		MaxRetries:     cfg.UpstreamMaxRetries,
		Timeout:        cfg.VideoSearchTimeout.Duration,
		Endpoint:       cfg.YouTubeEndpoint,
		MetricsManager: metricsManager,
	})
	if err != nil {
		return nil, fmt.Errorf("new video searcher: %w", err)
	}

	textGenerator := llm.NewClient(llm.ClientParams{
		BaseURL:        cfg.LLMBaseURL,
		APIKey:         params.LLMAPIKey,
		Model:          cfg.LLMModel,
		Temperature:    cfg.LLMTemperature,
		MaxTokens:      cfg.LLMMaxTokens,
		Timeout:        cfg.GenerationTimeout.Duration,
		MaxRetries:     cfg.UpstreamMaxRetries,
		MetricsManager: metricsManager,
	})

	s := &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,
		dbPool:      dbPool,
		redisClient: rdb,

		adminChecker: auth.NewAdminChecker(params.AdminTokenHash),
		rateLimiter:  redis_rate.NewLimiter(rdb),
		dailyQuota:   quota.NewDailyQuota(rdb, cfg.DailyRequestQuota, metricsManager),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}
	s.setupServices(textGenerator, searcher)

	go func() {
		ticker := time.NewTicker(videoPruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if pruned, err := s.videos.Prune(ctx); err != nil {
					log.Errorf("prune video cache: %s", err)
				} else {
					log.Debugf("video cache pruned, %d entries removed", pruned)
				}
			}
		}
	}()

	return s, nil
}

// setupServices wires the domain services on top of the storage clients.
func (s *Server) setupServices(textGenerator *llm.Client, searcher videos.Searcher) {
	defaultLocation := calendar.Location(s.config.DefaultTimezone, time.UTC)

	s.profiles = profiles.NewService(profiles.NewRepo(s.dbPool), profiles.ServiceParams{
		CacheSizeBytes:  s.config.ProfileCacheSizeBytes,
		CacheTTLSeconds: s.config.ProfileCacheTTLSeconds,
		DefaultLocation: defaultLocation,
	})
	s.quests = quests.NewService(quests.NewRepo(s.dbPool), s.metricsManager)
	s.balance = musclebalance.NewService(musclebalance.NewRepo(s.dbPool))
	s.videos = videos.NewResolver(
		videos.NewCacheRepo(s.dbPool),
		searcher,
		s.config.VideoCacheTTL.Duration,
		s.metricsManager,
	)
	s.tracker = workouts.NewTracker(workouts.TrackerParams{
		Repo:           workouts.NewRepo(s.dbPool),
		Balance:        s.balance,
		Quests:         s.quests,
		Zones:          s.profiles,
		MetricsManager: s.metricsManager,
	})
	s.generator = programs.NewGenerator(programs.GeneratorParams{
		Profiles:         s.profiles,
		LLM:              textGenerator,
		Videos:           s.videos,
		Store:            programs.NewRepo(s.dbPool),
		MetricsManager:   s.metricsManager,
		VideoConcurrency: s.config.VideoLookupConcurrency,
		DefaultLocation:  defaultLocation,
	})
	s.logbook = logbook.NewService(logbook.NewRepo(s.dbPool), s.quests, s.profiles, nil)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(
		s.versionInfo,
		misc.Dependency{Name: "postgres", Ping: s.dbPool.Ping},
		misc.Dependency{Name: "redis", Ping: func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		}},
	)
	r.HandleFunc("/", miscHandler.HandleRoot).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", miscHandler.HandleVersion).Methods("GET").Name("version")
	r.HandleFunc("/health", miscHandler.HandleHealth).Methods("GET").Name("health")

	profileHandler := profiles.NewHandler(s.profiles)
	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", profileHandler.HandleUpsert).Methods("PUT", "OPTIONS").Name("upsert-profile")

	questHandler := quests.NewHandler(s.quests, s.profiles, nil)
	r.HandleFunc("/quests/today", questHandler.HandleGetToday).Methods("GET", "OPTIONS").Name("quest-today")
	r.HandleFunc("/quests/actions", questHandler.HandleRecordAction).Methods("POST", "OPTIONS").Name("quest-action")
	r.HandleFunc("/quests/complete", questHandler.HandleMarkDayComplete).Methods("POST", "OPTIONS").Name("quest-complete")
	r.HandleFunc("/quests/history", questHandler.HandleHistory).Methods("GET", "OPTIONS").Name("quest-history")

	balanceHandler := musclebalance.NewHandler(s.balance)
	r.HandleFunc("/balance", balanceHandler.HandleGet).Methods("GET", "OPTIONS").Name("balance")
	r.HandleFunc("/balance/sessions/{id:[0-9]+}", balanceHandler.HandleGetSession).Methods("GET", "OPTIONS").Name("balance-session")

	programHandler := programs.NewHandler(s.generator, nil)
	r.Handle("/programs/generate",
		middleware.DailyQuota(s.dailyQuota)(http.HandlerFunc(programHandler.HandleGenerate)),
	).Methods("POST", "OPTIONS").Name("generate-program")
	r.HandleFunc("/programs/schedule", programHandler.HandleSchedulePreview).Methods("GET", "OPTIONS").Name("schedule-preview")

	workoutHandler := workouts.NewHandler(s.tracker)
	r.HandleFunc("/programs", workoutHandler.HandleListPrograms).Methods("GET", "OPTIONS").Name("list-programs")
	r.HandleFunc("/programs/{id:[0-9]+}", workoutHandler.HandleGetProgram).Methods("GET", "OPTIONS").Name("get-program")
	r.HandleFunc("/programs/{id:[0-9]+}", workoutHandler.HandleDeleteProgram).Methods("DELETE", "OPTIONS").Name("delete-program")
	r.HandleFunc("/programs/{id:[0-9]+}/sessions", workoutHandler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/sessions/{id:[0-9]+}", workoutHandler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/sessions/{id:[0-9]+}/complete", workoutHandler.HandleCompleteSession).Methods("POST", "OPTIONS").Name("complete-session")
	r.HandleFunc("/exercises/{id:[0-9]+}/completion", workoutHandler.HandleSetExerciseCompletion).Methods("POST", "OPTIONS").Name("exercise-completion")
	r.HandleFunc("/workouts", workoutHandler.HandleLogWorkout).Methods("POST", "OPTIONS").Name("log-workout")

	logbookHandler := logbook.NewHandler(s.logbook)
	r.HandleFunc("/log/weight", logbookHandler.HandleLogWeight).Methods("POST", "OPTIONS").Name("log-weight")
	r.HandleFunc("/log/meals", logbookHandler.HandleLogMeal).Methods("POST", "OPTIONS").Name("log-meal")
	r.HandleFunc("/log/steps", logbookHandler.HandleLogSteps).Methods("POST", "OPTIONS").Name("log-steps")
	r.HandleFunc("/log/day", logbookHandler.HandleGetDay).Methods("GET", "OPTIONS").Name("log-day")

	quotaHandler := quota.NewHandler(s.dailyQuota)
	r.HandleFunc("/quota", quotaHandler.HandleGetUsage).Methods("GET", "OPTIONS").Name("quota-usage")

	videoHandler := videos.NewHandler(s.videos)
	r.HandleFunc("/videos/search", videoHandler.HandleSearch).Methods("GET", "OPTIONS").Name("video-search")
	r.HandleFunc("/admin/videos/prune", videoHandler.HandlePrune).Methods("POST", "OPTIONS").Name("video-prune")
	r.HandleFunc("/admin/videos/top", videoHandler.HandleTop).Methods("GET", "OPTIONS").Name("video-top")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.adminChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.RateLimit(s.rateLimiter, s.metricsManager, s.config.RequestsPerMinuteBurst))
	r.Use(middleware.LimitAndDrainBody(maxRequestBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: s.config.GenerationTimeout.Duration + time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
