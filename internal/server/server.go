package server

import (
	"math/rand"
	"os"
	"time"

	"github.com/Adrianenache82/local-vibe/internal/catalog"
	"github.com/Adrianenache82/local-vibe/internal/config"
	"github.com/Adrianenache82/local-vibe/internal/dedup"
	"github.com/Adrianenache82/local-vibe/internal/generator"
	"github.com/Adrianenache82/local-vibe/internal/places"
	"github.com/Adrianenache82/local-vibe/internal/scheduler"
	"github.com/Adrianenache82/local-vibe/internal/seed"
	"github.com/Adrianenache82/local-vibe/internal/stream"
	"github.com/Adrianenache82/local-vibe/internal/venue"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Server struct {
	App     *fiber.App
	Cfg     config.Config
	DB      *pgxpool.Pool
	Redis   *redis.Client
	Logger  zerolog.Logger
	Stream  *stream.Hub
	Places  *places.Client
	Seeds   *seed.Store
	Catalog *catalog.Service
	Updater *scheduler.Updater
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	log := NewLogger(cfg.LogLevel)
	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Logger: log,
		Stream: stream.NewHub(redisClient, log.With().Str("component", "stream").Logger()),
	}
	s.Places = newPlacesClient(cfg, redisClient, log)
	s.Seeds = newSeedStore(db, serviceCenter(cfg), log)
	s.Catalog = newCatalog(cfg, s.Seeds, s.Places, s.Stream, log)
	s.Updater = scheduler.NewUpdater(s.Catalog, cfg.RefreshInterval, cfg.RefreshCheckInterval, time.Now,
		log.With().Str("component", "scheduler").Logger())

	registerRoutes(s)
	return s
}

// NewLogger returns a timestamped zerolog logger at the named level, info if
// the name does not parse.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}

func newPlacesClient(cfg config.Config, redisClient *redis.Client, log zerolog.Logger) *places.Client {
	var cache places.ResponseCache
	if redisClient != nil {
		cache = places.NewRedisCache(redisClient)
	} else {
		cache = places.NewMemoryCache(time.Now)
	}
	return places.NewClient(places.Options{
		APIKey:    cfg.PlacesAPIKey,
		BaseURL:   cfg.PlacesBaseURL,
		Referer:   cfg.PlacesReferer,
		Language:  cfg.PlacesLanguage,
		PageDelay: cfg.PageDelay,
		CacheTTL:  cfg.PlacesCacheTTL,
		Cache:     cache,
		Logger:    log.With().Str("component", "places").Logger(),
	})
}

// newSeedStore keeps a nil pool a nil interface so the store falls back to
// built-in fixtures.
func newSeedStore(db *pgxpool.Pool, center venue.Coordinates, log zerolog.Logger) *seed.Store {
	log = log.With().Str("component", "seed").Logger()
	if db == nil {
		return seed.NewStore(nil, center, log)
	}
	return seed.NewStore(db, center, log)
}

func serviceCenter(cfg config.Config) venue.Coordinates {
	center := venue.Coordinates{Latitude: cfg.CenterLat, Longitude: cfg.CenterLng}
	if center.IsZero() {
		return venue.ServiceCenter
	}
	return center
}

func newCatalog(cfg config.Config, seeds *seed.Store, live *places.Client, notifier catalog.Notifier, log zerolog.Logger) *catalog.Service {
	center := serviceCenter(cfg)

	classifier := dedup.NewClassifier(dedup.Thresholds{
		Name:              cfg.NameSimilarity,
		Address:           cfg.AddressSimilarity,
		CoordinateEpsilon: cfg.CoordinateEpsilon,
	})
	catalogLog := log.With().Str("component", "catalog").Logger()

	policy := catalog.NewPolicy(catalog.PolicyConfig{
		Center:       center,
		RadiusMeters: cfg.SearchRadiusMeters,
		Quota:        cfg.QuotaPerCategory,
		LiveTimeout:  cfg.LiveTimeout,
		PhotoURL:     places.PhotoURL(cfg.PhotoBaseURL),
		Details:      generator.DetailsFor,
	}, live, seeds, generator.NewSeeded(cfg.GeneratorSeed, center), classifier, catalogLog)

	cache := catalog.NewCache(cfg.CatalogTTL, time.Now)
	return catalog.NewService(policy, live, cache, notifier, rand.New(rand.NewSource(time.Now().UnixNano())), catalogLog)
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	catalog.RegisterRoutes(s.App.Group("/venues"), s.Catalog)
	scheduler.RegisterRoutes(s.App.Group("/catalog"), s.Updater)
	seed.RegisterRoutes(s.App.Group("/seeds"), s.Seeds, s.Catalog.Invalidate)
	places.RegisterRoutes(s.App.Group(photoMount(s.Cfg.PhotoBaseURL)), s.Places)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

// photoMount keeps the proxy route and the image URLs on the same prefix.
func photoMount(base string) string {
	if base == "" || base[0] != '/' {
		return "/api/places"
	}
	return base
}
