package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/backtrack-maze/api"
	api_i "github.com/beka-birhanu/backtrack-maze/api/i"
	"github.com/beka-birhanu/backtrack-maze/api/identity"
	mazeapi "github.com/beka-birhanu/backtrack-maze/api/maze"
	"github.com/beka-birhanu/backtrack-maze/config"
	"github.com/beka-birhanu/backtrack-maze/infrastruture/cache"
	"github.com/beka-birhanu/backtrack-maze/infrastruture/repo"
	"github.com/beka-birhanu/backtrack-maze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/backtrack-maze/infrastruture/token"
	"github.com/beka-birhanu/backtrack-maze/logger"
	"github.com/beka-birhanu/backtrack-maze/service"
	"github.com/beka-birhanu/backtrack-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recentIndexTTL expires the recent index when no maze is created for a week.
const recentIndexTTL = 7 * 24 * time.Hour

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       *repo.UserRepo
	mazeRepo       *repo.MazeRepo
	mazeCache      i.MazeCache
	recentIndex    i.SortedQueue
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	mazeService    i.MazeService
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logrus.Entry
)

// newLogger creates a component logger at the configured level or exits.
func newLogger(prefix, color string) *logrus.Entry {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	if err := logger.SetLevel(l, config.Envs.LogLevel); err != nil {
		l.WithError(err).Warn("Unknown log level, keeping info")
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.WithError(err).Error("Failed to connect to MongoDB")
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.WithError(err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.WithError(err).Error("Creating user indexes")
		os.Exit(1)
	}

	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	if err := mazeRepo.EnsureIndexes(ctx); err != nil {
		appLogger.WithError(err).Error("Creating maze indexes")
		os.Exit(1)
	}
	appLogger.Info("Repositories initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.WithError(err).Error("Redis ping failed")
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initStorage(client *redis.Client) {
	mazeCache = cache.NewRedisMazeCache(client)
	recentIndex = sortedstorage.NewRedisSortedQueue(client, recentIndexTTL)
	appLogger.Info("Maze cache and recent index initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer, newLogger("AUTH", config.ColorYellow))
	if err != nil {
		appLogger.WithError(err).Error("Creating auth service")
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(&service.MazeConfig{
		Repo:         mazeRepo,
		Cache:        mazeCache,
		Recent:       recentIndex,
		Logger:       newLogger("MAZE", config.ColorCyan),
		MaxDimension: config.Envs.MazeMaxDimension,
		ExitAttempts: config.Envs.MazeExitAttempts,
		CacheTTL:     time.Duration(config.Envs.MazeCacheTTL) * time.Second,
		RecentLimit:  int64(config.Envs.MazeRecentLimit),
	})
	if err != nil {
		appLogger.WithError(err).Error("Creating maze service")
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)
	mazeController = mazeapi.NewController(mazeService)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authorize(t),
		Logger:                  newLogger("HTTP", config.ColorBlue),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger = newLogger("APP", config.ColorGreen)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRepos(ctx, mongoClient)

	initRedis(ctx)
	defer redisClient.Close()
	initStorage(redisClient)

	initJWTTokenizer()
	initAuthService()
	initMazeService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.WithError(err).Error("Starting server")
		os.Exit(1)
	}
}
