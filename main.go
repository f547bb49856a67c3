package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/codebabbler/SemesterSaat/agent"
	"github.com/codebabbler/SemesterSaat/api"
	classifierapi "github.com/codebabbler/SemesterSaat/api/classifier"
	api_i "github.com/codebabbler/SemesterSaat/api/i"
	"github.com/codebabbler/SemesterSaat/api/identity"
	rlapi "github.com/codebabbler/SemesterSaat/api/rl"
	"github.com/codebabbler/SemesterSaat/config"
	"github.com/codebabbler/SemesterSaat/gridworld"
	"github.com/codebabbler/SemesterSaat/infrastruture/repo"
	"github.com/codebabbler/SemesterSaat/infrastruture/sortedstorage"
	"github.com/codebabbler/SemesterSaat/infrastruture/token"
	"github.com/codebabbler/SemesterSaat/logger"
	"github.com/codebabbler/SemesterSaat/service"
	"github.com/codebabbler/SemesterSaat/service/i"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// feedbackQueueTTLSeconds bounds how long pending feedback sits in Redis
// before it expires; stored feedback in Mongo is the durable copy.
const feedbackQueueTTLSeconds = 7 * 24 * 60 * 60

// Global variables for dependencies
var (
	mongoClient          *mongo.Client
	redisClient          *goredis.Client
	feedbackRepo         i.FeedbackRepo
	pendingQueue         i.SortedQueue
	navigator            i.Navigator
	categorizer          i.Categorizer
	jwtTokenizer         i.Tokenizer
	operatorService      i.Operator
	navigationController api_i.Controller
	classifierController api_i.Controller
	operatorController   api_i.Controller
	router               *api.Router
	appLogger            *logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initFeedbackRepo(client *mongo.Client) {
	feedbackRepo = repo.NewFeedbackRepo(client, config.Envs.DBName, "feedback")
	appLogger.Info("Feedback repository initialized")
}

func initPendingQueue() {
	var err error
	pendingQueue, err = sortedstorage.NewRedisSortedQueue(redisClient, feedbackQueueTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating pending feedback queue: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Pending feedback queue initialized")
}

func initNavigator() {
	navLogger, err := logger.New("NAVIGATOR", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating navigator logger: %v", err))
		os.Exit(1)
	}

	env, err := gridworld.New(config.Envs.GridSide, config.Envs.GoalCell)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating grid environment: %v", err))
		os.Exit(1)
	}

	learner, err := agent.New(agent.Config{
		Env:          env,
		Alpha:        config.Envs.Alpha,
		Gamma:        config.Envs.Gamma,
		Epsilon:      config.Envs.Epsilon,
		EpsilonDecay: config.Envs.EpsilonDecay,
		EpsilonMin:   config.Envs.EpsilonMin,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating learning agent: %v", err))
		os.Exit(1)
	}

	navigator, err = service.NewNavigator(learner, navLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating navigator service: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Navigator initialized")
}

func initCategorizer(ctx context.Context) {
	classifierLogger, err := logger.New("CLASSIFIER", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating classifier logger: %v", err))
		os.Exit(1)
	}

	dataset, err := service.LoadDataset(config.Envs.DatasetPath)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading dataset: %v", err))
		os.Exit(1)
	}

	categorizer, err = service.NewExpenseClassifier(ctx, service.ExpenseClassifierConfig{
		Dataset:          dataset,
		Repo:             feedbackRepo,
		Queue:            pendingQueue,
		RetrainThreshold: config.Envs.RetrainThreshold,
		ModelPath:        config.Envs.ModelPath,
		Logger:           classifierLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating classifier service: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Classifier initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initOperatorService() {
	var err error
	operatorService, err = service.NewOperator(config.Envs.OperatorKey, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating operator service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Operator service initialized")
}

func initControllers() {
	var err error
	navigationController, err = rlapi.NewNavigationController(navigator)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating navigation controller: %v", err))
		os.Exit(1)
	}

	classifierController, err = classifierapi.NewClassifierController(categorizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating classifier controller: %v", err))
		os.Exit(1)
	}

	operatorController = identity.NewOperatorController(operatorService)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{navigationController, classifierController, operatorController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initFeedbackRepo(mongoClient)
	initPendingQueue()
	initNavigator()
	initCategorizer(ctx)
	initJWTTokenizer()
	initOperatorService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
