package server

import (
	"log"

	"techblog/configs"
	"techblog/configs/database"
	kafkaadapter "techblog/internal/adapters/kafka"
	"techblog/internal/adapters/storage"
	"techblog/internal/ports/models"
	"techblog/internal/server/handlers"
	"techblog/internal/server/middleware"
	"techblog/internal/server/repository"
	"techblog/internal/server/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type App struct {
	router *gin.Engine
	cfg    *configs.Config
}

func NewApp() (*App, error) {
	cfg := configs.Load()

	mysqlDB, err := database.NewMySQLConnection(cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDB)
	if err != nil {
		return nil, err
	}
	if err := migrateMySQL(mysqlDB); err != nil {
		return nil, err
	}

	mongoDB, err := database.NewMongoConnection(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, err
	}

	redisClient, err := database.InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	minioClient, err := storage.NewMinIOClient(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket)
	if err != nil {
		return nil, err
	}

	publisher := kafkaadapter.NewVotePublisher(cfg.KafkaBrokers, cfg.KafkaTopic)

	// Repositories
	userRepo := repository.NewUserRepository(mysqlDB)
	reputationRepo := repository.NewReputationRepository(mysqlDB)
	questionRepo := repository.NewQuestionRepository(mongoDB.DB)
	answerRepo := repository.NewAnswerRepository(mongoDB.DB)
	tagRepo := repository.NewTagRepository(mongoDB.DB)
	votableStore := repository.NewMongoVotableStore(mongoDB.DB)
	capStore := repository.NewRedisCapStore(redisClient)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpire)
	reputationService := service.NewReputationService(userRepo, reputationRepo, capStore)
	questionService := service.NewQuestionService(questionRepo, tagRepo)
	answerService := service.NewAnswerService(answerRepo, questionRepo, reputationService)
	voteService := service.NewVoteService(votableStore, publisher)
	tagService := service.NewTagService(tagRepo)
	userService := service.NewUserService(userRepo, reputationRepo, minioClient)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	voteHandler := handlers.NewVoteHandler(voteService)
	tagHandler := handlers.NewTagHandler(tagService)
	userHandler := handlers.NewUserHandler(userService)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.LogAPI(), middleware.CORS())

	SetupRoutes(router, cfg.JWTSecret, authHandler, questionHandler, answerHandler, voteHandler, tagHandler, userHandler)

	return &App{router: router, cfg: cfg}, nil
}

func (a *App) Run() error {
	log.Printf("Starting TechBlog API on port %s", a.cfg.Port)
	return a.router.Run(":" + a.cfg.Port)
}

func migrateMySQL(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ReputationEntry{},
	)
}
