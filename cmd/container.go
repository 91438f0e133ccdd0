package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Abraxas-365/insightshub/pkg/fsx"
	"github.com/Abraxas-365/insightshub/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/insightshub/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pkg/logx"
	"github.com/Abraxas-365/insightshub/pipeline/analytics/analyticsapi"
	"github.com/Abraxas-365/insightshub/pipeline/analytics/analyticssrv"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck/bottleneckapi"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck/bottleneckinfra"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck/bottlenecksrv"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetapi"
	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetinfra"
	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetsrv"
	"github.com/Abraxas-365/insightshub/pipeline/report/reportapi"
	"github.com/Abraxas-365/insightshub/pipeline/report/reportinfra"
	"github.com/Abraxas-365/insightshub/pipeline/report/reportsrv"
	"github.com/Abraxas-365/insightshub/pipeline/report/worker"
	"github.com/Abraxas-365/insightshub/pipeline/skills/skillsapi"
	"github.com/Abraxas-365/insightshub/pipeline/skills/skillsinfra"
	"github.com/Abraxas-365/insightshub/pipeline/skills/skillssrv"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Services
	DatasetService    *datasetsrv.Service
	AnalyticsService  *analyticssrv.Service
	BottleneckService *bottlenecksrv.Service
	SkillsService     *skillssrv.Service
	ReportService     *reportsrv.Service

	// API Handlers
	DatasetHandlers    *datasetapi.Handlers
	AnalyticsHandlers  *analyticsapi.Handlers
	BottleneckHandlers *bottleneckapi.Handlers
	SkillsHandlers     *skillsapi.Handlers
	ReportHandlers     *reportapi.Handlers

	// Background
	ReportWorker *worker.ReportWorker
	WorkerCount  int
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Redis Connection (report job queue)
	redisAddr := envOr("REDIS_ADDR", "localhost:6379")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 2. File Storage: S3 when a bucket is configured, local disk otherwise
	if awsBucket := os.Getenv("AWS_BUCKET"); awsBucket != "" {
		awsRegion := os.Getenv("AWS_REGION")
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(cfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "insightshub")
	} else {
		c.FileSystem = fsxlocal.NewLocalFileSystem(".")
	}

	// 3. Database Connection (only for the postgres dataset source)
	if os.Getenv("DATASET_SOURCE") == "postgres" {
		dbHost := envOr("DB_HOST", "localhost")
		dbPort := envOr("DB_PORT", "5432")
		dbUser := os.Getenv("DB_USER")
		dbPass := os.Getenv("DB_PASS")
		dbName := os.Getenv("DB_NAME")
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPass, dbName)

		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			logx.Fatalf("Failed to connect to database: %v", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		c.DB = db
	}
}

func (c *Container) initServices() {
	// --- Dataset Loader ---
	var loader dataset.Loader
	datasetPath := envOr("DATASET_PATH", "data/candidate_data.csv")
	switch source := envOr("DATASET_SOURCE", "csv"); source {
	case "csv":
		loader = datasetinfra.NewCSVLoader(c.FileSystem, datasetPath)
	case "xlsx":
		loader = datasetinfra.NewExcelLoader(c.FileSystem, datasetPath)
	case "postgres":
		loader = datasetinfra.NewPostgresLoader(c.DB, envOr("DB_TABLE", "candidates"))
	default:
		logx.Fatalf("Unsupported DATASET_SOURCE: %s", source)
	}

	// --- Domain Services ---
	c.DatasetService = datasetsrv.NewService(loader)
	c.AnalyticsService = analyticssrv.NewService(c.DatasetService)

	recipients := kernel.ParseRecipients(os.Getenv("ALERT_RECIPIENTS"))
	c.BottleneckService = bottlenecksrv.NewService(
		c.DatasetService,
		bottleneckinfra.NewSimulatedSender(),
		recipients,
	)

	jdSource := skillsinfra.NewFileJDSource(c.FileSystem, envOr("JD_PATH", "data/sample_jd.txt"))
	c.SkillsService = skillssrv.NewService(c.DatasetService, jdSource)

	// --- Report Pipeline ---
	queue := reportinfra.NewRedisQueue(c.Redis, "report_jobs")
	store := reportinfra.NewMemoryJobStore()
	renderer := reportinfra.NewPDFRenderer()

	c.ReportService = reportsrv.NewService(
		c.DatasetService,
		c.AnalyticsService,
		c.BottleneckService,
		renderer,
		store,
		queue,
		c.FileSystem,
		envOr("REPORT_DIR", "reports"),
	)

	c.WorkerCount = envIntOr("REPORT_WORKERS", 2)
	c.ReportWorker = worker.NewReportWorker(c.ReportService, queue, c.WorkerCount)

	// --- Handlers ---
	c.DatasetHandlers = datasetapi.NewHandlers(c.DatasetService)
	c.AnalyticsHandlers = analyticsapi.NewHandlers(c.AnalyticsService)
	c.BottleneckHandlers = bottleneckapi.NewHandlers(c.BottleneckService)
	c.SkillsHandlers = skillsapi.NewHandlers(c.SkillsService)
	c.ReportHandlers = reportapi.NewHandlers(c.ReportService)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		logx.Warnf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
