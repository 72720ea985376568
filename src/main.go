package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Mergington-Activities/src/board"
	"Mergington-Activities/src/config"
	"Mergington-Activities/src/controllers"
	"Mergington-Activities/src/database"
	"Mergington-Activities/src/jobs"
	"Mergington-Activities/src/middleware"
	"Mergington-Activities/src/routes"
	"Mergington-Activities/src/services/activities"
	"Mergington-Activities/src/services/email"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// @title        Mergington Activities API
// @version      1.0
// @description  Extracurricular activity signup for Mergington High School
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// เชื่อมต่อกับ MongoDB (ถ้าไม่ได้ตั้ง MONGO_URI ใช้ in-memory store)
	store, mongoClient, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.DisconnectMongoDB(context.Background(), mongoClient)

	if err := activities.SeedDefaults(ctx, store); err != nil {
		log.Fatalf("❌ %v", err)
	}

	redisClient, err := database.InitRedis(ctx, cfg.RedisURI)
	if err != nil {
		log.Fatalf("%v", err)
	}
	asynqClient := database.InitAsynq(redisClient)

	service := activities.NewService(store,
		activities.NewCache(redisClient, cfg.CacheTTL),
		jobs.NewEnqueuer(asynqClient),
	)

	apiBase := cfg.APIBaseURL
	if apiBase == "" {
		apiBase = selfURL(cfg.ListenAddr())
	}
	gateway, err := board.NewHTTPGateway(apiBase, cfg.APITimeout)
	if err != nil {
		log.Fatalf("❌ API_BASE_URL: %v", err)
	}

	var worker *jobs.Worker
	if redisClient != nil {
		mux := jobs.NewServeMux(email.NewSender(cfg.SMTP), service, selfURL(cfg.ListenAddr())+"/")
		worker = jobs.NewWorker(database.AsynqRedisOpt(redisClient.Options()), mux)
		if err := worker.Start(); err != nil {
			log.Fatalf("❌ %v", err)
		}
	}

	// สร้าง app instance
	app := fiber.New(fiber.Config{AppName: "Mergington Activities"})
	middleware.Use(app, cfg.AllowedOrigins)
	routes.InitRoutes(app, routes.Controllers{
		Activities: controllers.NewActivityController(service),
		Board:      controllers.NewBoardController(gateway),
	})

	go func() {
		<-ctx.Done()
		log.Info("🛑 Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorw("❌ shutdown failed", "error", err)
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	log.Infof("Server is running on %s (activities API: %s)", cfg.ListenAddr(), apiBase)
	if err := app.Listen(cfg.ListenAddr()); err != nil {
		log.Errorw("❌ server stopped", "error", err)
	}

	if worker != nil {
		worker.Shutdown()
	}
	if asynqClient != nil {
		_ = asynqClient.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

func openStore(ctx context.Context, cfg *config.Config) (activities.Store, *mongo.Client, error) {
	if cfg.MongoURI == "" {
		log.Warn("⚠️ MONGO_URI not set, using in-memory activities")
		return activities.NewMemoryStore(), nil, nil
	}
	client, err := database.ConnectMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	return activities.NewMongoStoreFromClient(client, cfg.MongoDB), client, nil
}

// selfURL is the loopback URL of this server, used when the board talks to its own API.
func selfURL(listenAddr string) string {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return "http://" + listenAddr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}
