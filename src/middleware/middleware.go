package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Use ติดตั้ง middleware พื้นฐานของทุก request
func Use(app *fiber.App, allowedOrigins []string) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
	}))
	app.Use(cors.New(CORSConfig(allowedOrigins)))
}

func CORSConfig(allowedOrigins []string) cors.Config {
	origins := strings.Join(allowedOrigins, ",")
	if origins == "" {
		origins = "*"
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}
}
