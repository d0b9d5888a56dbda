package main

import (
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"skystore/internal/catalog"
	"skystore/internal/db"
	"skystore/internal/logger"
	"skystore/internal/web"
)

func main() {
	// грузим .env из нескольких мест: текущая папка, родительская, корень репо
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	log := logger.New(os.Stdout)

	gdb := db.MustOpen()
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("automigrate failed")
	}
	sqlDB, _ := gdb.DB()
	defer sqlDB.Close()

	r := gin.Default()

	// раздача статики
	r.Static("/uploads", "./uploads")
	r.Static("/static", "./static")

	// sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev_fallback_secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("skystore_session", store))

	// templates
	r.SetFuncMap(template.FuncMap{
		"price": func(cents int) string { return fmt.Sprintf("%.2f", float64(cents)/100.0) },
	})
	r.LoadHTMLGlob("internal/views/*.tmpl")

	svc := catalog.NewService(gdb, log)
	web.NewServer(gdb, svc, log).Register(r)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("server listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
