package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"skystore/internal/catalog"
)

// Server держит общие зависимости хендлеров
type Server struct {
	db  *gorm.DB
	svc *catalog.Service
	log zerolog.Logger
}

func NewServer(db *gorm.DB, svc *catalog.Service, log zerolog.Logger) *Server {
	return &Server{db: db, svc: svc, log: log}
}

// Register вешает все маршруты приложения на роутер
func (s *Server) Register(r *gin.Engine) {
	r.GET("/health", s.health)

	// каталог
	r.GET("/", s.index)
	r.GET("/products/:id", s.productDetail)
	r.GET("/categories", s.categoryList)
	r.GET("/categories/:id", s.categoryDetail)

	// пользователи
	r.GET("/register", s.registerForm)
	r.POST("/register", s.register)
	r.GET("/login", s.loginForm)
	r.POST("/login", s.login)
	r.GET("/logout", s.logout)

	// всё ниже — только для авторизованных
	auth := r.Group("/", mustLogin())
	auth.GET("/create", s.productNewForm)
	auth.POST("/create", s.productCreate)
	auth.GET("/products/:id/edit", s.productEditForm)
	auth.POST("/products/:id/edit", s.productUpdate)
	auth.GET("/products/:id/delete", s.productDeleteConfirm)
	auth.POST("/products/:id/delete", s.productDelete)
	auth.GET("/contacts", s.contacts)
	auth.POST("/contacts", s.contacts)
	auth.GET("/blogs", s.blogList)
}

func (s *Server) health(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
