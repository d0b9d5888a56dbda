package web

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"skystore/internal/models"
)

// mustLogin отправляет неавторизованных на страницу входа
func mustLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get("user_id") == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUser достаёт пользователя текущей сессии из БД
func (s *Server) currentUser(c *gin.Context) (*models.User, bool) {
	sess := sessions.Default(c)
	id, ok := sess.Get("user_id").(uint)
	if !ok {
		return nil, false
	}
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &u, true
}
