package web

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"skystore/internal/models"
)

func setSession(c *gin.Context, u models.User) {
	sess := sessions.Default(c)
	sess.Set("user_id", u.ID)
	sess.Set("user_email", u.Email)
	_ = sess.Save()
}

func (s *Server) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", withUser(c, nil))
}

func (s *Server) register(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	pw := c.PostForm("password")
	if email == "" || pw == "" {
		c.HTML(http.StatusBadRequest, "register.tmpl", withUser(c, ViewData{"Error": "Fill all fields"}))
		return
	}
	var cnt int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&cnt)
	if cnt > 0 {
		c.HTML(http.StatusBadRequest, "register.tmpl", withUser(c, ViewData{"Error": "Email already registered"}))
		return
	}
	hash, err := models.HashPassword(pw)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "register.tmpl", withUser(c, ViewData{"Error": err.Error()}))
		return
	}
	u := models.User{Email: email, PasswordHash: hash}
	if err := s.db.Create(&u).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "register.tmpl", withUser(c, ViewData{"Error": err.Error()}))
		return
	}
	setSession(c, u)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", withUser(c, nil))
}

func (s *Server) login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	pw := c.PostForm("password")
	if email == "" || pw == "" {
		c.HTML(http.StatusBadRequest, "login.tmpl", withUser(c, ViewData{"Error": "Fill all fields"}))
		return
	}
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login.tmpl", withUser(c, ViewData{"Error": "User not found"}))
		return
	}
	if !models.CheckPassword(u.PasswordHash, pw) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", withUser(c, ViewData{"Error": "Wrong password"}))
		return
	}
	setSession(c, u)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}
