package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skystore/internal/catalog"
)

// index — список всех продуктов с полями активной версии
func (s *Server) index(c *gin.Context) {
	items, err := s.svc.Products()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", withUser(c, ViewData{
		"Title":    "Каталог",
		"Products": items,
	}))
}

// productDetail — карточка продукта
func (s *Server) productDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	p, err := s.svc.ProductByID(id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	v, err := s.svc.ActiveVersion(p.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	// подсказка внешнему кеширующему слою на 15 минут
	c.Header("Cache-Control", "public, max-age=900")

	data := ViewData{
		"Title":   "Товар из категории: " + p.Category.Name,
		"Product": p,
	}
	if v != nil {
		data["ActiveVersionNumber"] = v.VersionNumber
		data["ActiveVersionName"] = v.VersionName
	}
	c.HTML(http.StatusOK, "product_detail.tmpl", withUser(c, data))
}

// categoryList — список категорий
func (s *Server) categoryList(c *gin.Context) {
	cats, err := s.svc.Categories()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "category_list.tmpl", withUser(c, ViewData{
		"Title":      "Категории товаров",
		"Categories": cats,
	}))
}

// categoryDetail — карточка категории
func (s *Server) categoryDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	cat, err := s.svc.CategoryByID(id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "category_detail.tmpl", withUser(c, ViewData{
		"Title":    cat.Name,
		"Category": cat,
	}))
}

// blogList — блоговые записи, только для авторизованных
func (s *Server) blogList(c *gin.Context) {
	blogs, err := s.svc.Blogs()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "blog_list.tmpl", withUser(c, ViewData{
		"Title": "Блог",
		"Blogs": blogs,
	}))
}

// contacts: POST пишет сообщение в операционный лог, страница одна и та же
func (s *Server) contacts(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		s.log.Info().
			Str("name", c.PostForm("name")).
			Str("email", c.PostForm("email")).
			Str("message", c.PostForm("message")).
			Msg("contact message")
	}
	c.HTML(http.StatusOK, "contacts.tmpl", withUser(c, ViewData{"Title": "Контакты"}))
}
