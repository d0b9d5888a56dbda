package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"skystore/internal/catalog"
	"skystore/internal/models"
)

func readProductForm(c *gin.Context) catalog.ProductForm {
	form := catalog.ProductForm{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		PriceCents:  parsePriceCents(c.PostForm("price")),
		IsPublished: c.PostForm("is_published") == "on",
		VersionName: strings.TrimSpace(c.PostForm("version_name")),
		IsActive:    c.PostForm("is_active") == "on",
	}
	if n, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32); err == nil {
		form.CategoryID = uint(n)
	}
	if n, err := strconv.Atoi(c.PostForm("version_number")); err == nil {
		form.VersionNumber = n
	}
	for _, raw := range c.PostFormArray("active_versions") {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
			form.ActiveVersionIDs = append(form.ActiveVersionIDs, uint(n))
		}
	}
	return form
}

func (s *Server) renderProductForm(c *gin.Context, code int, tmpl, title string, form catalog.ProductForm, errs catalog.FieldErrors, extra ViewData) {
	cats, _ := s.svc.Categories()
	data := ViewData{
		"Title":      title,
		"Form":       form,
		"Errors":     errs,
		"Categories": cats,
	}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(code, tmpl, withUser(c, data))
}

// productNewForm — форма создания продукта
func (s *Server) productNewForm(c *gin.Context) {
	s.renderProductForm(c, http.StatusOK, "product_form.tmpl",
		"Добавить новый продукт:", catalog.ProductForm{}, nil, nil)
}

// productCreate: валидация (включая модерацию текста), затем одной
// транзакцией продукт + начальная версия; до успешной валидации в БД
// ничего не пишется
func (s *Server) productCreate(c *gin.Context) {
	u, ok := s.currentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	form := readProductForm(c)
	if errs := form.Validate(); len(errs) > 0 {
		s.renderProductForm(c, http.StatusBadRequest, "product_form.tmpl",
			"Добавить новый продукт:", form, errs, nil)
		return
	}

	imgPath, imgErr := saveUploadedImage(c, "image")
	if imgErr != nil {
		s.renderProductForm(c, http.StatusBadRequest, "product_form.tmpl",
			"Добавить новый продукт:", form,
			catalog.FieldErrors{"Image": imgErr.Error()}, nil)
		return
	}

	p := models.Product{
		Title:       form.Title,
		Description: form.Description,
		PriceCents:  form.PriceCents,
		CategoryID:  form.CategoryID,
		OwnerID:     u.ID,
		ImagePath:   imgPath,
		// публикация — отдельное право, при создании флаг всегда снят
		IsPublished: false,
	}
	v := models.Version{
		VersionNumber: form.VersionNumber,
		VersionName:   form.VersionName,
		IsActive:      form.IsActive,
	}
	if err := s.svc.CreateProduct(&p, &v, form.ActiveVersionIDs); err != nil {
		s.renderProductForm(c, http.StatusInternalServerError, "product_form.tmpl",
			"Добавить новый продукт:", form,
			catalog.FieldErrors{"Form": err.Error()}, nil)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// редактировать может владелец или сотрудник; остальным — 403
func (s *Server) mayEdit(u *models.User, p models.Product) bool {
	return u.ID == p.OwnerID || u.IsStaff
}

// productEditForm — предзаполненная форма редактирования
func (s *Server) productEditForm(c *gin.Context) {
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
	u, ok := s.currentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if !s.mayEdit(u, p) {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}
	form := catalog.ProductForm{
		Title:       p.Title,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		CategoryID:  p.CategoryID,
		IsPublished: p.IsPublished,
	}
	s.renderProductForm(c, http.StatusOK, "product_edit_form.tmpl",
		"Редактирование продукта", form, nil, ViewData{
			"Product": p,
			"Price":   fmt.Sprintf("%.2f", float64(p.PriceCents)/100.0),
		})
}

// productUpdate сохраняет продукт на месте и возвращает на листинг
func (s *Server) productUpdate(c *gin.Context) {
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
	u, ok := s.currentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if !s.mayEdit(u, p) {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}

	form := readProductForm(c)
	if errs := form.Validate(); len(errs) > 0 {
		s.renderProductForm(c, http.StatusBadRequest, "product_edit_form.tmpl",
			"Редактирование продукта", form, errs, ViewData{"Product": p})
		return
	}

	// новая картинка — по желанию
	if imgPath, imgErr := saveUploadedImage(c, "image"); imgErr != nil {
		s.renderProductForm(c, http.StatusBadRequest, "product_edit_form.tmpl",
			"Редактирование продукта", form,
			catalog.FieldErrors{"Image": imgErr.Error()}, ViewData{"Product": p})
		return
	} else if imgPath != "" {
		p.ImagePath = imgPath
	}

	p.Title = form.Title
	p.Description = form.Description
	p.PriceCents = form.PriceCents
	p.CategoryID = form.CategoryID
	// право публикации отдельно от права редактирования
	if u.CanPublish || u.IsStaff {
		p.IsPublished = form.IsPublished
	}

	if err := s.svc.UpdateProduct(&p); err != nil {
		s.renderProductForm(c, http.StatusInternalServerError, "product_edit_form.tmpl",
			"Редактирование продукта", form,
			catalog.FieldErrors{"Form": err.Error()}, ViewData{"Product": p})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// productDeleteConfirm — страница подтверждения удаления
func (s *Server) productDeleteConfirm(c *gin.Context) {
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
	c.HTML(http.StatusOK, "product_confirm_delete.tmpl", withUser(c, ViewData{
		"Title":   "Удаление записи:",
		"Product": p,
	}))
}

// productDelete удаляет версии и продукт; проверки владельца здесь нет —
// как в исходном потоке, достаточно авторизации
func (s *Server) productDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	err := s.svc.DeleteProduct(id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
