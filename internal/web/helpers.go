package web

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ViewData map[string]any

func withUser(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	sess := sessions.Default(c)
	if v := sess.Get("user_email"); v != nil {
		data["UserEmail"] = v.(string)
	}
	return data
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parsePriceCents переводит цену из формы в центы ("12.50" -> 1250)
func parsePriceCents(price string) int {
	price = strings.ReplaceAll(strings.TrimSpace(price), ",", ".")
	var dollars, cents int
	if strings.Contains(price, ".") {
		fmt.Sscanf(price, "%d.%d", &dollars, &cents)
		if cents > 99 {
			cents = 99
		}
		return dollars*100 + cents
	}
	fmt.Sscanf(price, "%d", &dollars)
	return dollars * 100
}

// saveUploadedImage кладёт картинку из формы в uploads/ под случайным именем
func saveUploadedImage(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// файл не выбран — не ошибка
		return "", nil
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return "", fmt.Errorf("unsupported image format")
	}
	_ = os.MkdirAll("uploads", 0o755)
	name := uuid.NewString() + ext
	dst := filepath.Join("uploads", name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
