package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BannedWords — слова модерации; продукт с ними в названии или описании
// не проходит валидацию
var BannedWords = []string{
	"casino", "cryptocurrency", "crypto", "exchange", "cheapest",
	"free", "scam", "fraud", "police", "radar",
}

var validate = validator.New()

// ProductForm — поля формы создания/редактирования продукта вместе с
// полями начальной версии
type ProductForm struct {
	Title            string `validate:"required"`
	Description      string
	PriceCents       int  `validate:"gte=0"`
	CategoryID       uint `validate:"required"`
	IsPublished      bool
	VersionNumber    int `validate:"gte=0"`
	VersionName      string
	IsActive         bool
	ActiveVersionIDs []uint
}

// FieldErrors — ошибки валидации по полям формы
type FieldErrors map[string]string

// Validate — чистая проверка формы: обязательные поля и модерация текста.
// Пустая карта означает успех; никаких побочных эффектов.
func (f ProductForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.Tag() {
				case "required":
					errs[fe.Field()] = "this field is required"
				case "gte":
					errs[fe.Field()] = "must not be negative"
				default:
					errs[fe.Field()] = "invalid value"
				}
			}
		} else {
			errs["Form"] = err.Error()
		}
	}
	if w := bannedWord(f.Title); w != "" {
		errs["Title"] = fmt.Sprintf("contains a banned word: %q", w)
	}
	if w := bannedWord(f.Description); w != "" {
		errs["Description"] = fmt.Sprintf("contains a banned word: %q", w)
	}
	return errs
}

func bannedWord(text string) string {
	lower := strings.ToLower(text)
	for _, w := range BannedWords {
		if strings.Contains(lower, w) {
			return w
		}
	}
	return ""
}
