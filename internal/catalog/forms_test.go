package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFormValidate(t *testing.T) {
	valid := ProductForm{
		Title:         "Ноутбук",
		Description:   "обычное описание",
		PriceCents:    99900,
		CategoryID:    1,
		VersionNumber: 1,
		VersionName:   "initial",
	}

	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, valid.Validate())
	})

	t.Run("MissingTitle", func(t *testing.T) {
		f := valid
		f.Title = ""
		errs := f.Validate()
		require.Contains(t, errs, "Title")
		assert.Equal(t, "this field is required", errs["Title"])
	})

	t.Run("MissingCategory", func(t *testing.T) {
		f := valid
		f.CategoryID = 0
		assert.Contains(t, f.Validate(), "CategoryID")
	})

	t.Run("NegativePrice", func(t *testing.T) {
		f := valid
		f.PriceCents = -100
		assert.Contains(t, f.Validate(), "PriceCents")
	})

	t.Run("BannedWordInTitle", func(t *testing.T) {
		f := valid
		f.Title = "Best CASINO laptop"
		errs := f.Validate()
		require.Contains(t, errs, "Title")
		assert.Contains(t, errs["Title"], "banned word")
	})

	t.Run("BannedWordInDescription", func(t *testing.T) {
		f := valid
		f.Description = "buy crypto here"
		errs := f.Validate()
		require.Contains(t, errs, "Description")
		assert.NotContains(t, errs, "Title")
	})
}
