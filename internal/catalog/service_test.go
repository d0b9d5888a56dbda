package catalog

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appdb "skystore/internal/db"
	"skystore/internal/logger"
	"skystore/internal/models"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, appdb.AutoMigrate(gdb))
	return NewService(gdb, logger.New(io.Discard)), gdb
}

func seedCategory(t *testing.T, gdb *gorm.DB, name string) models.Category {
	t.Helper()
	cat := models.Category{Name: name}
	require.NoError(t, gdb.Create(&cat).Error)
	return cat
}

func seedProduct(t *testing.T, gdb *gorm.DB, title string, categoryID uint) models.Product {
	t.Helper()
	p := models.Product{Title: title, CategoryID: categoryID, PriceCents: 1000}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}

func seedVersion(t *testing.T, gdb *gorm.DB, productID uint, number int, name string, active bool) models.Version {
	t.Helper()
	v := models.Version{ProductID: productID, VersionNumber: number, VersionName: name, IsActive: active}
	require.NoError(t, gdb.Create(&v).Error)
	return v
}

func TestProducts(t *testing.T) {
	t.Run("OrderedByTitle", func(t *testing.T) {
		svc, gdb := newTestService(t)
		cat := seedCategory(t, gdb, "Техника")
		seedProduct(t, gdb, "Якорь", cat.ID)
		seedProduct(t, gdb, "Арбуз", cat.ID)
		seedProduct(t, gdb, "Мышь", cat.ID)

		items, err := svc.Products()
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Арбуз", items[0].Title)
		assert.Equal(t, "Мышь", items[1].Title)
		assert.Equal(t, "Якорь", items[2].Title)
	})

	t.Run("NoActiveVersion", func(t *testing.T) {
		svc, gdb := newTestService(t)
		cat := seedCategory(t, gdb, "Техника")
		p := seedProduct(t, gdb, "Ноутбук", cat.ID)
		seedVersion(t, gdb, p.ID, 1, "alpha", false)

		items, err := svc.Products()
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Nil(t, items[0].ActiveVersionNumber)
		assert.Nil(t, items[0].ActiveVersionName)
	})

	t.Run("OneActiveVersion", func(t *testing.T) {
		svc, gdb := newTestService(t)
		cat := seedCategory(t, gdb, "Техника")
		p := seedProduct(t, gdb, "Ноутбук", cat.ID)
		seedVersion(t, gdb, p.ID, 1, "alpha", false)
		seedVersion(t, gdb, p.ID, 2, "beta", true)
		seedVersion(t, gdb, p.ID, 3, "gamma", false)

		items, err := svc.Products()
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].ActiveVersionNumber)
		assert.Equal(t, 2, *items[0].ActiveVersionNumber)
		assert.Equal(t, "beta", *items[0].ActiveVersionName)

		// и карточка продукта видит ту же единственную активную версию
		v, err := svc.ActiveVersion(p.ID)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, 2, v.VersionNumber)
		assert.Equal(t, "beta", v.VersionName)
	})

	t.Run("MultipleActiveVersions", func(t *testing.T) {
		// граничный случай: активных версий несколько; листинг берёт
		// первую по id, карточка — последнюю
		svc, gdb := newTestService(t)
		cat := seedCategory(t, gdb, "Техника")
		p := seedProduct(t, gdb, "Ноутбук", cat.ID)
		seedVersion(t, gdb, p.ID, 1, "early", true)
		seedVersion(t, gdb, p.ID, 2, "late", true)

		items, err := svc.Products()
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].ActiveVersionName)
		assert.Equal(t, "early", *items[0].ActiveVersionName)

		v, err := svc.ActiveVersion(p.ID)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, "late", v.VersionName)
	})
}

func TestActiveVersion_None(t *testing.T) {
	svc, gdb := newTestService(t)
	cat := seedCategory(t, gdb, "Техника")
	p := seedProduct(t, gdb, "Ноутбук", cat.ID)

	v, err := svc.ActiveVersion(p.ID)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestCategoryByID(t *testing.T) {
	svc, gdb := newTestService(t)
	seedCategory(t, gdb, "Техника")
	cat := seedCategory(t, gdb, "Книги")

	t.Run("Found", func(t *testing.T) {
		got, err := svc.CategoryByID(cat.ID)
		require.NoError(t, err)
		assert.Equal(t, "Книги", got.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.CategoryByID(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateProduct(t *testing.T) {
	svc, gdb := newTestService(t)
	cat := seedCategory(t, gdb, "Техника")
	other := seedProduct(t, gdb, "Другой", cat.ID)
	existing := seedVersion(t, gdb, other.ID, 1, "old", true)

	p := models.Product{Title: "Ноутбук", CategoryID: cat.ID, OwnerID: 7, PriceCents: 500}
	v := models.Version{VersionNumber: 1, VersionName: "initial", IsActive: true}
	require.NoError(t, svc.CreateProduct(&p, &v, []uint{existing.ID}))

	// продукт и версия созданы и связаны
	require.NotZero(t, p.ID)
	var stored models.Version
	require.NoError(t, gdb.First(&stored, "product_id = ?", p.ID).Error)
	assert.Equal(t, "initial", stored.VersionName)
	assert.True(t, stored.IsActive)

	// метка активной версии записана
	var fresh models.Product
	require.NoError(t, gdb.First(&fresh, "id = ?", p.ID).Error)
	assert.Equal(t, "initial", fresh.ActiveVersionLabel)

	// m2m-набор заменён на выбранные версии
	count := gdb.Model(&fresh).Association("ActiveVersions").Count()
	assert.EqualValues(t, 1, count)
}

func TestDeleteProduct(t *testing.T) {
	t.Run("RemovesAllVersions", func(t *testing.T) {
		svc, gdb := newTestService(t)
		cat := seedCategory(t, gdb, "Техника")
		p := seedProduct(t, gdb, "Ноутбук", cat.ID)
		seedVersion(t, gdb, p.ID, 1, "alpha", false)
		seedVersion(t, gdb, p.ID, 2, "beta", true)
		keep := seedProduct(t, gdb, "Остаётся", cat.ID)
		seedVersion(t, gdb, keep.ID, 1, "kept", true)

		require.NoError(t, svc.DeleteProduct(p.ID))

		var versions int64
		require.NoError(t, gdb.Model(&models.Version{}).Where("product_id = ?", p.ID).Count(&versions).Error)
		assert.Zero(t, versions)

		_, err := svc.ProductByID(p.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		// чужие версии не тронуты
		require.NoError(t, gdb.Model(&models.Version{}).Where("product_id = ?", keep.ID).Count(&versions).Error)
		assert.EqualValues(t, 1, versions)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _ := newTestService(t)
		assert.ErrorIs(t, svc.DeleteProduct(12345), ErrNotFound)
	})
}

func TestBlogs(t *testing.T) {
	svc, gdb := newTestService(t)
	require.NoError(t, gdb.Create(&models.Blog{Title: "Первая", Slug: "pervaya", Body: "текст"}).Error)
	require.NoError(t, gdb.Create(&models.Blog{Title: "Вторая", Slug: "vtoraya", Body: "текст"}).Error)

	blogs, err := svc.Blogs()
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "Первая", blogs[0].Title)
}
