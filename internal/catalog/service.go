package catalog

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"skystore/internal/models"
)

// ErrNotFound возвращается при запросе несуществующего продукта или категории
var ErrNotFound = errors.New("catalog: not found")

// Service — сервис запросов каталога поверх общего хранилища
type Service struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewService(db *gorm.DB, log zerolog.Logger) *Service {
	return &Service{db: db, log: log}
}

// ProductListItem — продукт с производными полями активной версии.
// Поля версии nil, если активной версии нет.
type ProductListItem struct {
	models.Product
	ActiveVersionNumber *int
	ActiveVersionName   *string
}

// Categories отдаёт все категории по возрастанию id
func (s *Service) Categories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Order("id asc").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// CategoryByID ищет категорию линейным проходом по результату Categories
// (повторяет исходный листинговый хелпер, а не точечный запрос)
func (s *Service) CategoryByID(id uint) (models.Category, error) {
	cats, err := s.Categories()
	if err != nil {
		return models.Category{}, err
	}
	for _, cat := range cats {
		if cat.ID == id {
			return cat, nil
		}
	}
	return models.Category{}, ErrNotFound
}

// Products отдаёт все продукты по названию с полями активной версии.
// Версии добираются одним запросом; при нескольких активных версиях
// листинг показывает первую по возрастанию id.
func (s *Service) Products() ([]ProductListItem, error) {
	var products []models.Product
	err := s.db.Preload("Category").Order("title asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	items := make([]ProductListItem, len(products))
	if len(products) == 0 {
		return items, nil
	}

	ids := make([]uint, len(products))
	for i, p := range products {
		items[i] = ProductListItem{Product: p}
		ids[i] = p.ID
	}
	var versions []models.Version
	err = s.db.
		Where("product_id IN ? AND is_active = ?", ids, true).
		Order("id asc").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	first := make(map[uint]models.Version, len(versions))
	for _, v := range versions {
		if _, ok := first[v.ProductID]; !ok {
			first[v.ProductID] = v
		}
	}
	for i := range items {
		if v, ok := first[items[i].ID]; ok {
			num, name := v.VersionNumber, v.VersionName
			items[i].ActiveVersionNumber = &num
			items[i].ActiveVersionName = &name
		}
	}
	return items, nil
}

// ProductByID отдаёт продукт с категорией или ErrNotFound
func (s *Service) ProductByID(id uint) (models.Product, error) {
	var p models.Product
	err := s.db.Preload("Category").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// ActiveVersion — правило карточки продукта: последняя активная версия
// (наибольший id); в отличие от листинга, который берёт первую.
// Возвращает nil без ошибки, если активной версии нет.
func (s *Service) ActiveVersion(productID uint) (*models.Version, error) {
	var v models.Version
	err := s.db.
		Where("product_id = ? AND is_active = ?", productID, true).
		Order("id desc").
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateProduct создаёт продукт вместе с начальной версией одной
// транзакцией: продукт, версия, метка активной версии, m2m-набор
func (s *Service) CreateProduct(p *models.Product, v *models.Version, activeVersionIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		v.ProductID = p.ID
		if err := tx.Create(v).Error; err != nil {
			return err
		}
		p.ActiveVersionLabel = v.VersionName
		if err := tx.Model(p).Update("active_version_label", v.VersionName).Error; err != nil {
			return err
		}
		if len(activeVersionIDs) == 0 {
			return nil
		}
		var selected []models.Version
		if err := tx.Where("id IN ?", activeVersionIDs).Find(&selected).Error; err != nil {
			return err
		}
		return tx.Model(p).Association("ActiveVersions").Replace(&selected)
	})
}

// UpdateProduct сохраняет продукт на месте
func (s *Service) UpdateProduct(p *models.Product) error {
	return s.db.Save(p).Error
}

// DeleteProduct удаляет версии продукта и сам продукт одной транзакцией
func (s *Service) DeleteProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Model(&p).Association("ActiveVersions").Clear(); err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", p.ID).Delete(&models.Version{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}

// Blogs отдаёт все записи блога без фильтрации и пагинации
func (s *Service) Blogs() ([]models.Blog, error) {
	var blogs []models.Blog
	if err := s.db.Order("id asc").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}
