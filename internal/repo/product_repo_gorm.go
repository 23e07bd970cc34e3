package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-product-select/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error { return r.db.Create(p).Error }

func (r *ProductRepo) FindByID(id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

// Search 不分页，返回全部命中行。LOWER 两侧统一大小写（postgres 的 LIKE 区分大小写）。
func (r *ProductRepo) Search(query, orderCol string, desc bool) ([]domain.Product, error) {
	tx := r.db.Model(&domain.Product{})
	if query != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: orderCol}, Desc: desc})
	var items []domain.Product
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ProductRepo) List(q string, offset, limit int) ([]domain.Product, int64, error) {
	tx := r.db.Model(&domain.Product{})
	if q != "" {
		tx = tx.Where("name LIKE ?", "%"+q+"%")
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.Product
	if err := tx.Offset(offset).Limit(limit).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
