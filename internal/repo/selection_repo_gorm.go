package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-product-select/internal/domain"
)

type SelectionRepo struct{ db *gorm.DB }

func NewSelectionRepo(db *gorm.DB) *SelectionRepo { return &SelectionRepo{db: db} }

// Create 直接尝试插入，唯一索引冲突交给调用方判断（IsDupKey）。
func (r *SelectionRepo) Create(s *domain.ProductSelection) error {
	return r.db.Create(s).Error
}

func (r *SelectionRepo) FindByUserProduct(userID, productID uint) (*domain.ProductSelection, error) {
	var s domain.ProductSelection
	err := r.db.First(&s, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

// Update 用 map 更新，保证 selected=false（零值）也能写入。
func (r *SelectionRepo) Update(s *domain.ProductSelection) error {
	return r.db.Model(s).Updates(map[string]any{"selected": s.Selected}).Error
}

func (r *SelectionRepo) ListByUser(userID uint, expand bool, offset, limit int) ([]domain.ProductSelection, int64, error) {
	tx := r.db.Model(&domain.ProductSelection{}).Where("user_id = ?", userID)
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if expand {
		tx = tx.Preload("User").Preload("Product")
	}
	var items []domain.ProductSelection
	if err := tx.Offset(offset).Limit(limit).Order("id").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
