package domain

import (
	"errors"
	"time"
)

// 选择是独立的一行记录（user+product 唯一），不是 Product 上的字段。
// 行只创建和翻转，从不删除。
type ProductSelection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:unique_user_product" json:"user"`
	ProductID uint      `gorm:"not null;uniqueIndex:unique_user_product" json:"product"`
	Selected  bool      `gorm:"not null" json:"selected"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product   Product   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (ProductSelection) TableName() string { return "product_selections" }

type SelectionRepository interface {
	Create(s *ProductSelection) error
	FindByUserProduct(userID, productID uint) (*ProductSelection, error)
	Update(s *ProductSelection) error
	// expand=true 时预加载 User/Product
	ListByUser(userID uint, expand bool, offset, limit int) ([]ProductSelection, int64, error)
}

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
