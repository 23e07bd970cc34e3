package domain

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"type:decimal(8,2);not null" json:"price"`
	Stock       int       `gorm:"not null" json:"stock"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (Product) TableName() string { return "products" }

type ProductRepository interface {
	Create(p *Product) error
	FindByID(id uint) (*Product, error)
	// Search 按名称子串过滤（大小写不敏感），orderCol 必须是已校验过的列名
	Search(query, orderCol string, desc bool) ([]Product, error)
	List(q string, offset, limit int) ([]Product, int64, error)
}
