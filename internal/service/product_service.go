package service

import (
	"strings"

	"go.uber.org/zap"

	"go-product-select/internal/domain"
)

// 可排序的序列化字段名 -> 列名。不在表内的 sort_by 静默忽略（退回默认 name）。
var sortableColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"description": "description",
	"price":       "price",
	"stock":       "stock",
}

type ProductService struct {
	products domain.ProductRepository
	log      *zap.Logger
}

func NewProductService(products domain.ProductRepository, log *zap.Logger) *ProductService {
	return &ProductService{products: products, log: log}
}

func (s *ProductService) Create(p *domain.Product) error {
	return s.products.Create(p)
}

func (s *ProductService) FindByID(id uint) (*domain.Product, error) {
	return s.products.FindByID(id)
}

// Search 过滤失败不向上抛：记日志后返回空集（对外仍是 200）。
func (s *ProductService) Search(query, sortBy, sortOrder string) []domain.Product {
	col, ok := sortableColumns[sortBy]
	if !ok {
		col = "name"
	}
	desc := strings.EqualFold(sortOrder, "desc")
	items, err := s.products.Search(query, col, desc)
	if err != nil {
		s.log.Error("product search failed", zap.String("query", query), zap.Error(err))
		return []domain.Product{}
	}
	return items
}

func (s *ProductService) List(q string, offset, limit int) ([]domain.Product, int64, error) {
	return s.products.List(q, offset, limit)
}
