package service

import (
	"go-product-select/internal/domain"
	"go-product-select/internal/repo"
)

type SelectionService struct {
	selections domain.SelectionRepository
	products   domain.ProductRepository
}

func NewSelectionService(selections domain.SelectionRepository, products domain.ProductRepository) *SelectionService {
	return &SelectionService{selections: selections, products: products}
}

// Select 先插入、冲突再恢复（compare-and-insert），唯一索引是唯一的并发保护：
// 两个并发 Select 只有一个插入成功，另一个命中冲突后走"已选过"路径。
// again=true 表示该 (user, product) 已有行，此时把标志翻回 true 复用原行。
func (s *SelectionService) Select(userID, productID uint) (sel *domain.ProductSelection, again bool, err error) {
	p, err := s.products.FindByID(productID)
	if err != nil {
		return nil, false, err
	}
	if p == nil {
		return nil, false, domain.ErrNotFound
	}

	sel = &domain.ProductSelection{UserID: userID, ProductID: productID, Selected: true}
	err = s.selections.Create(sel)
	if err == nil {
		return sel, false, nil
	}
	if !repo.IsDupKey(err) {
		return nil, false, err
	}

	existing, ferr := s.selections.FindByUserProduct(userID, productID)
	if ferr != nil {
		return nil, false, ferr
	}
	if existing == nil {
		// 冲突但又查不到行，按原始错误上报
		return nil, false, err
	}
	if !existing.Selected {
		existing.Selected = true
		if uerr := s.selections.Update(existing); uerr != nil {
			return nil, false, uerr
		}
	}
	return existing, true, nil
}

// Deselect 不具备 Select 的创建幂等性：没有已存在的行就是 404。
func (s *SelectionService) Deselect(userID, productID uint) (*domain.ProductSelection, error) {
	sel, err := s.selections.FindByUserProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return nil, domain.ErrNotFound
	}
	sel.Selected = false
	if err := s.selections.Update(sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *SelectionService) ListForUser(userID uint, expand bool, offset, limit int) ([]domain.ProductSelection, int64, error) {
	return s.selections.ListByUser(userID, expand, offset, limit)
}
