package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-product-select/internal/domain"
	"go-product-select/internal/service"
	httpez "go-product-select/internal/transport/http/ez"
	mdw "go-product-select/internal/transport/http/middleware"
)

type productModule struct {
	products   *service.ProductService
	selections *service.SelectionService
	log        *zap.Logger
}

func (productModule) Priority() int { return 20 }

func (m productModule) MountAPI(_, authed *gin.RouterGroup) {
	e := httpez.New(authed, m.log)

	// --- POST /product/create/ ---
	// Price/Stock 用指针让 0 通过 required 校验
	type createIn struct {
		Name        string   `json:"name"        binding:"required,max=100"`
		Description string   `json:"description" binding:"required"`
		Price       *float64 `json:"price"       binding:"required,gte=0"`
		Stock       *int     `json:"stock"       binding:"required"`
	}
	httpez.RegisterAction[createIn, *domain.Product](e, httpez.Action[createIn, *domain.Product]{
		Method: http.MethodPost,
		Path:   "/product/create/",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *createIn) (string, *domain.Product, error) {
			p := &domain.Product{
				Name:        in.Name,
				Description: in.Description,
				Price:       *in.Price,
				Stock:       *in.Stock,
			}
			if err := m.products.Create(p); err != nil {
				return "", nil, httpez.Internal("create product failed", err)
			}
			return "product created", p, nil
		},
	})

	// --- GET /product/search/?query=&sort_by=&sort_order= ---
	type searchIn struct {
		Query     string `form:"query"`
		SortBy    string `form:"sort_by"`
		SortOrder string `form:"sort_order"`
	}
	httpez.RegisterAction[searchIn, []domain.Product](e, httpez.Action[searchIn, []domain.Product]{
		Method: http.MethodGet,
		Path:   "/product/search/",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *searchIn) (string, []domain.Product, error) {
			// Search 内部故障已收敛为空集，这里永远成功
			items := m.products.Search(in.Query, in.SortBy, in.SortOrder)
			return "products found", items, nil
		},
	})

	// --- POST /product/:id/select/ ---
	httpez.RegisterAction[struct{}, *domain.ProductSelection](e, httpez.Action[struct{}, *domain.ProductSelection]{
		Method: http.MethodPost,
		Path:   "/product/:id/select/",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (string, *domain.ProductSelection, error) {
			id, err := strconv.ParseUint(c.Param("id"), 10, 64)
			if err != nil {
				return "", nil, httpez.NotFound("product doesn't exist")
			}
			sel, again, err := m.selections.Select(c.GetUint(mdw.KeyUserID), uint(id))
			if errors.Is(err, domain.ErrNotFound) {
				return "", nil, httpez.NotFound("product doesn't exist")
			}
			if err != nil {
				return "", nil, httpez.Internal("general error on select", err)
			}
			if again {
				return "product selected again", sel, nil
			}
			return "product selected", sel, nil
		},
	})

	// --- PUT /product/:id/select/ ---
	// 取消选择要求行已存在，没有就是 404（与 Select 的幂等不对称）
	httpez.RegisterAction[struct{}, *domain.ProductSelection](e, httpez.Action[struct{}, *domain.ProductSelection]{
		Method: http.MethodPut,
		Path:   "/product/:id/select/",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (string, *domain.ProductSelection, error) {
			id, err := strconv.ParseUint(c.Param("id"), 10, 64)
			if err != nil {
				return "", nil, httpez.NotFound("selection doesn't exist")
			}
			sel, err := m.selections.Deselect(c.GetUint(mdw.KeyUserID), uint(id))
			if errors.Is(err, domain.ErrNotFound) {
				return "", nil, httpez.NotFound("selection doesn't exist")
			}
			if err != nil {
				return "", nil, httpez.Internal("general error on deselect", err)
			}
			return "product deselected", sel, nil
		},
	})
}
