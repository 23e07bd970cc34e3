package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-product-select/internal/service"
	resp "go-product-select/internal/transport/http/response"
)

type AdminHandler struct {
	users    *service.UserService
	products *service.ProductService
}

func NewAdminHandler(users *service.UserService, products *service.ProductService) *AdminHandler {
	return &AdminHandler{users: users, products: products}
}

type adminListQ struct {
	Offset int    `form:"offset,default=0"`
	Limit  int    `form:"limit,default=20"`
	Q      string `form:"q"` // 模糊搜（用户按 username/email，商品按 name）
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var in adminListQ
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Fail(err.Error()))
		return
	}
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 20
	}
	users, total, err := h.users.List(in.Q, in.Offset, in.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, resp.Fail("list users failed"))
		return
	}
	type row struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	rows := make([]row, 0, len(users))
	for _, u := range users {
		rows = append(rows, row{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	c.JSON(http.StatusOK, resp.OK("users found", gin.H{"total": total, "items": rows}))
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	var in adminListQ
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Fail(err.Error()))
		return
	}
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 20
	}
	products, total, err := h.products.List(in.Q, in.Offset, in.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, resp.Fail("list products failed"))
		return
	}
	c.JSON(http.StatusOK, resp.OK("products found", gin.H{"total": total, "items": products}))
}
