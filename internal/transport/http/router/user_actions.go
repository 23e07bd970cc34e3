package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-product-select/internal/service"
	httpez "go-product-select/internal/transport/http/ez"
	mdw "go-product-select/internal/transport/http/middleware"
)

type userModule struct {
	selections *service.SelectionService
	log        *zap.Logger
}

func (userModule) Priority() int { return 30 }

func (m userModule) MountAPI(_, authed *gin.RouterGroup) {
	e := httpez.New(authed, m.log)

	// --- GET /user/products/ 当前用户的全部选择 ---
	// depth>0 时 user/product 展开为嵌套对象，否则只给 id
	type listIn struct {
		Depth int `form:"depth,default=0"`
		Page  int `form:"page,default=1"`
		Size  int `form:"size,default=20"`
	}
	httpez.RegisterAction[listIn, gin.H](e, httpez.Action[listIn, gin.H]{
		Method: http.MethodGet,
		Path:   "/user/products/",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listIn) (string, gin.H, error) {
			if in.Page < 1 {
				in.Page = 1
			}
			if in.Size <= 0 || in.Size > 100 {
				in.Size = 20
			}
			offset := (in.Page - 1) * in.Size

			expand := in.Depth > 0
			items, total, err := m.selections.ListForUser(c.GetUint(mdw.KeyUserID), expand, offset, in.Size)
			if err != nil {
				return "", nil, httpez.Internal("list selections failed", err)
			}

			list := make([]any, 0, len(items))
			for i := range items {
				s := &items[i]
				if expand {
					list = append(list, gin.H{
						"id":       s.ID,
						"user":     s.User,
						"product":  s.Product,
						"selected": s.Selected,
					})
				} else {
					list = append(list, s)
				}
			}
			return "selections found", gin.H{
				"list": list, "total": total, "page": in.Page, "size": in.Size,
			}, nil
		},
	})
}
