package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-product-select/internal/core/auth"
	"go-product-select/internal/core/blacklist"
	"go-product-select/internal/repo"
	"go-product-select/internal/service"
	mdw "go-product-select/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, bl blacklist.Blacklist) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 依赖
	users := repo.NewUserRepo(db)
	products := repo.NewProductRepo(db)
	selections := repo.NewSelectionRepo(db)
	userSvc := service.NewUserService(users)
	productSvc := service.NewProductService(products, l)
	selSvc := service.NewSelectionService(selections, products)

	// 公共分组 / 鉴权分组
	public := r.Group("")
	authed := r.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	MountAPI(public, authed,
		authModule{users: userSvc, jwter: jwter, bl: bl, log: l},
		productModule{products: productSvc, selections: selSvc, log: l},
		userModule{selections: selSvc, log: l},
	)

	return r
}
