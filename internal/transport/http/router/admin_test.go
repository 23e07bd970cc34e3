package router

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-product-select/internal/core/auth"
	"go-product-select/internal/core/database"
	"go-product-select/internal/domain"
)

func newAdminTestEngine(t *testing.T) (*gin.Engine, *gorm.DB, *auth.JWTer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.ProductSelection{}))

	jwter := &auth.JWTer{
		Secret:     []byte("test-secret"),
		Issuer:     "test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
	return NewAdminEngine(zap.NewNop(), db, jwter), db, jwter
}

func issueAccess(t *testing.T, jwter *auth.JWTer, uid uint, role string) string {
	t.Helper()
	pair, err := jwter.IssuePair(strconv.FormatUint(uint64(uid), 10), role)
	require.NoError(t, err)
	return pair.Access
}

func TestAdminRequiresAdminRole(t *testing.T) {
	r, db, jwter := newAdminTestEngine(t)

	u := &domain.User{Username: "plain", Email: "plain@example.com", PasswordHash: "x", Role: "user"}
	require.NoError(t, db.Create(u).Error)

	// 无 token
	w, env := doReq(t, r, http.MethodGet, "/admin/v1/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, env.Status)

	// user 角色挡在 403
	w, env = doReq(t, r, http.MethodGet, "/admin/v1/users", issueAccess(t, jwter, u.ID, "user"), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.False(t, env.Status)
	require.Empty(t, env.Data)
}

func TestAdminListings(t *testing.T) {
	r, db, jwter := newAdminTestEngine(t)

	admin := &domain.User{Username: "root", Email: "root@example.com", PasswordHash: "x", Role: "admin"}
	require.NoError(t, db.Create(admin).Error)
	require.NoError(t, db.Create(&domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: "user"}).Error)
	require.NoError(t, db.Create(&domain.Product{Name: "Laptop", Description: "d", Price: 999.99, Stock: 5}).Error)
	require.NoError(t, db.Create(&domain.Product{Name: "Camera", Description: "d", Price: 250, Stock: 3}).Error)

	token := issueAccess(t, jwter, admin.ID, "admin")

	type listOut struct {
		Total int64            `json:"total"`
		Items []map[string]any `json:"items"`
	}

	w, env := doReq(t, r, http.MethodGet, "/admin/v1/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Status)
	var out listOut
	payload(t, env, &out)
	require.EqualValues(t, 2, out.Total)
	require.Len(t, out.Items, 2)
	_, leaked := out.Items[0]["password"]
	require.False(t, leaked)

	// 模糊搜
	w, env = doReq(t, r, http.MethodGet, "/admin/v1/users?q=ali", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload(t, env, &out)
	require.EqualValues(t, 1, out.Total)
	require.Equal(t, "alice", out.Items[0]["username"])

	w, env = doReq(t, r, http.MethodGet, "/admin/v1/products?q=Lap", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload(t, env, &out)
	require.EqualValues(t, 1, out.Total)
	require.Equal(t, "Laptop", out.Items[0]["name"])
}
