package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-product-select/internal/core/database"
	"go-product-select/internal/domain"
	"go-product-select/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.ProductSelection{}))
	return db
}

func seed(t *testing.T, db *gorm.DB) (*SelectionService, uint, uint) {
	t.Helper()
	u := &domain.User{Username: "u1", Email: "u1@example.com", PasswordHash: "x", Role: "user"}
	require.NoError(t, db.Create(u).Error)
	p := &domain.Product{Name: "Laptop", Description: "d", Price: 10, Stock: 1}
	require.NoError(t, db.Create(p).Error)
	svc := NewSelectionService(repo.NewSelectionRepo(db), repo.NewProductRepo(db))
	return svc, u.ID, p.ID
}

func TestSelectCreatesThenReusesRow(t *testing.T) {
	db := newTestDB(t)
	svc, uid, pid := seed(t, db)

	sel, again, err := svc.Select(uid, pid)
	require.NoError(t, err)
	require.False(t, again)
	require.True(t, sel.Selected)

	// 幂等律：重复 Select 不报错、不多插行
	sel2, again, err := svc.Select(uid, pid)
	require.NoError(t, err)
	require.True(t, again)
	require.Equal(t, sel.ID, sel2.ID)

	var count int64
	require.NoError(t, db.Model(&domain.ProductSelection{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSelectMissingProduct(t *testing.T) {
	db := newTestDB(t)
	svc, uid, _ := seed(t, db)

	_, _, err := svc.Select(uid, 9999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeselectRequiresExistingRow(t *testing.T) {
	db := newTestDB(t)
	svc, uid, pid := seed(t, db)

	_, err := svc.Deselect(uid, pid)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = svc.Select(uid, pid)
	require.NoError(t, err)

	sel, err := svc.Deselect(uid, pid)
	require.NoError(t, err)
	require.False(t, sel.Selected)

	// 取消后再选：翻回 true，仍是同一行
	sel2, again, err := svc.Select(uid, pid)
	require.NoError(t, err)
	require.True(t, again)
	require.True(t, sel2.Selected)
	require.Equal(t, sel.ID, sel2.ID)
}

func TestSelectRecoversFromInsertRace(t *testing.T) {
	db := newTestDB(t)
	svc, uid, pid := seed(t, db)

	// 先手工占住 (user, product)，模拟并发里输掉插入的那一方
	require.NoError(t, db.Create(&domain.ProductSelection{
		UserID: uid, ProductID: pid, Selected: true,
	}).Error)

	sel, again, err := svc.Select(uid, pid)
	require.NoError(t, err)
	require.True(t, again)
	require.True(t, sel.Selected)

	var count int64
	require.NoError(t, db.Model(&domain.ProductSelection{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestIsDupKey(t *testing.T) {
	// 覆盖三种驱动的错误文案
	for _, msg := range []string{
		"UNIQUE constraint failed: product_selections.user_id, product_selections.product_id",
		"Error 1062 (23000): Duplicate entry '1-1' for key 'unique_user_product'",
		`ERROR: duplicate key value violates unique constraint "unique_user_product" (SQLSTATE 23505)`,
	} {
		require.True(t, repo.IsDupKey(errString(msg)), msg)
	}
	require.False(t, repo.IsDupKey(nil))
	require.False(t, repo.IsDupKey(errString("connection refused")))
}

type errString string

func (e errString) Error() string { return string(e) }
