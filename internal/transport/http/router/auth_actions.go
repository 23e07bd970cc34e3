package router

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-product-select/internal/core/auth"
	"go-product-select/internal/core/blacklist"
	"go-product-select/internal/domain"
	"go-product-select/internal/service"
	httpez "go-product-select/internal/transport/http/ez"
)

type authModule struct {
	users *service.UserService
	jwter *auth.JWTer
	bl    blacklist.Blacklist
	log   *zap.Logger
}

func (authModule) Priority() int { return 10 }

func (m authModule) MountAPI(public, _ *gin.RouterGroup) {
	e := httpez.New(public, m.log)

	// --- POST /auth/signup/ ---
	type signupIn struct {
		Username string `json:"username" binding:"required,max=150"`
		Email    string `json:"email"    binding:"required,email,max=254"`
		Password string `json:"password" binding:"required"` // write-only，出参里没有
	}
	type signupOut struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	httpez.RegisterAction[signupIn, signupOut](e, httpez.Action[signupIn, signupOut]{
		Method: http.MethodPost,
		Path:   "/auth/signup/",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *signupIn) (string, signupOut, error) {
			u, err := m.users.Signup(in.Username, in.Email, in.Password)
			if errors.Is(err, domain.ErrDuplicate) {
				return "", signupOut{}, httpez.BadRequest("user with this username already exists")
			}
			if err != nil {
				return "", signupOut{}, httpez.Internal("signup failed", err)
			}
			return "user created", signupOut{ID: u.ID, Username: u.Username, Email: u.Email}, nil
		},
	})

	// --- POST /auth/login/ ---
	type loginIn struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	httpez.RegisterAction[loginIn, auth.Pair](e, httpez.Action[loginIn, auth.Pair]{
		Method: http.MethodPost,
		Path:   "/auth/login/",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (string, auth.Pair, error) {
			u, err := m.users.Authenticate(in.Username, in.Password)
			if errors.Is(err, domain.ErrInvalidCredentials) {
				return "", auth.Pair{}, httpez.BadRequest("no active account found with the given credentials")
			}
			if err != nil {
				return "", auth.Pair{}, httpez.Internal("login failed", err)
			}
			pair, err := m.jwter.IssuePair(strconv.FormatUint(uint64(u.ID), 10), u.Role)
			if err != nil {
				return "", auth.Pair{}, httpez.Internal("issue token failed", err)
			}
			return "login success", pair, nil
		},
	})

	// --- POST /auth/token/refresh/ ---
	// 轮换：旧 refresh 进黑名单，发新 pair
	type refreshIn struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	httpez.RegisterAction[refreshIn, auth.Pair](e, httpez.Action[refreshIn, auth.Pair]{
		Method: http.MethodPost,
		Path:   "/auth/token/refresh/",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *refreshIn) (string, auth.Pair, error) {
			claims, err := m.jwter.ParseKind(in.Refresh, auth.KindRefresh)
			if err != nil {
				return "", auth.Pair{}, httpez.BadRequest("token is invalid or expired")
			}
			revoked, err := m.bl.Has(c, claims.ID)
			if err != nil {
				return "", auth.Pair{}, httpez.Internal("blacklist check failed", err)
			}
			if revoked {
				return "", auth.Pair{}, httpez.BadRequest("token is blacklisted")
			}
			if err := m.bl.Add(c, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
				return "", auth.Pair{}, httpez.Internal("blacklist add failed", err)
			}
			pair, err := m.jwter.IssuePair(claims.UID, claims.Role)
			if err != nil {
				return "", auth.Pair{}, httpez.Internal("issue token failed", err)
			}
			return "token refreshed", pair, nil
		},
	})

	// --- POST /auth/logout/ ---
	type logoutIn struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	httpez.RegisterAction[logoutIn, any](e, httpez.Action[logoutIn, any]{
		Method: http.MethodPost,
		Path:   "/auth/logout/",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *logoutIn) (string, any, error) {
			claims, err := m.jwter.ParseKind(in.Refresh, auth.KindRefresh)
			if err != nil {
				return "", nil, httpez.BadRequest("token is invalid or expired")
			}
			if err := m.bl.Add(c, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
				return "", nil, httpez.Internal("blacklist add failed", err)
			}
			return "logout success", nil, nil
		},
	})
}
