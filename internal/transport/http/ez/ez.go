package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "go-product-select/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param / c.Query 取
)

// AErr 带 HTTP 状态的错误对象，统一在 RegisterAction 里映射
type AErr struct {
	Status int
	Msg    string
	Err    error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Status: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Status: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Status: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Status: http.StatusNotFound, Msg: msg} }

// Internal 未分类的内部故障：对外收敛成 400 + msg，真实错误只进日志。
func Internal(msg string, err error) error {
	return &AErr{Status: http.StatusInternalServerError, Msg: msg, Err: err}
}

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, log *zap.Logger) EZ { return EZ{g: g, log: log} }

// 动作定义：I 入参，O 出参。Handler 返回信封的 message + payload。
type Action[I any, O any] struct {
	Method string // "GET" | "POST" | "PUT" | "DELETE"
	Path   string // 例："/auth/signup/"、"/product/:id/select/"
	Binder Binder
	Status int // 成功时的 HTTP 状态码，缺省 200
	Handler func(c *gin.Context, in *I) (string, O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		// 1) 绑定入参
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			c.JSON(http.StatusBadRequest, resp.Fail(bindErr.Error()))
			return
		}

		// 2) 执行
		msg, out, err := a.Handler(c, &in)

		// 3) 统一错误映射；500 段对外降级为 400，细节留在日志里
		if err != nil {
			var ae *AErr
			if errors.As(err, &ae) {
				status := ae.Status
				if status >= http.StatusInternalServerError {
					e.log.Error("action failed",
						zap.String("method", a.Method),
						zap.String("path", a.Path),
						zap.String("msg", ae.Msg),
						zap.Error(ae.Err),
					)
					status = http.StatusBadRequest
				}
				c.JSON(status, resp.Fail(ae.Error()))
				return
			}
			e.log.Error("action failed",
				zap.String("method", a.Method),
				zap.String("path", a.Path),
				zap.Error(err),
			)
			c.JSON(http.StatusBadRequest, resp.Fail(err.Error()))
			return
		}

		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, resp.OK(msg, out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}
