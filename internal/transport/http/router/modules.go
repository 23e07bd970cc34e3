package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// APIModule 一个功能域的路由挂载单元；public 无鉴权，authed 已过 AuthJWT
type APIModule interface {
	MountAPI(public, authed *gin.RouterGroup)
}

// 可选：实现该接口可控制挂载顺序（数值越小越先挂）
// 不实现则默认 100
type prioritizer interface{ Priority() int }

func MountAPI(public, authed *gin.RouterGroup, mods ...APIModule) {
	sorted := append([]APIModule(nil), mods...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return priorityOf(sorted[i]) < priorityOf(sorted[j])
	})
	for _, m := range sorted {
		m.MountAPI(public, authed)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
