package track

import "github.com/clicktally/clicktally/internal/provider"

// Handler 追踪/回传接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建追踪处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
