package httpserver

import (
	"context"

	"smart-reminders/internal/middleware"
	reminderHTTP "smart-reminders/internal/reminder/delivery/http"
	reminderUC "smart-reminders/internal/reminder/usecase"

	"github.com/gin-gonic/gin"
)

// setupReminderDomain initializes the reminder domain and registers its routes.
func (srv HTTPServer) setupReminderDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := reminderUC.New(srv.l, srv.parser, reminderUC.NewMetrics(srv.registry), reminderUC.Config{
		MinPreviewLength: srv.parserCfg.MinPreviewLength,
		MaxBulkSegments:  srv.parserCfg.MaxBulkSegments,
	})

	// 2. HTTP Handler
	h := reminderHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/reminders/*
	reminderHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Reminder domain registered (timezone %s)", srv.parser.Calendar().Location())
	return nil
}
