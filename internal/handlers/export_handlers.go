package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"taskDashboard/internal/derive"
	"taskDashboard/internal/logger"
)

type CalendarExporter interface {
	Export(ctx context.Context, events []derive.CalendarEvent) (int, error)
}

type ExportHandler struct {
	service  Service
	exporter CalendarExporter
}

func NewExportHandler(svc Service, exporter CalendarExporter) *ExportHandler {
	return &ExportHandler{
		service:  svc,
		exporter: exporter,
	}
}

// ExportCalendar выгружает текущую проекцию в Google Calendar.
func (h *ExportHandler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	events, err := h.service.CalendarEvents(r.Context())
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "export_calendar"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	exported, err := h.exporter.Export(r.Context(), events)
	if err != nil {
		logger.Error("HTTP: Ошибка экспорта календаря", err)
		responseWithError(w, http.StatusBadGateway, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Календарь выгружен",
		zap.Int("exported", exported),
		zap.Int("total", len(events)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, map[string]int{"exported": exported, "total": len(events)})
}
