package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"taskDashboard/internal/handlers/dto"
	"taskDashboard/internal/logger"
)

// запросы дашборда и календаря; все тотальны — пустое хранилище
// отдаёт нулевые значения со статусом 200

func (h *TaskHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "statistics"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Статистика получена",
		zap.Int("total", stats.Total),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, stats)
}

func (h *TaskHandler) GetPriorityDistribution(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	distribution, err := h.service.PriorityDistribution(r.Context())
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "priority_distribution"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	responseWithJSON(w, http.StatusOK, distribution)
}

func (h *TaskHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	days := queryInt(r, "days", 15)
	if days != 7 && days != 15 {
		logger.Warn("HTTP: Неверное значение параметра",
			zap.Int("days", days),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "days может быть только 7 или 15")
		return
	}

	history, err := h.service.History(r.Context(), days)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "history"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: История получена",
		zap.Int("days", days),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, history)
}

func (h *TaskHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	trend, err := h.service.WeeklyComparison(r.Context())
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "trend"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	responseWithJSON(w, http.StatusOK, dto.TrendResponse{WeeklyComparison: trend})
}

func (h *TaskHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	board, err := h.service.BoardTasks(r.Context())
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "board"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	responseWithJSON(w, http.StatusOK, dto.FromBoard(board))
}

// GetCalendarEvents отдаёт проекцию целиком, за день (?date=YYYY-MM-DD)
// или за месяц (?year=&month=).
func (h *TaskHandler) GetCalendarEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	query := r.URL.Query()

	if date := query.Get("date"); date != "" {
		events, err := h.service.EventsForDate(r.Context(), date)
		if err != nil {
			if handleBusinessError(w, err) {
				return
			}
			logger.Error("HTTP: Ошибка Service", err,
				zap.String("operation", "events_for_date"))
			responseWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		responseWithJSON(w, http.StatusOK, events)
		return
	}

	if query.Get("year") != "" || query.Get("month") != "" {
		year := queryInt(r, "year", 0)
		month := queryInt(r, "month", 0)
		events, err := h.service.EventsForMonth(r.Context(), year, month)
		if err != nil {
			if handleBusinessError(w, err) {
				return
			}
			logger.Error("HTTP: Ошибка Service", err,
				zap.String("operation", "events_for_month"))
			responseWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		responseWithJSON(w, http.StatusOK, events)
		return
	}

	events, err := h.service.CalendarEvents(r.Context())
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "calendar_events"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: События календаря получены",
		zap.Int("count", len(events)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, events)
}

func (h *TaskHandler) GetUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	events, err := h.service.UpcomingEvents(r.Context())
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "upcoming_events"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	responseWithJSON(w, http.StatusOK, events)
}
