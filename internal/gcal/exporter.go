package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"taskDashboard/internal/derive"
	"taskDashboard/internal/logger"
)

const taskIDProperty = "dashboard_task_id"

// Exporter выгружает проекцию календаря в Google Calendar. Токен должен
// быть получен заранее (интерактивный OAuth-поток сервер не поднимает).
type Exporter struct {
	srv        *calendar.Service
	calendarID string
}

func NewExporter(ctx context.Context, credentialsFile, tokenFile, calendarID string) (*Exporter, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("чтение файла учётных данных %s: %w", credentialsFile, err)
	}

	config, err := google.ConfigFromJSON(b, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("разбор учётных данных: %w", err)
	}

	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("чтение OAuth-токена %s: %w", tokenFile, err)
	}

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(config.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("создание клиента Google Calendar: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}

	logger.Info("GCal: Экспортёр инициализирован", zap.String("calendar_id", calendarID))
	return &Exporter{srv: srv, calendarID: calendarID}, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("декодирование токена: %w", err)
	}
	return tok, nil
}

// Export создаёт или обновляет события в удалённом календаре.
// Возвращает число обработанных событий.
func (e *Exporter) Export(ctx context.Context, events []derive.CalendarEvent) (int, error) {
	exported := 0
	for _, ev := range events {
		if err := e.syncEvent(ctx, ev); err != nil {
			logger.Warn("GCal: Ошибка выгрузки события",
				zap.String("event_id", ev.ID),
				zap.Error(err))
			continue
		}
		exported++
	}

	logger.Info("GCal: Выгрузка завершена",
		zap.Int("exported", exported),
		zap.Int("total", len(events)))
	return exported, nil
}

func (e *Exporter) syncEvent(ctx context.Context, ev derive.CalendarEvent) error {
	remote := convert(ev)

	existing, err := e.findByTaskID(ctx, ev.TaskID)
	if err != nil {
		return fmt.Errorf("поиск события: %w", err)
	}

	if existing != nil {
		_, err = e.srv.Events.Patch(e.calendarID, existing.Id, remote).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("обновление события: %w", err)
		}
		return nil
	}

	_, err = e.srv.Events.Insert(e.calendarID, remote).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("создание события: %w", err)
	}
	return nil
}

// findByTaskID ищет событие по приватному расширенному свойству.
func (e *Exporter) findByTaskID(ctx context.Context, taskID string) (*calendar.Event, error) {
	events, err := e.srv.Events.List(e.calendarID).
		PrivateExtendedProperty(fmt.Sprintf("%s=%s", taskIDProperty, taskID)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(events.Items) > 0 {
		return events.Items[0], nil
	}
	return nil, nil
}

func convert(ev derive.CalendarEvent) *calendar.Event {
	remote := &calendar.Event{
		Summary:     ev.Title,
		Description: ev.Description,
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{taskIDProperty: ev.TaskID},
		},
	}

	day := ev.Date.Format("2006-01-02")

	if ev.StartTime == "" {
		// событие без времени начала экспортируется как событие на весь день
		remote.Start = &calendar.EventDateTime{Date: day}
		remote.End = &calendar.EventDateTime{Date: day}
		return remote
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", day+" "+ev.StartTime, ev.Date.Location())
	if err != nil {
		remote.Start = &calendar.EventDateTime{Date: day}
		remote.End = &calendar.EventDateTime{Date: day}
		return remote
	}

	end := start.Add(30 * time.Minute)
	if ev.EndTime != "" {
		if parsed, err := time.ParseInLocation("2006-01-02 15:04", day+" "+ev.EndTime, ev.Date.Location()); err == nil {
			end = parsed
		}
	}

	remote.Start = &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)}
	remote.End = &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)}
	return remote
}
