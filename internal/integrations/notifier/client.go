package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

const metricsTarget = "notifier"

// BookingEvent данные webhook-уведомления о созданном бронировании
type BookingEvent struct {
	Event           string `json:"event"`
	CalendarEventID string `json:"calendarEventId"`
	ServiceID       int64  `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	StaffID         *int64 `json:"staffId,omitempty"`
	ContactID       int64  `json:"contactId"`
	Date            string `json:"date"`      // YYYY-MM-DD
	StartTime       string `json:"startTime"` // HH:MM
	EndTime         string `json:"endTime"`   // HH:MM
	Status          string `json:"status"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client fire-and-forget клиент webhook-уведомлений
type Client struct {
	url        string
	enabled    bool
	httpClient *http.Client
	metrics    *metrics.Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений.
// При enabled=false все отправки становятся no-op.
func NewClient(url string, enabled bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:     url,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics включает сбор метрик исходящих запросов
func (c *Client) WithMetrics(m *metrics.Metrics) *Client {
	c.metrics = m
	return c
}

func (c *Client) observe(start time.Time, status string) {
	if c.metrics == nil {
		return
	}
	c.metrics.IntegrationRequestsTotal.WithLabelValues(metricsTarget, status).Inc()
	c.metrics.IntegrationRequestDuration.WithLabelValues(metricsTarget).Observe(time.Since(start).Seconds())
}

// SendBookingCreated отправляет уведомление о созданном бронировании.
// Любая ошибка доставки возвращается как ErrDeliveryFailed и не должна
// влиять на результат бронирования.
func (c *Client) SendBookingCreated(ctx context.Context, event *BookingEvent) error {
	if !c.enabled {
		return nil
	}

	event.Event = "booking.created"

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(start, "error")
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.observe(start, "error")
		return fmt.Errorf("%w: unexpected status code %d", ErrDeliveryFailed, resp.StatusCode)
	}
	c.observe(start, "ok")

	c.log.Info("NotifierClient: booking.created delivered for event=%s", event.CalendarEventID)
	return nil
}
