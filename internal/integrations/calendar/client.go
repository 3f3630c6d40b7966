package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

const metricsTarget = "calendar"

// Client клиент удалённого календаря - системы записи, являющейся
// источником истины по бронированиям
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
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

// CreateAppointment создает запись в удалённом календаре.
//
// Запрос всегда уходит с выключенным SkipAvailabilityCheck: удалённая
// проверка пересечений - единственная точка сериализации, предотвращающая
// двойное бронирование. Конфликт на этой стадии (гонка с параллельной
// записью) - штатный исход, возвращается как ErrSlotConflict.
func (c *Client) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	req.SkipAvailabilityCheck = false

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/appointments", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Сетевые ошибки и таймауты - недоступность, не конфликт
		c.observe(start, "error")
		c.log.Error("CalendarClient: create appointment request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		c.observe(start, "ok")
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		// Календарь отклонил запись - слот уже занят
		c.observe(start, "conflict")
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		c.log.Warn("CalendarClient: appointment rejected by remote check: %s", errResp.Message)
		return nil, fmt.Errorf("%w: %s", ErrSlotConflict, errResp.Message)
	case resp.StatusCode >= http.StatusInternalServerError:
		c.observe(start, "error")
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("CalendarClient: remote error %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	default:
		c.observe(start, "error")
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var appointment Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if appointment.ID == "" {
		return nil, fmt.Errorf("%w: empty appointment id", ErrInvalidResponse)
	}

	return &appointment, nil
}
