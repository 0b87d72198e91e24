package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса уведомлений платформы
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет гостю письмо-подтверждение бронирования
// Недоступность сервиса уведомлений не должна ронять создание бронирования:
// любой сбой сворачивается в ErrServiceDegraded, вызывающий код его логирует
func (c *Client) SendBookingConfirmation(ctx context.Context, booking *domain.Booking, tenant *domain.Tenant, bookingType *domain.BookingType) error {
	c.log.Info("Sending booking confirmation for reference=%s to %s", booking.Reference, booking.GuestEmail)

	if err := c.send(ctx, &BookingConfirmationRequest{
		Reference:       booking.Reference,
		TenantName:      tenant.Name,
		BookingTypeName: bookingType.Name,
		BookingDate:     booking.BookingDate.Format(domain.DateFormat),
		StartTime:       booking.StartTime.String(),
		EndTime:         booking.EndTime.String(),
		Timezone:        tenant.Timezone,
		GuestName:       booking.GuestName,
		GuestEmail:      booking.GuestEmail,
		GuestPhone:      booking.GuestPhone,
	}); err != nil {
		c.log.Error("Notifier unavailable, applying graceful degradation for reference=%s: %v", booking.Reference, err)
		return fmt.Errorf("%w: reference=%s, error=%v", ErrServiceDegraded, booking.Reference, err)
	}

	c.log.Info("Successfully sent booking confirmation for reference=%s", booking.Reference)
	return nil
}

func (c *Client) send(ctx context.Context, payload *BookingConfirmationRequest) error {
	url := fmt.Sprintf("%s/internal/notifications/booking-confirmation", c.baseURL)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
