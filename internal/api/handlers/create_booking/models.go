package create_booking

import (
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	createBooking "github.com/IbrahimTareq/masjidaa-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Поля формы передаются сырыми строками: их разбором и проверкой занимается
// серверный валидатор, клиентские проверки - только удобство UI
type CreateBookingRequest struct {
	TenantSlug      string  `json:"tenantSlug"`
	BookingTypeSlug string  `json:"bookingTypeSlug"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      *string `json:"guestPhone,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	BookingDate     string  `json:"bookingDate"` // "2026-03-02"
	StartTime       string  `json:"startTime"`   // "10:00"
	EndTime         string  `json:"endTime"`     // "10:30"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	TenantSlug      string  `json:"tenantSlug"`
	BookingTypeSlug string  `json:"bookingTypeSlug"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      *string `json:"guestPhone,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		TenantSlug:      r.TenantSlug,
		BookingTypeSlug: r.BookingTypeSlug,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		Notes:           r.Notes,
		BookingDate:     r.BookingDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		TenantSlug:      resp.TenantSlug,
		BookingTypeSlug: resp.BookingTypeSlug,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          resp.Status,
		GuestName:       resp.GuestName,
		GuestEmail:      resp.GuestEmail,
		GuestPhone:      resp.GuestPhone,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
