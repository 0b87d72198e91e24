package models

import "github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"

// BookingTypeResponse ответ с типом бронирования и разрешённой конфигурацией
// Дефолты применяются здесь, на границе загрузки конфигурации: потребители
// получают уже готовые значения
type BookingTypeResponse struct {
	ID                     int64   `json:"id"`
	TenantSlug             string  `json:"tenantSlug"`
	Slug                   string  `json:"slug"`
	Name                   string  `json:"name"`
	Description            *string `json:"description,omitempty"`
	DurationMinutes        int     `json:"durationMinutes"`
	BufferMinutes          int     `json:"bufferMinutes"`
	MinAdvanceBookingHours int     `json:"minAdvanceBookingHours"`
	MaxAdvanceBookingDays  int     `json:"maxAdvanceBookingDays"`
	Timezone               string  `json:"timezone"`
}

// BookingTypeListResponse ответ со списком типов бронирования
type BookingTypeListResponse struct {
	BookingTypes []BookingTypeResponse `json:"bookingTypes"`
}

// FromDomainBookingType конвертирует domain модель в DTO с применением дефолтов
func FromDomainBookingType(bt *domain.BookingType, tenant *domain.Tenant) *BookingTypeResponse {
	if bt == nil {
		return nil
	}

	return &BookingTypeResponse{
		ID:                     bt.ID,
		TenantSlug:             tenant.Slug,
		Slug:                   bt.Slug,
		Name:                   bt.Name,
		Description:            bt.Description,
		DurationMinutes:        bt.EffectiveDurationMinutes(),
		BufferMinutes:          bt.BufferMinutes,
		MinAdvanceBookingHours: bt.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:  bt.EffectiveMaxAdvanceBookingDays(),
		Timezone:               tenant.Timezone,
	}
}
