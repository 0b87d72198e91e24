package notifier

// BookingConfirmationRequest запрос на отправку письма-подтверждения гостю
type BookingConfirmationRequest struct {
	Reference       string  `json:"reference"`
	TenantName      string  `json:"tenant_name"`
	BookingTypeName string  `json:"booking_type_name"`
	BookingDate     string  `json:"booking_date"` // "2026-03-02"
	StartTime       string  `json:"start_time"`   // "10:00"
	EndTime         string  `json:"end_time"`     // "10:30"
	Timezone        string  `json:"timezone"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      *string `json:"guest_phone,omitempty"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
