package domain

import "time"

// Tenant мечеть (масджид) на платформе
// Каждый тенант имеет собственную таймзону; все вычисления дня недели и
// полуночи выполняются в ней, а не в таймзоне сервера
type Tenant struct {
	ID       int64
	Slug     string
	Name     string
	Timezone string // IANA имя, например "Australia/Sydney"

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location возвращает *time.Location тенанта
func (t *Tenant) Location() (*time.Location, error) {
	return time.LoadLocation(t.Timezone)
}
