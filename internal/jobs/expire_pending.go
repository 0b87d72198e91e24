package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	DeclineExpiredPending(ctx context.Context, before time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ExpirePendingJob фоновая задача, отклоняющая ожидающие бронирования,
// чья дата уже прошла. Неподтверждённые запросы не должны вечно занимать
// слоты в истории как активные
type ExpirePendingJob struct {
	bookingRepo BookingRepository
	logger      Logger
	cron        *cron.Cron
	timeout     time.Duration
}

// NewExpirePendingJob создает новый экземпляр задачи
func NewExpirePendingJob(bookingRepo BookingRepository, logger Logger) *ExpirePendingJob {
	return &ExpirePendingJob{
		bookingRepo: bookingRepo,
		logger:      logger,
		cron:        cron.New(),
		timeout:     30 * time.Second,
	}
}

// Start регистрирует задачу по расписанию и запускает планировщик
func (j *ExpirePendingJob) Start(schedule string) error {
	if _, err := j.cron.AddFunc(schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("ExpirePendingJob: scheduled with %q", schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего запуска
func (j *ExpirePendingJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("ExpirePendingJob: stopped")
}

func (j *ExpirePendingJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	// Дата строго раньше сегодняшней (UTC) уже прошла во всех таймзонах тенантов
	today := time.Now().UTC().Truncate(24 * time.Hour)

	declined, err := j.bookingRepo.DeclineExpiredPending(ctx, today)
	if err != nil {
		j.logger.Error("ExpirePendingJob: failed to decline expired pending bookings: %v", err)
		return
	}

	if declined > 0 {
		j.logger.Info("ExpirePendingJob: declined %d expired pending booking(s)", declined)
	}
}
