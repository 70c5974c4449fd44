package sweep

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

const auditRetentionDays = 90

// Sweeper expurga diariamente o que já passou: agendamentos de datas
// vencidas, agendas e exceções expiradas e logs de auditoria velhos.
// Roda uma vez na subida e depois na hora configurada; falha é logada e
// fica para o tick seguinte, sem retry.
type Sweeper struct {
	db   *gorm.DB
	log  zerolog.Logger
	cron *cron.Cron
}

func New(db *gorm.DB, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		db:   db,
		log:  log,
		cron: cron.New(),
	}
}

// Start agenda a varredura diária e dispara a primeira imediatamente.
func (s *Sweeper) Start(hour int) error {
	spec := fmt.Sprintf("0 %d * * *", hour)
	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return err
	}

	go s.Run()

	s.cron.Start()
	s.log.Info().Int("hour", hour).Msg("daily sweep scheduled")
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// Run executa uma passada. Deleções por data passada não conflitam com as
// operações de reserva, sempre futuras — seguro rodar junto do tráfego.
func (s *Sweeper) Run() {
	today := timeslot.FormatDate(time.Now())

	purge := func(entity string, res *gorm.DB) {
		if res.Error != nil {
			s.log.Error().Err(res.Error).Str("entity", entity).Msg("sweep failed")
			return
		}
		if res.RowsAffected > 0 {
			s.log.Info().
				Str("entity", entity).
				Int64("purged", res.RowsAffected).
				Msg("sweep purged")
		}
	}

	purge("appointment", s.db.
		Where("date < ?", today).
		Delete(&models.Appointment{}))

	purge("schedule", s.db.
		Where("end_date IS NOT NULL AND end_date <> '' AND end_date < ?", today).
		Delete(&models.Schedule{}))

	// exceção sem end_date vale só para start_date
	purge("special_schedule", s.db.
		Where(
			"(end_date IS NOT NULL AND end_date <> '' AND end_date < ?) OR ((end_date IS NULL OR end_date = '') AND start_date < ?)",
			today, today,
		).
		Delete(&models.SpecialSchedule{}))

	cutoff := time.Now().AddDate(0, 0, -auditRetentionDays)
	purge("audit_log", s.db.
		Where("created_at < ?", cutoff).
		Delete(&models.AuditLog{}))
}
