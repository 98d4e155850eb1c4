package service

import (
	"time"

	"hospital-management-api/internal/domain/repository"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Appointments starting inside this window get their reminder.
	reminderLeadTime = 24 * time.Hour

	// Upper bound per sweep so a backlog cannot stall the scheduler.
	reminderBatchLimit = 200
)

// ReminderService periodically marks upcoming appointments as reminded
// and emits the notification into the log stream.
type ReminderService struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	scheduler       *gocron.Scheduler
}

func NewReminderService(db *gorm.DB, log *logrus.Logger, appointmentRepo repository.AppointmentRepository) *ReminderService {
	return &ReminderService{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// Start launches the reminder sweep once a minute.
func (s *ReminderService) Start() {
	scheduler := gocron.NewScheduler(time.UTC)

	scheduler.Every(1).Minutes().Do(func() {
		if err := s.SendDueReminders(); err != nil {
			s.log.Warnf("Appointment reminder sweep failed: %+v", err)
		}
	})

	scheduler.StartAsync()
	s.scheduler = scheduler
	s.log.Info("Appointment reminder scheduler started")
}

// Stop halts the scheduler.
func (s *ReminderService) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// SendDueReminders finds active appointments starting within the lead
// window whose reminder has not been sent, marks them, and logs the
// notification for the delivery pipeline.
func (s *ReminderService) SendDueReminders() error {
	now := time.Now().UTC()

	appointments, err := s.appointmentRepo.FindDueReminders(s.db, now, now.Add(reminderLeadTime), reminderBatchLimit)
	if err != nil {
		return err
	}

	for _, appointment := range appointments {
		if err := s.appointmentRepo.MarkReminderSent(s.db, appointment.ID, now); err != nil {
			s.log.Warnf("Failed to mark reminder sent for appointment %s: %+v", appointment.ID, err)
			continue
		}

		s.log.WithFields(logrus.Fields{
			"appointment_code": appointment.AppointmentCode,
			"patient":          appointment.Patient.User.FullName,
			"doctor":           appointment.Doctor.User.FullName,
			"starts_at":        appointment.StartsAt().Format(time.RFC3339),
		}).Info("Appointment reminder sent")
	}

	return nil
}
