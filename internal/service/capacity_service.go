package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrCapacityFull is returned when a doctor's daily booking capacity
// is exhausted.
var ErrCapacityFull = errors.New("doctor daily capacity is full")

// reserveSlotScript atomically decrements the remaining capacity for a
// doctor+date. The Redis client switches to EVALSHA after the first
// call, so under load only the script hash travels over the wire.
//
// Logic:
// 1. DECR capacity key
// 2. If result < 0 → INCR back (rollback) and return -1 (capacity full)
// 3. Otherwise return the remaining capacity
var reserveSlotScript = redis.NewScript(`
	local remaining = redis.call('DECR', KEYS[1])
	if remaining < 0 then
		redis.call('INCR', KEYS[1])
		return -1
	end
	return remaining
`)

const (
	// Redis key prefix: capacity:<doctorID>:<YYYY-MM-DD>
	RedisCapacityKeyPrefix = "doctor:capacity:"

	// Batch size for startup sync. The pipeline is created and executed
	// inside the batch loop so memory stays bounded.
	syncBatchSize = 500

	// Interval for cleaning up stale mutexes
	mutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	mutexStaleThreshold = 10 * time.Minute
)

// CapacityService coordinates per-doctor daily booking capacity through
// Redis so concurrent booking requests never rely on DB row locks.
//
// Lock Ordering (to prevent deadlocks):
// 1. Acquire the doctor+date mutex FIRST
// 2. Then perform DB/Redis operations
type CapacityService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger

	// Per doctor+date mutex for concurrent safety
	capacityMu sync.Map // map[string]*mutexWithTimestamp

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// capacityRow holds sync data queried from the database
type capacityRow struct {
	DoctorID          uuid.UUID
	MaxPatientsPerDay int
	BookedCount       int
	AppointmentDate   time.Time
}

// NewCapacityService creates a new CapacityService and starts the
// background mutex cleanup goroutine. Call Stop() during shutdown.
func NewCapacityService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *CapacityService {
	svc := &CapacityService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupMutexMapLoop()

	return svc
}

// Stop gracefully shuts down the service. Safe to call multiple times.
func (s *CapacityService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("CapacityService stopped")
	}
}

// CapacityKey builds the Redis key for a doctor's capacity on a date.
func CapacityKey(doctorID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s%s:%s", RedisCapacityKeyPrefix, doctorID.String(), date.Format("2006-01-02"))
}

// SyncOnStartup recomputes every future date's remaining capacity from
// the appointments table and writes it to Redis in batches. Should run
// before accepting traffic (startup and disaster recovery).
func (s *CapacityService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Starting doctor capacity re-sync from database...")
	startTime := time.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	offset := 0
	totalSynced := 0

	for {
		var rows []capacityRow

		err := s.db.WithContext(ctx).Model(&entity.Appointment{}).
			Select(`
				appointments.doctor_id,
				doctor_profiles.max_patients_per_day,
				COUNT(appointments.id) AS booked_count,
				appointments.appointment_date
			`).
			Joins("JOIN doctor_profiles ON doctor_profiles.user_id = appointments.doctor_id").
			Where("appointments.appointment_date >= ? AND appointments.status IN ?",
				today, entity.ActiveAppointmentStatuses).
			Group("appointments.doctor_id, doctor_profiles.max_patients_per_day, appointments.appointment_date").
			Order("appointments.doctor_id, appointments.appointment_date").
			Limit(syncBatchSize).
			Offset(offset).
			Scan(&rows).Error

		if err != nil {
			s.log.Errorf("Failed to query capacity rows at offset %d: %+v", offset, err)
			return fmt.Errorf("query capacity rows at offset %d: %w", offset, err)
		}

		if len(rows) == 0 {
			if offset == 0 {
				s.log.Info("No active appointments found for capacity sync")
			}
			break
		}

		// New pipeline per batch keeps memory bounded.
		pipe := s.redisClient.TxPipeline()
		for _, row := range rows {
			remaining := row.MaxPatientsPerDay - row.BookedCount
			if remaining < 0 {
				remaining = 0
			}
			key := CapacityKey(row.DoctorID, row.AppointmentDate)
			pipe.Set(ctx, key, remaining, s.calculateTTL(row.AppointmentDate))
		}

		if _, err := pipe.Exec(ctx); err != nil {
			s.log.Errorf("Failed to execute capacity sync pipeline at offset %d: %+v", offset, err)
			return fmt.Errorf("capacity sync pipeline at offset %d: %w", offset, err)
		}

		totalSynced += len(rows)
		offset += syncBatchSize
	}

	s.log.Infof("Capacity sync complete: %d doctor-days in %s", totalSynced, time.Since(startTime))
	return nil
}

// ReserveSlot atomically consumes one unit of a doctor's capacity for
// the given date. When the key is absent it is seeded from the DB
// first (capacity minus active bookings), then the reservation retries.
//
// Returns the remaining capacity after the reservation.
func (s *CapacityService) ReserveSlot(ctx context.Context, doctorID uuid.UUID, date time.Time, maxPerDay int) (int, error) {
	key := CapacityKey(doctorID, date)

	exists, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("check capacity key %s: %w", key, err)
	}
	if exists == 0 {
		if err := s.seedCapacity(ctx, doctorID, date, maxPerDay); err != nil {
			return 0, err
		}
	}

	result, err := reserveSlotScript.Run(ctx, s.redisClient, []string{key}).Int()
	if err != nil {
		s.log.Warnf("Failed Lua reservation for doctor %s on %s: %+v", doctorID, date.Format("2006-01-02"), err)
		return 0, fmt.Errorf("lua reserve slot for doctor %s: %w", doctorID, err)
	}

	if result == -1 {
		return 0, ErrCapacityFull
	}

	s.log.Debugf("Reserved capacity for doctor %s on %s: remaining=%d", doctorID, date.Format("2006-01-02"), result)
	return result, nil
}

// ReleaseSlot restores one unit of capacity when a booking is
// cancelled. Missing keys are ignored: the next sync or seed rebuilds
// them from the database.
func (s *CapacityService) ReleaseSlot(ctx context.Context, doctorID uuid.UUID, date time.Time) error {
	mt := s.getCapacityMutex(doctorID, date)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	key := CapacityKey(doctorID, date)
	exists, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("check capacity key %s: %w", key, err)
	}
	if exists == 0 {
		return nil
	}

	if err := s.redisClient.Incr(ctx, key).Err(); err != nil {
		s.log.Warnf("Failed to release capacity for doctor %s on %s: %+v", doctorID, date.Format("2006-01-02"), err)
		return fmt.Errorf("release capacity for doctor %s: %w", doctorID, err)
	}

	s.log.Debugf("Released capacity for doctor %s on %s", doctorID, date.Format("2006-01-02"))
	return nil
}

// seedCapacity initializes the Redis key from the DB under the
// doctor+date mutex, using SETNX so a racing seeder never overwrites a
// counter that is already live.
func (s *CapacityService) seedCapacity(ctx context.Context, doctorID uuid.UUID, date time.Time, maxPerDay int) error {
	mt := s.getCapacityMutex(doctorID, date)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	var booked int64
	err := s.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND status IN ?",
			doctorID, date.Format("2006-01-02"), entity.ActiveAppointmentStatuses).
		Count(&booked).Error
	if err != nil {
		return fmt.Errorf("count active appointments for seed: %w", err)
	}

	remaining := maxPerDay - int(booked)
	if remaining < 0 {
		remaining = 0
	}

	key := CapacityKey(doctorID, date)
	if err := s.redisClient.SetNX(ctx, key, remaining, s.calculateTTL(date)).Err(); err != nil {
		return fmt.Errorf("seed capacity key %s: %w", key, err)
	}
	return nil
}

func (s *CapacityService) getCapacityMutex(doctorID uuid.UUID, date time.Time) *mutexWithTimestamp {
	key := CapacityKey(doctorID, date)
	mt, _ := s.capacityMu.LoadOrStore(key, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

func (s *CapacityService) cleanupMutexMapLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(mutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Mutex cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes()
		}
	}
}

// cleanupStaleMutexes removes unused mutexes. The lastUsed check runs
// inside the lock so a concurrent user cannot slip between check and
// delete.
func (s *CapacityService) cleanupStaleMutexes() {
	cutoffTime := time.Now().Add(-mutexStaleThreshold).Unix()
	var cleaned int

	s.capacityMu.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				s.capacityMu.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale mutexes", cleaned)
	}
}

// calculateTTL returns TTL: 24 hours after the appointment date.
func (s *CapacityService) calculateTTL(date time.Time) time.Duration {
	expireAt := date.AddDate(0, 0, 1)
	ttl := time.Until(expireAt)

	if ttl <= 0 {
		// Past date - short TTL for cleanup
		return 1 * time.Minute
	}

	return ttl
}
