package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "github.com/ppuranik79/Meeting-Room-Booking/internal/bookings/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/internal/bookings/repository"
	"github.com/ppuranik79/Meeting-Room-Booking/internal/bookings/validator"
	"github.com/ppuranik79/Meeting-Room-Booking/internal/notifications"
	roomsservice "github.com/ppuranik79/Meeting-Room-Booking/internal/rooms/service"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/config"
	apperrors "github.com/ppuranik79/Meeting-Room-Booking/pkg/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/model"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/timeslot"
)

// Outcome reports how far a successful booking got. A booking is durable in
// both cases; only the notification leg differs.
type Outcome string

const (
	OutcomeCompleted             Outcome = "completed"
	OutcomePersistedNotConfirmed Outcome = "persisted_not_confirmed"
)

type BookingResult struct {
	BookingID string  `json:"bookingId"`
	Outcome   Outcome `json:"outcome"`
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*BookingResult, error)
	ListByRoomAndDate(ctx context.Context, roomID string, date string) ([]*model.Booking, error)
}

type bookingService struct {
	repo       repository.BookingRepository
	lockRepo   repository.SlotLockRepository
	roomSvc    roomsservice.RoomService
	validator  *validator.BookingValidator
	dispatcher notifications.Dispatcher
	cfg        *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.SlotLockRepository,
	roomSvc roomsservice.RoomService,
	validator *validator.BookingValidator,
	dispatcher notifications.Dispatcher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:       repo,
		lockRepo:   lockRepo,
		roomSvc:    roomSvc,
		validator:  validator,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

// Create admits a booking: validate, resolve the room, then run the conflict
// check and insert atomically under a per-(room, date) advisory lock and a
// transaction. Notification dispatch happens after commit and is best effort;
// its failure downgrades the outcome but never the booking.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*BookingResult, error) {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking rejected by validation", "error", err)
		return nil, err
	}

	room, err := s.roomSvc.GetByID(ctx, booking.RoomID)
	if err != nil {
		return nil, err
	}

	// Validated above, so these cannot fail.
	candidate, _ := timeslot.NewInterval(booking.StartTime, booking.EndTime)

	lockID, err := s.acquireSlotLock(ctx, booking.RoomID, booking.Date)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		existing, err := s.repo.FindByRoomAndDate(sessCtx, booking.RoomID, booking.Date)
		if err != nil {
			return apperrors.Internal("Failed to check existing bookings", err)
		}
		if err := checkConflicts(existing, candidate); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
			s.cfg.Log.Error("Failed to create booking", "error", err)
		}
		return nil, err
	}

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"date", booking.Date,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
	)

	result := &BookingResult{BookingID: booking.ID, Outcome: OutcomeCompleted}

	event := notifications.BookingCreated{
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		RoomName:  room.Name,
		Date:      booking.Date,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		Email:     booking.Email,
	}
	if err := s.dispatcher.DispatchBookingCreated(ctx, event); err != nil {
		s.cfg.Log.Warn("Booking stored but notification dispatch failed",
			"booking_id", booking.ID,
			"error", err,
		)
		result.Outcome = OutcomePersistedNotConfirmed
	}

	return result, nil
}

func (s *bookingService) ListByRoomAndDate(ctx context.Context, roomID string, date string) ([]*model.Booking, error) {
	if roomID == "" {
		return nil, apperrors.InvalidInput("roomId is required")
	}
	if _, err := timeslot.ParseDate(date); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	bookings, err := s.repo.FindByRoomAndDate(ctx, roomID, date)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "room_id", roomID, "date", date, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, nil
}

// acquireSlotLock serializes admission for one (room, date). Contention is
// reported as a conflict the caller can simply retry.
func (s *bookingService) acquireSlotLock(ctx context.Context, roomID, date string) (string, error) {
	lockID := fmt.Sprintf("slot_lock_%s_%s", roomID, date)

	lock := &model.SlotLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(s.cfg.SlotLockTTL),
	}

	if err := s.lockRepo.Acquire(ctx, lock); err != nil {
		if errors.Is(err, bookingserrors.ErrLockHeld) {
			return "", apperrors.Conflict("This time slot is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire slot lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Release(ctx, lockID)
}
