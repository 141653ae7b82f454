package service

import (
	"context"
	"errors"

	roomserrors "github.com/ppuranik79/Meeting-Room-Booking/internal/rooms/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/internal/rooms/repository"
	apperrors "github.com/ppuranik79/Meeting-Room-Booking/pkg/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/model"
)

// defaultRooms are created on first startup against an empty database.
var defaultRooms = []*model.Room{
	{Name: "12-seater Conference", Capacity: 12},
	{Name: "4-seater Discussion", Capacity: 4},
	{Name: "2-seater Discussion", Capacity: 2},
}

type RoomService interface {
	List(ctx context.Context) ([]*model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	EnsureDefaultRooms(ctx context.Context) error
}

type roomService struct {
	repo repository.RoomRepository
	log  *logger.Logger
}

func NewRoomService(repo repository.RoomRepository, log *logger.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log,
	}
}

func (s *roomService) List(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.Internal("Failed to list rooms", err)
	}
	if rooms == nil {
		rooms = []*model.Room{}
	}
	return rooms, nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, roomserrors.ErrInvalidID):
			return nil, apperrors.InvalidInput("Room id must be a valid MongoDB ObjectID")
		case errors.Is(err, roomserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("Room", id)
		default:
			s.log.Error("Failed to get room", "room_id", id, "error", err)
			return nil, apperrors.Internal("Failed to get room", err)
		}
	}
	return room, nil
}

// EnsureDefaultRooms seeds the catalog when the collection is empty. Safe to
// call on every startup.
func (s *roomService) EnsureDefaultRooms(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return apperrors.Internal("Failed to count rooms", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.repo.InsertMany(ctx, defaultRooms); err != nil {
		return apperrors.Internal("Failed to seed default rooms", err)
	}

	s.log.Info("Seeded default rooms", "count", len(defaultRooms))
	return nil
}
