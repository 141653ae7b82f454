package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roomserrors "github.com/ppuranik79/Meeting-Room-Booking/internal/rooms/errors"
	apperrors "github.com/ppuranik79/Meeting-Room-Booking/pkg/errors"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/logger"
	"github.com/ppuranik79/Meeting-Room-Booking/pkg/model"
)

type mockRoomRepository struct {
	findAllFunc  func(ctx context.Context) ([]*model.Room, error)
	findByIDFunc func(ctx context.Context, id string) (*model.Room, error)
	countFunc    func(ctx context.Context) (int64, error)
	inserted     [][]*model.Room
	insertErr    error
}

func (m *mockRoomRepository) FindAll(ctx context.Context) ([]*model.Room, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []*model.Room{}, nil
}

func (m *mockRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, roomserrors.ErrNotFound
}

func (m *mockRoomRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockRoomRepository) InsertMany(ctx context.Context, rooms []*model.Room) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, rooms)
	return nil
}

func newTestService(repo *mockRoomRepository) RoomService {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewRoomService(repo, log)
}

func TestEnsureDefaultRooms_SeedsEmptyCatalog(t *testing.T) {
	repo := &mockRoomRepository{}
	svc := newTestService(repo)

	require.NoError(t, svc.EnsureDefaultRooms(context.Background()))
	require.Len(t, repo.inserted, 1)

	seeded := repo.inserted[0]
	require.Len(t, seeded, 3)
	assert.Equal(t, "12-seater Conference", seeded[0].Name)
	assert.Equal(t, 12, seeded[0].Capacity)
	assert.Equal(t, "4-seater Discussion", seeded[1].Name)
	assert.Equal(t, "2-seater Discussion", seeded[2].Name)
}

func TestEnsureDefaultRooms_SkipsNonEmptyCatalog(t *testing.T) {
	repo := &mockRoomRepository{
		countFunc: func(ctx context.Context) (int64, error) { return 3, nil },
	}
	svc := newTestService(repo)

	require.NoError(t, svc.EnsureDefaultRooms(context.Background()))
	assert.Empty(t, repo.inserted)
}

func TestList_NeverNil(t *testing.T) {
	repo := &mockRoomRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Room, error) { return nil, nil },
	}
	svc := newTestService(repo)

	rooms, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestGetByID_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{"unknown room", roomserrors.ErrNotFound, apperrors.CodeNotFound},
		{"malformed id", roomserrors.ErrInvalidID, apperrors.CodeInvalidInput},
		{"storage failure", errors.New("socket closed"), apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRoomRepository{
				findByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
					return nil, tt.repoErr
				},
			}
			svc := newTestService(repo)

			_, err := svc.GetByID(context.Background(), "507f1f77bcf86cd799439011")
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.AsAppError(err).Code)
		})
	}
}

func TestGetByID_OK(t *testing.T) {
	want := &model.Room{ID: "507f1f77bcf86cd799439011", Name: "12-seater Conference", Capacity: 12}
	repo := &mockRoomRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Room, error) { return want, nil },
	}
	svc := newTestService(repo)

	room, err := svc.GetByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, room)
}
