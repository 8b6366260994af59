package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coworking-reservation-backend/internal/booking"
	"coworking-reservation-backend/internal/model"
)

// RoomFilter narrows ListRooms. Zero values mean "no filter".
type RoomFilter struct {
	MinCapacity *int
	Status      string
	Equipment   string
}

// ReservationFilter narrows ListReservations. Zero values mean "no filter".
type ReservationFilter struct {
	RoomID      int64
	Responsible string
}

// Store defines the interface for all database operations.
type Store interface {
	GetRoom(ctx context.Context, id int64) (*model.Room, error)
	ListRooms(ctx context.Context, f RoomFilter) ([]model.Room, error)
	CreateRoom(ctx context.Context, room *model.Room) error
	UpdateRoom(ctx context.Context, room *model.Room) error
	DeleteRoom(ctx context.Context, id int64) error

	GetReservation(ctx context.Context, id int64) (*model.Reservation, error)
	GetReservationByDocument(ctx context.Context, document string) (*model.Reservation, error)
	ListReservationsByRoom(ctx context.Context, roomID int64) ([]model.Reservation, error)
	ListReservations(ctx context.Context, f ReservationFilter) ([]model.Reservation, error)
	ListReservationsPaged(ctx context.Context, page, size int) ([]model.Reservation, int64, error)
	GetAllReservations(ctx context.Context) ([]model.Reservation, error)
	SaveReservation(ctx context.Context, r *model.Reservation) error
	DeleteReservation(ctx context.Context, id int64) error

	ListRoomsFreedBetween(ctx context.Context, from, to time.Time) ([]int64, error)

	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying gorm handle for collaborators that need
// association queries, such as the notification pool.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) GetRoom(ctx context.Context, id int64) (*model.Room, error) {
	var room model.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (s *gormStore) ListRooms(ctx context.Context, f RoomFilter) ([]model.Room, error) {
	q := s.db.WithContext(ctx).Model(&model.Room{})
	if f.MinCapacity != nil {
		q = q.Where("capacity >= ?", *f.MinCapacity)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Equipment != "" {
		q = q.Where("lower(equipment) LIKE ?", "%"+strings.ToLower(f.Equipment)+"%")
	}

	var rooms []model.Room
	if err := q.Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *gormStore) CreateRoom(ctx context.Context, room *model.Room) error {
	return s.db.WithContext(ctx).Create(room).Error
}

func (s *gormStore) UpdateRoom(ctx context.Context, room *model.Room) error {
	return s.db.WithContext(ctx).Save(room).Error
}

// DeleteRoom removes a room and all reservations referencing it. The cascade
// runs in one transaction so a failed delete leaves nothing orphaned.
func (s *gormStore) DeleteRoom(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&model.Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservations for room %d: %w", id, err)
		}
		if err := tx.Exec("DELETE FROM subscription_room_mapping WHERE room_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete room watches for room %d: %w", id, err)
		}
		res := tx.Delete(&model.Room{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return booking.ErrNotFound
		}
		return nil
	})
}

func (s *gormStore) GetReservation(ctx context.Context, id int64) (*model.Reservation, error) {
	var r model.Reservation
	if err := s.db.WithContext(ctx).Preload("Room").First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *gormStore) GetReservationByDocument(ctx context.Context, document string) (*model.Reservation, error) {
	var r model.Reservation
	err := s.db.WithContext(ctx).Preload("Room").
		Where("document = ?", document).
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *gormStore) ListReservationsByRoom(ctx context.Context, roomID int64) ([]model.Reservation, error) {
	var out []model.Reservation
	err := s.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("start_time").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore) ListReservations(ctx context.Context, f ReservationFilter) ([]model.Reservation, error) {
	q := s.db.WithContext(ctx).Model(&model.Reservation{})
	if f.RoomID != 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.Responsible != "" {
		q = q.Where("lower(responsible) LIKE ?", "%"+strings.ToLower(f.Responsible)+"%")
	}

	var out []model.Reservation
	if err := q.Order("start_time").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore) ListReservationsPaged(ctx context.Context, page, size int) ([]model.Reservation, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Reservation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []model.Reservation
	err := s.db.WithContext(ctx).
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *gormStore) GetAllReservations(ctx context.Context) ([]model.Reservation, error) {
	var out []model.Reservation
	if err := s.db.WithContext(ctx).Preload("Room").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SaveReservation inserts a new reservation or overwrites an existing one by
// id. New reservations get their storage-assigned identifiers here.
func (s *gormStore) SaveReservation(ctx context.Context, r *model.Reservation) error {
	if r.PublicID == "" {
		r.PublicID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Save(r).Error
}

func (s *gormStore) DeleteReservation(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrNotFound
	}
	return nil
}

// ListRoomsFreedBetween returns the ids of rooms that had a reservation end
// inside the half-open window (from, to]. The sweeper uses it to find rooms
// that just became free.
func (s *gormStore) ListRoomsFreedBetween(ctx context.Context, from, to time.Time) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("end_time > ? AND end_time <= ?", from, to).
		Distinct().
		Pluck("room_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
