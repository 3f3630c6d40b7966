package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// Service сервис чтения бронирований из локального зеркала
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - клиент видит только свои бронирования
func (s *Service) GetByID(ctx context.Context, id int64, contactID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for contact=%d", id, contactID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.ContactID != contactID {
		s.logger.Warn("GetByID: access denied for contact=%d to booking id=%d", contactID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetContactBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetContactBookings(ctx context.Context, req *models.GetContactBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetContactBookings: fetching bookings for contact=%d, status=%v", req.ContactID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetContactBookings: invalid status=%s for contact=%d", *req.Status, req.ContactID)
			return nil, ErrInvalidStatus
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByContactID(ctx, req.ContactID, domainStatus)
	if err != nil {
		s.logger.Error("GetContactBookings: repository error for contact=%d: %v", req.ContactID, err)
		return nil, fmt.Errorf("%w: GetContactBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetContactBookings: successfully fetched %d bookings for contact=%d", len(bookings), req.ContactID)
	return models.FromDomainBookingList(bookings), nil
}
