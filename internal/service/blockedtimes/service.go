package blockedtimes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	blockedRepo "github.com/m04kA/SMC-ClinicReservationService/internal/infra/storage/blockedtime"
	"github.com/m04kA/SMC-ClinicReservationService/internal/integrations/identity"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/blockedtimes/models"
)

// Service сервис заблокированного времени клиники
type Service struct {
	blockedRepo    BlockedTimeRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedRepo BlockedTimeRepository, identityClient IdentityClient, logger Logger) *Service {
	return &Service{
		blockedRepo:    blockedRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// Create блокирует интервал на дату. Доступно только администраторам.
// Дата приводится к началу дня, время к формату HH:mm.
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("CreateBlockedTime: requester=%s, date=%s, time=%s-%s", req.RequesterID, req.Date, req.TimeStart, req.TimeEnd)

	// 1. Проверяем роль инициатора
	if err := s.checkAdmin(ctx, req.RequesterID); err != nil {
		return nil, err
	}

	// 2. Разбираем и нормализуем дату и время
	date, window, err := parseRequest(req)
	if err != nil {
		s.logger.Warn("CreateBlockedTime: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем дубликат
	existing, err := s.blockedRepo.FindExact(ctx, date, window)
	if err != nil && !errors.Is(err, blockedRepo.ErrBlockedTimeNotFound) {
		s.logger.Error("CreateBlockedTime: failed to check duplicate: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - find duplicate: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("CreateBlockedTime: duplicate of id=%s", existing.ID)
		return nil, fmt.Errorf("%w: %s %s", ErrDuplicate, domain.FormatDate(date), window)
	}

	// 4. Сохраняем. Уникальный индекс ловит гонку между проверкой и вставкой
	created, err := s.blockedRepo.Create(ctx, &domain.BlockedTime{
		Date:      date,
		TimeStart: window.Start,
		TimeEnd:   window.End,
		Reason:    req.Reason,
	})
	if err != nil {
		if errors.Is(err, blockedRepo.ErrDuplicateBlockedTime) {
			s.logger.Warn("CreateBlockedTime: duplicate detected on insert")
			return nil, fmt.Errorf("%w: %s %s", ErrDuplicate, domain.FormatDate(date), window)
		}
		s.logger.Error("CreateBlockedTime: failed to create blocked time: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: successfully created id=%s", created.ID)
	return models.FromDomainBlockedTime(created), nil
}

// ListByDate возвращает блокировки на дату
func (s *Service) ListByDate(ctx context.Context, rawDate string) (*models.BlockedTimeListResponse, error) {
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items, err := s.blockedRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListBlockedTimes: repository error for date=%s: %v", rawDate, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlockedTimes: fetched %d blocked times for date=%s", len(items), domain.FormatDate(date))
	return models.FromDomainBlockedTimeList(items), nil
}

func (s *Service) checkAdmin(ctx context.Context, requesterID string) error {
	if requesterID == "" {
		return fmt.Errorf("%w: requester id is required", ErrInvalidInput)
	}

	user, err := s.identityClient.GetUser(ctx, requesterID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			s.logger.Warn("CreateBlockedTime: requester id=%s not found", requesterID)
			return ErrRequesterNotFound
		}
		s.logger.Error("CreateBlockedTime: failed to get requester id=%s: %v", requesterID, err)
		return fmt.Errorf("%w: CreateBlockedTime - get requester: %v", ErrInternal, err)
	}

	if user.Role != domain.RoleAdmin {
		s.logger.Warn("CreateBlockedTime: requester id=%s has role %s", requesterID, user.Role)
		return ErrAccessDenied
	}

	return nil
}

func parseRequest(req *models.CreateBlockedTimeRequest) (time.Time, domain.TimeWindow, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	window, err := domain.NewTimeWindow(req.TimeStart, req.TimeEnd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWindow) {
			return time.Time{}, domain.TimeWindow{}, ErrInvalidTimeRange
		}
		return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return time.Time{}, domain.TimeWindow{}, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return date, window, nil
}
