package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gotham/internal/auth"
	"gotham/internal/models/db_models"
	"gotham/internal/models/request_models"
	"gotham/internal/repositories"
	"gotham/pkg/utils"
)

type AttractionServiceInterface interface {
	GetAttractionByID(ctx context.Context, id string) (*db_models.Attraction, error)
	ListAttractions(ctx context.Context, filter repositories.AttractionFilter, page, pageSize int) ([]db_models.Attraction, error)
	ListPending(ctx context.Context, callerID string, page, pageSize int) ([]db_models.Attraction, error)
	ListMine(ctx context.Context, callerID string) ([]db_models.Attraction, error)

	CreateAttraction(ctx context.Context, callerID string, req request_models.CreateAttractionRequest) (*db_models.Attraction, error)
	UpdateAttraction(ctx context.Context, callerID string, id string, req request_models.UpdateAttractionRequest) (*db_models.Attraction, error)
	DeleteAttraction(ctx context.Context, callerID string, id string) error
	ApproveAttraction(ctx context.Context, callerID string, id string) error
}

type AttractionService struct {
	attractionRepo repositories.AttractionRepository
	categoryRepo   repositories.CategoryRepositoryInterface
	userRepo       repositories.UserRepository
}

func NewAttractionService(
	attractionRepo repositories.AttractionRepository,
	categoryRepo repositories.CategoryRepositoryInterface,
	userRepo repositories.UserRepository,
) AttractionServiceInterface {
	return &AttractionService{
		attractionRepo: attractionRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
	}
}

func (s *AttractionService) GetAttractionByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	attraction, err := s.attractionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attraction == nil {
		return nil, utils.ErrAttractionNotFound
	}
	return attraction, nil
}

func (s *AttractionService) ListAttractions(ctx context.Context, filter repositories.AttractionFilter, page, pageSize int) ([]db_models.Attraction, error) {
	attractions, err := s.attractionRepo.ListApproved(ctx, filter, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attractions, nil
}

func (s *AttractionService) ListPending(ctx context.Context, callerID string, page, pageSize int) ([]db_models.Attraction, error) {
	caller, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !auth.IsAdmin(caller) {
		return nil, utils.ErrForbidden
	}

	attractions, err := s.attractionRepo.ListPending(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attractions, nil
}

func (s *AttractionService) ListMine(ctx context.Context, callerID string) ([]db_models.Attraction, error) {
	callerUUID, err := uuid.Parse(callerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	attractions, err := s.attractionRepo.ListByCreator(ctx, callerUUID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attractions, nil
}

func (s *AttractionService) CreateAttraction(ctx context.Context, callerID string, req request_models.CreateAttractionRequest) (*db_models.Attraction, error) {
	callerUUID, err := uuid.Parse(callerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	resources, err := validateResources(req.Resources)
	if err != nil {
		return nil, err
	}

	attraction := &db_models.Attraction{
		Name:            strings.TrimSpace(req.Name),
		Category:        strings.TrimSpace(req.Category),
		Tags:            req.Tags,
		PriceRange:      req.PriceRange,
		Duration:        req.Duration,
		Location:        req.Location,
		VenueSize:       req.VenueSize,
		WalkingDistance: req.WalkingDistance,
		Notes:           req.Notes,
		Resources:       resources,
		Nearby:          req.Nearby,
		Todos:           req.Todos,
		Status:          db_models.AttractionStatusPending,
		CreatedBy:       callerUUID,
	}
	if attraction.Name == "" || attraction.Category == "" {
		return nil, utils.ErrInvalidInput
	}

	// Categories are an open, append-only set. New names are registered here.
	if err := s.categoryRepo.EnsureByName(ctx, attraction.Category); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if _, err := s.attractionRepo.Create(ctx, attraction); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attraction, nil
}

func (s *AttractionService) UpdateAttraction(ctx context.Context, callerID string, id string, req request_models.UpdateAttractionRequest) (*db_models.Attraction, error) {
	caller, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	attraction, err := s.attractionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attraction == nil {
		return nil, utils.ErrAttractionNotFound
	}
	if !auth.CanEditAttraction(caller, attraction) {
		return nil, utils.ErrForbidden
	}

	resources, err := validateResources(req.Resources)
	if err != nil {
		return nil, err
	}

	// Status and creator never change through an edit.
	attraction.Name = strings.TrimSpace(req.Name)
	attraction.Category = strings.TrimSpace(req.Category)
	attraction.Tags = req.Tags
	attraction.PriceRange = req.PriceRange
	attraction.Duration = req.Duration
	attraction.Location = req.Location
	attraction.VenueSize = req.VenueSize
	attraction.WalkingDistance = req.WalkingDistance
	attraction.Notes = req.Notes
	attraction.Resources = resources
	attraction.Nearby = req.Nearby
	attraction.Todos = req.Todos

	if attraction.Name == "" || attraction.Category == "" {
		return nil, utils.ErrInvalidInput
	}

	if err := s.categoryRepo.EnsureByName(ctx, attraction.Category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := s.attractionRepo.Update(ctx, attraction); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attraction, nil
}

func (s *AttractionService) DeleteAttraction(ctx context.Context, callerID string, id string) error {
	caller, err := s.caller(ctx, callerID)
	if err != nil {
		return err
	}

	attraction, err := s.attractionRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if attraction == nil {
		return utils.ErrAttractionNotFound
	}
	if !auth.CanDelete(caller, attraction) {
		return utils.ErrForbidden
	}

	if err := s.attractionRepo.Delete(ctx, attraction.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AttractionService) ApproveAttraction(ctx context.Context, callerID string, id string) error {
	caller, err := s.caller(ctx, callerID)
	if err != nil {
		return err
	}
	if !auth.CanApprove(caller) {
		return utils.ErrForbidden
	}

	attractionUUID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if err := s.attractionRepo.Approve(ctx, attractionUUID); err != nil {
		// Already approved or missing both surface as not found; approval
		// is strictly pending -> approved.
		return utils.ErrAttractionNotFound
	}
	return nil
}

func (s *AttractionService) caller(ctx context.Context, callerID string) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

// validateResources enforces the pairing invariant: a resource link carries
// both text and url, or it is rejected outright.
func validateResources(in []request_models.ResourceLinkRequest) ([]db_models.ResourceLink, error) {
	out := make([]db_models.ResourceLink, 0, len(in))
	for _, r := range in {
		text := strings.TrimSpace(r.Text)
		url := strings.TrimSpace(r.URL)
		if text == "" && url == "" {
			continue
		}
		if text == "" || url == "" {
			return nil, utils.ErrInvalidInput
		}
		out = append(out, db_models.ResourceLink{Text: text, URL: url})
	}
	return out, nil
}
