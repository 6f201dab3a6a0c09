package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gotham/internal/models/db_models"
	"gotham/internal/models/request_models"
	"gotham/internal/models/response_models"
	"gotham/internal/repositories"
	"gotham/internal/schedule"
	"gotham/pkg/utils"
)

const defaultTripName = "My NYC Trip"

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userID string, req request_models.SaveTripRequest) (string, error)

	// LoadUserTrips lists the caller's active trips, newest first. A query
	// failure is logged and reads as "no trips".
	LoadUserTrips(ctx context.Context, userID string) []response_models.SavedTripResponse

	LoadTripDetails(ctx context.Context, userID string, tripID string) (*response_models.TripDetailResponse, error)
	DeleteTripByID(ctx context.Context, userID string, tripID string) error

	// DeleteUserData erases the user's trips and identity row. Trips going
	// first means a failed identity delete can leave an orphaned user row;
	// that partial state is reported as failure but not rolled back.
	DeleteUserData(ctx context.Context, userID string) error
}

type TripService struct {
	tripRepo       repositories.TripRepository
	attractionRepo repositories.AttractionRepository
	userRepo       repositories.UserRepository
	logger         *zap.Logger
}

func NewTripService(
	tripRepo repositories.TripRepository,
	attractionRepo repositories.AttractionRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) TripServiceInterface {
	return &TripService{
		tripRepo:       tripRepo,
		attractionRepo: attractionRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (t *TripService) SaveTrip(ctx context.Context, userID string, req request_models.SaveTripRequest) (string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultTripName
	}

	trip := &db_models.TripSchedule{
		UserID:    userUUID,
		Name:      name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	}

	items := make([]db_models.ScheduledAttraction, 0)
	for _, day := range req.Days {
		for _, item := range day.Items {
			items = append(items, db_models.ScheduledAttraction{
				AttractionID:   item.ID,
				AttractionName: item.Name,
				DayDate:        day.Date,
			})
		}
	}

	tripID, err := t.tripRepo.CreateWithAttractions(ctx, trip, items)
	if err != nil {
		t.logger.Error("trip save failed", zap.String("user_id", userID), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	return tripID.String(), nil
}

func (t *TripService) LoadUserTrips(ctx context.Context, userID string) []response_models.SavedTripResponse {
	out := []response_models.SavedTripResponse{}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return out
	}

	rows, err := t.tripRepo.ListActiveByUser(ctx, userUUID)
	if err != nil {
		t.logger.Error("trip list failed", zap.String("user_id", userID), zap.Error(err))
		return out
	}

	for _, row := range rows {
		out = append(out, response_models.SavedTripResponse{
			ID:              row.ID.String(),
			Name:            row.Name,
			StartDate:       row.StartDate,
			EndDate:         row.EndDate,
			CreatedAt:       row.CreatedAt,
			AttractionCount: row.AttractionCount,
		})
	}
	return out
}

func (t *TripService) LoadTripDetails(ctx context.Context, userID string, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := t.tripRepo.GetActiveByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// Missing, inactive and foreign trips all read the same from outside.
	if trip == nil || trip.UserID.String() != userID {
		return nil, utils.ErrTripNotFound
	}

	stored, err := t.tripRepo.ListAttractionsBySchedule(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byDate := make(map[string][]schedule.Attraction)
	for _, row := range stored {
		byDate[row.DayDate] = append(byDate[row.DayDate], schedule.Attraction{
			ID:   row.AttractionID,
			Name: row.AttractionName,
		})
	}

	// One entry per calendar day from start to end, empty days included.
	days := make([]schedule.Day, 0)
	for _, date := range utils.DaysInRange(trip.StartDate, trip.EndDate) {
		items := byDate[date]
		if items == nil {
			items = []schedule.Attraction{}
		}
		days = append(days, schedule.Day{Date: date, Items: items})
	}

	t.enrichFromCatalog(ctx, days)

	return &response_models.TripDetailResponse{
		ID:        trip.ID.String(),
		Name:      trip.Name,
		StartDate: trip.StartDate,
		EndDate:   trip.EndDate,
		CreatedAt: trip.CreatedAt,
		Days:      days,
	}, nil
}

// enrichFromCatalog re-joins stored {id, name} stubs against the live
// catalog. An id the catalog no longer carries keeps its stub; a saved trip
// is a set of references, not a deep copy.
func (t *TripService) enrichFromCatalog(ctx context.Context, days []schedule.Day) {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, day := range days {
		for _, item := range day.Items {
			if !seen[item.ID] {
				seen[item.ID] = true
				ids = append(ids, item.ID)
			}
		}
	}
	if len(ids) == 0 {
		return
	}

	catalog, err := t.attractionRepo.GetByIDs(ctx, ids)
	if err != nil {
		t.logger.Warn("catalog enrichment failed, serving stubs", zap.Error(err))
		return
	}

	byID := make(map[string]db_models.Attraction, len(catalog))
	for _, a := range catalog {
		byID[a.ID.String()] = a
	}

	for di := range days {
		for ii := range days[di].Items {
			if full, ok := byID[days[di].Items[ii].ID]; ok {
				days[di].Items[ii].Name = full.Name
				days[di].Items[ii].Category = full.Category
				days[di].Items[ii].Tags = full.Tags
			}
		}
	}
}

func (t *TripService) DeleteTripByID(ctx context.Context, userID string, tripID string) error {
	trip, err := t.tripRepo.GetActiveByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID.String() != userID {
		return utils.ErrTripNotFound
	}

	if err := t.tripRepo.Deactivate(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TripService) DeleteUserData(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if err := t.tripRepo.DeleteAllByUser(ctx, userUUID); err != nil {
		t.logger.Error("user trips delete failed", zap.String("user_id", userID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if err := t.userRepo.DeleteByID(ctx, userID); err != nil {
		// Trips are already gone; the stranded identity row is a known gap.
		t.logger.Error("user row delete failed after trips were removed",
			zap.String("user_id", userID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}
