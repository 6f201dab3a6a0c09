package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gotham/internal/models/db_models"
	"gotham/internal/models/request_models"
	"gotham/pkg/utils"
)

type tripServiceFixture struct {
	svc            TripServiceInterface
	tripRepo       *fakeTripRepo
	attractionRepo *fakeAttractionRepo
	userRepo       *fakeUserRepo
}

func newTripServiceFixture() *tripServiceFixture {
	tripRepo := newFakeTripRepo()
	attractionRepo := newFakeAttractionRepo()
	userRepo := newFakeUserRepo()
	return &tripServiceFixture{
		svc:            NewTripService(tripRepo, attractionRepo, userRepo, zap.NewNop()),
		tripRepo:       tripRepo,
		attractionRepo: attractionRepo,
		userRepo:       userRepo,
	}
}

func saveReq(name string, days ...request_models.SaveTripDayRequest) request_models.SaveTripRequest {
	start, end := "", ""
	if len(days) > 0 {
		start, end = days[0].Date, days[len(days)-1].Date
	}
	return request_models.SaveTripRequest{Name: name, StartDate: start, EndDate: end, Days: days}
}

func TestSaveTripDefaultsBlankName(t *testing.T) {
	f := newTripServiceFixture()
	userID := uuid.New().String()

	tripID, err := f.svc.SaveTrip(context.Background(), userID, saveReq("   ",
		request_models.SaveTripDayRequest{
			Date:  "2025-06-01",
			Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String(), Name: "Central Park"}},
		},
	))
	require.NoError(t, err)

	trips := f.svc.LoadUserTrips(context.Background(), userID)
	require.Len(t, trips, 1)
	assert.Equal(t, tripID, trips[0].ID)
	assert.Equal(t, "My NYC Trip", trips[0].Name)
	assert.Equal(t, 1, trips[0].AttractionCount)
}

func TestSaveTripThenLoadDetailsRoundTrip(t *testing.T) {
	f := newTripServiceFixture()
	userID := uuid.New().String()
	idA, idB := uuid.New().String(), uuid.New().String()

	req := request_models.SaveTripRequest{
		Name:      "June weekend",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
		Days: []request_models.SaveTripDayRequest{
			{Date: "2025-06-01", Items: []request_models.SaveTripItemRequest{{ID: idA, Name: "Empire State Building"}}},
			{Date: "2025-06-03", Items: []request_models.SaveTripItemRequest{{ID: idB, Name: "The High Line"}}},
		},
	}

	tripID, err := f.svc.SaveTrip(context.Background(), userID, req)
	require.NoError(t, err)

	detail, err := f.svc.LoadTripDetails(context.Background(), userID, tripID)
	require.NoError(t, err)

	assert.Equal(t, "June weekend", detail.Name)
	require.Len(t, detail.Days, 3, "every calendar day appears, planned or not")

	assert.Equal(t, "2025-06-01", detail.Days[0].Date)
	require.Len(t, detail.Days[0].Items, 1)
	assert.Equal(t, idA, detail.Days[0].Items[0].ID)

	assert.Equal(t, "2025-06-02", detail.Days[1].Date)
	assert.NotNil(t, detail.Days[1].Items)
	assert.Empty(t, detail.Days[1].Items)

	assert.Equal(t, "2025-06-03", detail.Days[2].Date)
	require.Len(t, detail.Days[2].Items, 1)
	assert.Equal(t, idB, detail.Days[2].Items[0].ID)
}

func TestLoadTripDetailsEnrichesFromCatalog(t *testing.T) {
	f := newTripServiceFixture()
	userID := uuid.New().String()

	catalog := &db_models.Attraction{
		Name:     "The Metropolitan Museum of Art",
		Category: "Museums",
		Tags:     []string{"art", "iconic"},
		Status:   db_models.AttractionStatusApproved,
	}
	liveID, err := f.attractionRepo.Create(context.Background(), catalog)
	require.NoError(t, err)
	staleID := uuid.New().String()

	tripID, err := f.svc.SaveTrip(context.Background(), userID, saveReq("Museums day",
		request_models.SaveTripDayRequest{
			Date: "2025-06-01",
			Items: []request_models.SaveTripItemRequest{
				{ID: liveID.String(), Name: "Old Name"},
				{ID: staleID, Name: "Closed Venue"},
			},
		},
	))
	require.NoError(t, err)

	detail, err := f.svc.LoadTripDetails(context.Background(), userID, tripID)
	require.NoError(t, err)
	require.Len(t, detail.Days, 1)
	require.Len(t, detail.Days[0].Items, 2)

	live := detail.Days[0].Items[0]
	assert.Equal(t, "The Metropolitan Museum of Art", live.Name, "catalog name wins over the stored snapshot")
	assert.Equal(t, "Museums", live.Category)
	assert.Equal(t, []string{"art", "iconic"}, live.Tags)

	stale := detail.Days[0].Items[1]
	assert.Equal(t, "Closed Venue", stale.Name, "a dangling reference keeps its stored stub")
	assert.Empty(t, stale.Category)
}

func TestLoadTripDetailsEnrichmentFailureServesStubs(t *testing.T) {
	f := newTripServiceFixture()
	userID := uuid.New().String()

	tripID, err := f.svc.SaveTrip(context.Background(), userID, saveReq("",
		request_models.SaveTripDayRequest{
			Date:  "2025-06-01",
			Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String(), Name: "Katz's Delicatessen"}},
		},
	))
	require.NoError(t, err)

	f.attractionRepo.getByIDsErr = errors.New("catalog down")

	detail, err := f.svc.LoadTripDetails(context.Background(), userID, tripID)
	require.NoError(t, err)
	require.Len(t, detail.Days[0].Items, 1)
	assert.Equal(t, "Katz's Delicatessen", detail.Days[0].Items[0].Name)
}

func TestLoadUserTripsNewestFirst(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	userID := uuid.New().String()

	first, err := f.svc.SaveTrip(ctx, userID, saveReq("first",
		request_models.SaveTripDayRequest{Date: "2025-05-01", Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String()}}}))
	require.NoError(t, err)
	second, err := f.svc.SaveTrip(ctx, userID, saveReq("second",
		request_models.SaveTripDayRequest{Date: "2025-06-01", Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String()}, {ID: uuid.New().String()}}}))
	require.NoError(t, err)

	trips := f.svc.LoadUserTrips(ctx, userID)
	require.Len(t, trips, 2)
	assert.Equal(t, second, trips[0].ID)
	assert.Equal(t, 2, trips[0].AttractionCount)
	assert.Equal(t, first, trips[1].ID)
	assert.Equal(t, 1, trips[1].AttractionCount)
}

func TestLoadUserTripsFailuresReadAsEmpty(t *testing.T) {
	f := newTripServiceFixture()

	trips := f.svc.LoadUserTrips(context.Background(), "not-a-uuid")

	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestSaveTripFailureLeavesNoOrphanedTrip(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	userID := uuid.New().String()
	f.tripRepo.createErr = errors.New("insert failed")

	_, err := f.svc.SaveTrip(ctx, userID, saveReq("doomed",
		request_models.SaveTripDayRequest{Date: "2025-06-01", Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String()}}}))

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Empty(t, f.svc.LoadUserTrips(ctx, userID))
}

func TestLoadTripDetailsHidesForeignAndMissingTrips(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	owner := uuid.New().String()
	stranger := uuid.New().String()

	tripID, err := f.svc.SaveTrip(ctx, owner, saveReq("mine",
		request_models.SaveTripDayRequest{Date: "2025-06-01", Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String()}}}))
	require.NoError(t, err)

	_, err = f.svc.LoadTripDetails(ctx, stranger, tripID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	_, err = f.svc.LoadTripDetails(ctx, owner, uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestDeleteTripByID(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()
	owner := uuid.New().String()
	stranger := uuid.New().String()

	tripID, err := f.svc.SaveTrip(ctx, owner, saveReq("to delete",
		request_models.SaveTripDayRequest{Date: "2025-06-01", Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String()}}}))
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteTripByID(ctx, stranger, tripID), utils.ErrTripNotFound)
	require.Len(t, f.svc.LoadUserTrips(ctx, owner), 1, "a stranger's delete must not touch the trip")

	require.NoError(t, f.svc.DeleteTripByID(ctx, owner, tripID))
	assert.Empty(t, f.svc.LoadUserTrips(ctx, owner))

	// The soft-deleted trip is gone from the outside entirely.
	_, err = f.svc.LoadTripDetails(ctx, owner, tripID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
	assert.ErrorIs(t, f.svc.DeleteTripByID(ctx, owner, tripID), utils.ErrTripNotFound)
}

func TestDeleteUserDataRemovesTripsAndIdentity(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()

	erased := f.userRepo.add("gone@example.com", db_models.RoleUser)
	kept := f.userRepo.add("stays@example.com", db_models.RoleUser)

	_, err := f.svc.SaveTrip(ctx, erased.ID.String(), saveReq("erased trip",
		request_models.SaveTripDayRequest{Date: "2025-06-01", Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String()}}}))
	require.NoError(t, err)
	_, err = f.svc.SaveTrip(ctx, kept.ID.String(), saveReq("kept trip",
		request_models.SaveTripDayRequest{Date: "2025-06-01", Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String()}}}))
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteUserData(ctx, erased.ID.String()))

	assert.Empty(t, f.svc.LoadUserTrips(ctx, erased.ID.String()))
	row, err := f.userRepo.FindByID(ctx, erased.ID.String())
	require.NoError(t, err)
	assert.Nil(t, row)

	require.Len(t, f.svc.LoadUserTrips(ctx, kept.ID.String()), 1)
}

func TestDeleteUserDataReportsIdentityDeleteFailure(t *testing.T) {
	f := newTripServiceFixture()
	ctx := context.Background()

	user := f.userRepo.add("stuck@example.com", db_models.RoleUser)
	_, err := f.svc.SaveTrip(ctx, user.ID.String(), saveReq("",
		request_models.SaveTripDayRequest{Date: "2025-06-01", Items: []request_models.SaveTripItemRequest{{ID: uuid.New().String()}}}))
	require.NoError(t, err)

	f.userRepo.deleteErr = errors.New("fk violation")

	err = f.svc.DeleteUserData(ctx, user.ID.String())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	// Trips went first; the failure leaves the identity row stranded but the
	// trip data is already gone.
	assert.Empty(t, f.svc.LoadUserTrips(ctx, user.ID.String()))
}
