package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gotham/internal/models/db_models"
	"gotham/internal/repositories"
)

// In-memory repository doubles. They mimic the postgres-backed behavior the
// services rely on: absence reads as (nil, nil), Approve is pending-only,
// CreateWithAttractions is all-or-nothing.

type fakeTripRepo struct {
	trips     map[uuid.UUID]*db_models.TripSchedule
	items     map[uuid.UUID][]db_models.ScheduledAttraction
	seq       int64
	createErr error
	deleteErr error
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{
		trips: make(map[uuid.UUID]*db_models.TripSchedule),
		items: make(map[uuid.UUID][]db_models.ScheduledAttraction),
	}
}

func (f *fakeTripRepo) CreateWithAttractions(_ context.Context, trip *db_models.TripSchedule, items []db_models.ScheduledAttraction) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}

	cp := *trip
	cp.ID = uuid.New()
	f.seq++
	cp.CreatedAt = f.seq

	f.trips[cp.ID] = &cp
	for i := range items {
		items[i].ScheduleID = cp.ID
		items[i].ID = uuid.New()
	}
	f.items[cp.ID] = append([]db_models.ScheduledAttraction(nil), items...)
	return cp.ID, nil
}

func (f *fakeTripRepo) ListActiveByUser(_ context.Context, userID uuid.UUID) ([]repositories.TripListRow, error) {
	var rows []repositories.TripListRow
	for _, trip := range f.trips {
		if trip.UserID != userID || !trip.IsActive {
			continue
		}
		rows = append(rows, repositories.TripListRow{
			ID:              trip.ID,
			Name:            trip.Name,
			StartDate:       trip.StartDate,
			EndDate:         trip.EndDate,
			CreatedAt:       trip.CreatedAt,
			AttractionCount: len(f.items[trip.ID]),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt > rows[j].CreatedAt })
	return rows, nil
}

func (f *fakeTripRepo) GetActiveByID(_ context.Context, tripID string) (*db_models.TripSchedule, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, nil
	}
	trip, ok := f.trips[id]
	if !ok || !trip.IsActive {
		return nil, nil
	}
	cp := *trip
	return &cp, nil
}

func (f *fakeTripRepo) ListAttractionsBySchedule(_ context.Context, tripID string) ([]db_models.ScheduledAttraction, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, nil
	}
	out := append([]db_models.ScheduledAttraction(nil), f.items[id]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DayDate < out[j].DayDate })
	return out, nil
}

func (f *fakeTripRepo) Deactivate(_ context.Context, tripID string) error {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	trip, ok := f.trips[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	trip.IsActive = false
	return nil
}

func (f *fakeTripRepo) DeleteAllByUser(_ context.Context, userID uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for id, trip := range f.trips {
		if trip.UserID == userID {
			delete(f.trips, id)
			delete(f.items, id)
		}
	}
	return nil
}

type fakeAttractionRepo struct {
	byID        map[uuid.UUID]*db_models.Attraction
	getByIDsErr error
}

func newFakeAttractionRepo() *fakeAttractionRepo {
	return &fakeAttractionRepo{byID: make(map[uuid.UUID]*db_models.Attraction)}
}

func (f *fakeAttractionRepo) Create(_ context.Context, attraction *db_models.Attraction) (uuid.UUID, error) {
	if attraction.ID == uuid.Nil {
		attraction.ID = uuid.New()
	}
	cp := *attraction
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeAttractionRepo) Update(_ context.Context, attraction *db_models.Attraction) error {
	if _, ok := f.byID[attraction.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *attraction
	f.byID[cp.ID] = &cp
	return nil
}

func (f *fakeAttractionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeAttractionRepo) Approve(_ context.Context, id uuid.UUID) error {
	attraction, ok := f.byID[id]
	if !ok || attraction.Status != db_models.AttractionStatusPending {
		return gorm.ErrRecordNotFound
	}
	attraction.Status = db_models.AttractionStatusApproved
	return nil
}

func (f *fakeAttractionRepo) GetByID(_ context.Context, id string) (*db_models.Attraction, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	attraction, ok := f.byID[parsed]
	if !ok {
		return nil, nil
	}
	cp := *attraction
	return &cp, nil
}

func (f *fakeAttractionRepo) GetByIDs(_ context.Context, ids []string) ([]db_models.Attraction, error) {
	if f.getByIDsErr != nil {
		return nil, f.getByIDsErr
	}
	var out []db_models.Attraction
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		if attraction, ok := f.byID[parsed]; ok {
			out = append(out, *attraction)
		}
	}
	return out, nil
}

func (f *fakeAttractionRepo) ListApproved(_ context.Context, filter repositories.AttractionFilter, _, _ int) ([]db_models.Attraction, error) {
	var out []db_models.Attraction
	for _, a := range f.byID {
		if a.Status != db_models.AttractionStatusApproved {
			continue
		}
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(filter.Query)) {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeAttractionRepo) ListPending(_ context.Context, _, _ int) ([]db_models.Attraction, error) {
	var out []db_models.Attraction
	for _, a := range f.byID {
		if a.Status == db_models.AttractionStatusPending {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttractionRepo) ListByCreator(_ context.Context, userID uuid.UUID) ([]db_models.Attraction, error) {
	var out []db_models.Attraction
	for _, a := range f.byID {
		if a.CreatedBy == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	byID      map[uuid.UUID]*db_models.User
	deleteErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*db_models.User)}
}

func (f *fakeUserRepo) add(email, role string) *db_models.User {
	u := &db_models.User{Email: email, Role: role}
	u.ID = uuid.New()
	f.byID[u.ID] = u
	return u
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*db_models.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	user, ok := f.byID[parsed]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) EnsureByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return f.add(email, db_models.RoleUser), nil
}

func (f *fakeUserRepo) DeleteByID(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return errors.New("bad id")
	}
	delete(f.byID, parsed)
	return nil
}

type fakeCategoryRepo struct {
	names []string
}

func (f *fakeCategoryRepo) CreateCategory(_ context.Context, category db_models.Category) error {
	f.names = append(f.names, category.Name)
	return nil
}

func (f *fakeCategoryRepo) EnsureByName(_ context.Context, name string) error {
	for _, n := range f.names {
		if n == name {
			return nil
		}
	}
	f.names = append(f.names, name)
	return nil
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*db_models.Category, error) {
	for _, n := range f.names {
		if n == name {
			return &db_models.Category{Name: n}, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetAllCategories(_ context.Context) ([]db_models.Category, error) {
	out := make([]db_models.Category, 0, len(f.names))
	for _, n := range f.names {
		out = append(out, db_models.Category{Name: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeMailService struct {
	lastTo    string
	lastToken string
	sendErr   error
}

func (f *fakeMailService) SendSignInLink(to string, token string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.lastTo = to
	f.lastToken = token
	return nil
}
