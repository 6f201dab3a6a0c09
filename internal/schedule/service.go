package schedule

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Service is the draft authority: every mutation loads the user's stored
// state, applies the change, and writes the result back. A missing or
// corrupt stored draft hydrates to an empty state, never an error.
type Service struct {
	store  Store
	logger *zap.Logger
	mu     sync.Mutex
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) Get(ctx context.Context, userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, userID)
}

func (s *Service) SetDateRange(ctx context.Context, userID, start, end string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, userID)
	st.SetDateRange(start, end)
	s.persist(ctx, userID, &st)
	return st
}

func (s *Service) SetActiveDay(ctx context.Context, userID string, index int) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, userID)
	if err := st.SetActiveDay(index); err != nil {
		return st, err
	}
	s.persist(ctx, userID, &st)
	return st, nil
}

func (s *Service) AddToActiveDay(ctx context.Context, userID string, a Attraction) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, userID)
	if err := st.AddToActiveDay(a); err != nil {
		return st, err
	}
	s.persist(ctx, userID, &st)
	return st, nil
}

func (s *Service) RemoveFromDay(ctx context.Context, userID string, dayIndex int, attractionID string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, userID)
	if err := st.RemoveFromDay(dayIndex, attractionID); err != nil {
		return st, err
	}
	s.persist(ctx, userID, &st)
	return st, nil
}

func (s *Service) Reset(ctx context.Context, userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, userID)
	st.Reset()
	s.persist(ctx, userID, &st)
	return st
}

// Clear drops the stored draft entirely, used on account erasure.
func (s *Service) Clear(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, userID); err != nil {
		s.logger.Warn("schedule draft delete failed", zap.String("user_id", userID), zap.Error(err))
	}
}

// Replace swaps in a full state, used when restoring a saved trip as the
// working draft.
func (s *Service) Replace(ctx context.Context, userID string, st State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.ActiveDayIndex < 0 || st.ActiveDayIndex >= len(st.Days) {
		st.ActiveDayIndex = 0
	}
	s.persist(ctx, userID, &st)
	return st
}

func (s *Service) load(ctx context.Context, userID string) State {
	var st State

	raw, err := s.store.Load(ctx, userID)
	if err != nil {
		s.logger.Warn("schedule draft load failed, starting empty",
			zap.String("user_id", userID), zap.Error(err))
		return st
	}
	if len(raw) == 0 {
		return st
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		s.logger.Warn("schedule draft corrupt, starting empty",
			zap.String("user_id", userID), zap.Error(err))
		return State{}
	}
	if st.ActiveDayIndex < 0 || st.ActiveDayIndex >= len(st.Days) {
		st.ActiveDayIndex = 0
	}
	return st
}

func (s *Service) persist(ctx context.Context, userID string, st *State) {
	raw, err := json.Marshal(st)
	if err != nil {
		s.logger.Error("schedule draft marshal failed", zap.String("user_id", userID), zap.Error(err))
		return
	}
	if err := s.store.Save(ctx, userID, raw); err != nil {
		// The in-memory mutation already happened; losing one write is
		// tolerated the same way a failed localStorage write would be.
		s.logger.Warn("schedule draft save failed", zap.String("user_id", userID), zap.Error(err))
	}
}
