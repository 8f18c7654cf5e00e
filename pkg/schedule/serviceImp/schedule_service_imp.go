package serviceImp

import (
	"sort"
	"sync"
	"time"

	"irricore/entities"
	"irricore/pkg/aggregate"
	"irricore/pkg/calendar"
	"irricore/pkg/lifecycle"
	"irricore/pkg/recommend"
	"irricore/pkg/schedule/repository"
	"irricore/pkg/schedule/service"
	"irricore/pkg/window"
)

// scheduleStore is the single writer of the cached collection. Refreshes
// fetch outside the lock and carry a generation id; a response whose
// generation is no longer current is discarded so rapid window switches
// cannot install stale data over newer data.
type scheduleStore struct {
	repo repository.ScheduleRepository
	loc  *time.Location
	now  func() time.Time

	mu         sync.Mutex
	period     window.Period
	rng        window.Range
	generation uint64
	byID       map[uint]*entities.WateringSchedule
}

func New(repo repository.ScheduleRepository, loc *time.Location) service.ScheduleService {
	return &scheduleStore{
		repo:   repo,
		loc:    loc,
		now:    time.Now,
		period: window.Today,
		byID:   map[uint]*entities.WateringSchedule{},
	}
}

func (s *scheduleStore) SetWindow(p window.Period, custom *window.Range) error {
	var rng window.Range
	if p == window.Custom {
		if custom == nil {
			return &entities.ValidationError{Msg: "custom window requires start and end dates"}
		}
		if custom.Start.After(custom.End) {
			return &entities.ValidationError{Msg: "custom window start is after end"}
		}
		rng = *custom
	} else {
		var err error
		if rng, err = window.Resolve(p, s.now().In(s.loc)); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.period, s.rng = p, rng
	s.mu.Unlock()

	out, err := s.repo.InRange(nil, rng.Start, rng.End)
	if err != nil {
		// previous collection stays visible on a failed refresh
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// a newer refresh started while this one was in flight
		return nil
	}
	next := make(map[uint]*entities.WateringSchedule, len(out))
	for _, t := range out {
		next[t.ID] = t
	}
	s.byID = next
	return nil
}

func (s *scheduleStore) Window() (window.Period, window.Range) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period, s.rng
}

// snapshot returns cloned schedules sorted by date so readers can never
// mutate store state through the returned pointers.
func (s *scheduleStore) snapshot() []*entities.WateringSchedule {
	s.mu.Lock()
	out := make([]*entities.WateringSchedule, 0, len(s.byID))
	for _, t := range s.byID {
		out = append(out, t.Clone())
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (s *scheduleStore) ActiveSchedules() []*entities.WateringSchedule { return s.snapshot() }

func (s *scheduleStore) Stats() aggregate.Stats { return aggregate.Sum(s.snapshot()) }

func (s *scheduleStore) Bucket(day string) []*entities.WateringSchedule {
	return calendar.Bucket(calendar.GroupByDate(s.snapshot(), s.loc), day)
}

func (s *scheduleStore) Create(req service.CreateRequest) (*entities.WateringSchedule, error) {
	rec, err := recommend.Estimate(req.Sample)
	if err != nil {
		return nil, err
	}
	date := s.now().In(s.loc)
	if req.ScheduledDate != nil {
		date = *req.ScheduledDate
	}
	t := &entities.WateringSchedule{
		LocationID:        req.LocationID,
		Date:              date,
		RecommendedAmount: rec.Amount,
		Status:            entities.StatusPending,
		Notes:             req.Notes,
	}
	if err := s.repo.Create(t); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.rng.Contains(t.Date, s.loc) {
		s.byID[t.ID] = t.Clone()
	}
	s.mu.Unlock()
	return t, nil
}

func (s *scheduleStore) Complete(id uint, actualAmount *float64, notes string) error {
	staged, err := s.stage(id)
	if err != nil {
		return err
	}
	// validation and state checks happen locally, before any network call
	if err := lifecycle.Complete(staged, lifecycle.Completion{ActualAmount: actualAmount, Notes: notes}); err != nil {
		return err
	}
	return s.persistTransition(id, staged)
}

func (s *scheduleStore) Skip(id uint, reason entities.SkipReason) error {
	staged, err := s.stage(id)
	if err != nil {
		return err
	}
	if err := lifecycle.Skip(staged, reason); err != nil {
		return err
	}
	return s.persistTransition(id, staged)
}

// stage returns a private copy to run the transition on. The live collection
// is only patched after the persistence call succeeds, so a failed call
// leaves the task visibly pending.
func (s *scheduleStore) stage(id uint) (*entities.WateringSchedule, error) {
	s.mu.Lock()
	cur, ok := s.byID[id]
	if ok {
		cur = cur.Clone()
	}
	s.mu.Unlock()
	if ok {
		return cur, nil
	}
	// not in the active window; transitions are still legal
	return s.repo.Get(id)
}

func (s *scheduleStore) persistTransition(id uint, staged *entities.WateringSchedule) error {
	persisted, err := s.repo.UpdateStatus(id, staged.Status, staged.Execution)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// patch in place, but only if the schedule still belongs to the current
	// generation's collection
	if _, ok := s.byID[id]; ok {
		s.byID[id] = persisted.Clone()
	}
	return nil
}

func (s *scheduleStore) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.byID, id)
	s.mu.Unlock()
	return nil
}
