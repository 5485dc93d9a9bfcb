package store

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"mergington/school-api/internal/crypto"
	"mergington/school-api/internal/model"
)

var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrAlreadySignedUp      = errors.New("already signed up")
	ErrNotSignedUp          = errors.New("not signed up")
	ErrTeacherNotFound      = errors.New("teacher not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// Store holds all three collections in process memory. A single RWMutex
// serializes access; net/http handles requests concurrently, so every
// method takes the lock even though individual operations are trivial.
type Store struct {
	mu            sync.RWMutex
	activities    map[string]*model.Activity
	announcements map[string]*model.Announcement
	teachers      map[string]model.Teacher
	nextID        int
}

// New builds a store from seed data. Teacher seed passwords arrive in
// plaintext and are hashed here; they are never retained. The announcement
// id counter starts at the highest id present in the seed.
func New(seed Seed) (*Store, error) {
	s := &Store{
		activities:    make(map[string]*model.Activity, len(seed.Activities)),
		announcements: make(map[string]*model.Announcement, len(seed.Announcements)),
		teachers:      make(map[string]model.Teacher, len(seed.Teachers)),
	}

	for name, activity := range seed.Activities {
		a := activity
		if a.Participants == nil {
			a.Participants = []string{}
		}
		s.activities[name] = &a
	}

	for _, t := range seed.Teachers {
		if t.Username == "" {
			return nil, errors.New("seed teacher with empty username")
		}
		if _, exists := s.teachers[t.Username]; exists {
			return nil, fmt.Errorf("duplicate seed teacher %q", t.Username)
		}
		hash, err := crypto.HashPassword(t.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", t.Username, err)
		}
		s.teachers[t.Username] = model.Teacher{
			Username:     t.Username,
			PasswordHash: hash,
			DisplayName:  t.DisplayName,
			Name:         t.Name,
			Role:         t.Role,
		}
	}

	for _, a := range seed.Announcements {
		id, err := strconv.Atoi(a.ID)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("seed announcement id %q is not a positive integer", a.ID)
		}
		if _, exists := s.announcements[a.ID]; exists {
			return nil, fmt.Errorf("duplicate seed announcement id %q", a.ID)
		}
		record := a
		s.announcements[a.ID] = &record
		if id > s.nextID {
			s.nextID = id
		}
	}

	return s, nil
}

// ListActivities filters by schedule. An activity passes when day (if set)
// is in its day set, its start is not earlier than startTime (if set), and
// its end is not later than endTime (if set). Times compare as plain
// strings; the zero-padded "HH:MM" form makes that ordering correct, and
// malformed filter values are deliberately not rejected.
func (s *Store) ListActivities(day, startTime, endTime string) map[string]model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity)
	for name, activity := range s.activities {
		if day != "" && !containsString(activity.ScheduleDetails.Days, day) {
			continue
		}
		if startTime != "" && activity.ScheduleDetails.StartTime < startTime {
			continue
		}
		if endTime != "" && activity.ScheduleDetails.EndTime > endTime {
			continue
		}
		out[name] = copyActivity(activity)
	}
	return out
}

// AvailableDays returns every weekday referenced by any activity,
// deduplicated and sorted alphabetically (not calendar order).
func (s *Store) AvailableDays() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, activity := range s.activities {
		for _, day := range activity.ScheduleDetails.Days {
			seen[day] = struct{}{}
		}
	}

	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Signup appends email to the activity's participants. An email may appear
// at most once per activity; no participant limit is enforced.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if containsString(activity.Participants, email) {
		return ErrAlreadySignedUp
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes email from the activity's participants by value,
// preserving the order of the remaining entries.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotSignedUp
}

func (s *Store) GetTeacher(username string) (model.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teacher, ok := s.teachers[username]
	if !ok {
		return model.Teacher{}, ErrTeacherNotFound
	}
	return teacher, nil
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func copyActivity(a *model.Activity) model.Activity {
	out := *a
	out.ScheduleDetails.Days = append([]string(nil), a.ScheduleDetails.Days...)
	out.Participants = append([]string{}, a.Participants...)
	return out
}
