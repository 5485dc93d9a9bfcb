package store

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"mergington/school-api/internal/model"
)

var (
	ErrEndDateRequired = errors.New("end date required")
	ErrEndDatePast     = errors.New("end date in the past")
	ErrInvalidDate     = errors.New("invalid date format")
	ErrDateOrder       = errors.New("start date after end date")
)

const dateLayout = "2006-01-02"

// ActiveAnnouncements returns announcements whose window contains today's
// local calendar date, most recently created first. Window bounds compare
// as ISO date strings.
func (s *Store) ActiveAnnouncements() []model.Announcement {
	today := time.Now().Format(dateLayout)

	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]model.Announcement, 0, len(s.announcements))
	for _, a := range s.announcements {
		if a.StartDate != nil && *a.StartDate != "" && today < *a.StartDate {
			continue
		}
		if a.EndDate != "" && today > a.EndDate {
			continue
		}
		active = append(active, *a)
	}
	sortByCreatedAtDesc(active)
	return active
}

// AllAnnouncements returns every announcement regardless of window, most
// recently created first.
func (s *Store) AllAnnouncements() []model.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]model.Announcement, 0, len(s.announcements))
	for _, a := range s.announcements {
		all = append(all, *a)
	}
	sortByCreatedAtDesc(all)
	return all
}

// CreateAnnouncement validates the window and stores a new record. The end
// date is required, must parse, and may not lie before today; a start date,
// when given, must parse and not lie after the end date. Ids come from a
// monotonic counter, so two concurrent creates can never share one.
func (s *Store) CreateAnnouncement(message string, startDate *string, endDate, createdBy string) (model.Announcement, error) {
	if endDate == "" {
		return model.Announcement{}, ErrEndDateRequired
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return model.Announcement{}, ErrInvalidDate
	}
	today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
	if end.Before(today) {
		return model.Announcement{}, ErrEndDatePast
	}
	if startDate != nil && *startDate != "" {
		start, err := time.Parse(dateLayout, *startDate)
		if err != nil {
			return model.Announcement{}, ErrInvalidDate
		}
		if start.After(end) {
			return model.Announcement{}, ErrDateOrder
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	a := model.Announcement{
		ID:        strconv.Itoa(s.nextID),
		Message:   message,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: createdBy,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	s.announcements[a.ID] = &a
	return a, nil
}

// UpdateAnnouncement applies the supplied fields only; nil fields leave the
// record untouched. A supplied end date must parse and is validated against
// the start date the record had before this update — a start date supplied
// in the same call is not cross-checked against the new end date. That
// matches the long-standing behavior callers depend on; changing it needs a
// product decision, not a code cleanup.
func (s *Store) UpdateAnnouncement(id string, upd model.AnnouncementUpdate) (model.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.announcements[id]
	if !ok {
		return model.Announcement{}, ErrAnnouncementNotFound
	}

	if upd.EndDate != nil {
		end, err := time.Parse(dateLayout, *upd.EndDate)
		if err != nil {
			return model.Announcement{}, ErrInvalidDate
		}
		if a.StartDate != nil && *a.StartDate != "" {
			start, err := time.Parse(dateLayout, *a.StartDate)
			if err != nil {
				return model.Announcement{}, ErrInvalidDate
			}
			if start.After(end) {
				return model.Announcement{}, ErrDateOrder
			}
		}
	}

	if upd.Message != nil {
		a.Message = *upd.Message
	}
	if upd.StartDate != nil {
		a.StartDate = upd.StartDate
	}
	if upd.EndDate != nil {
		a.EndDate = *upd.EndDate
	}
	return *a, nil
}

func (s *Store) DeleteAnnouncement(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.announcements[id]; !ok {
		return ErrAnnouncementNotFound
	}
	delete(s.announcements, id)
	return nil
}

func sortByCreatedAtDesc(list []model.Announcement) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})
}
