package model

// Schedule is the structured form of an activity's meeting times. Times are
// zero-padded "HH:MM" strings so they compare correctly as plain strings.
type Schedule struct {
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

// Activity is keyed by its human-readable name in the store; the record
// itself does not repeat the name.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	ScheduleDetails Schedule `json:"schedule_details"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Announcement ids are string-encoded positive integers. StartDate is
// optional (nil = no lower bound); EndDate is always set. Both are ISO
// "YYYY-MM-DD" dates, CreatedAt an ISO-8601 timestamp.
type Announcement struct {
	ID        string  `json:"id"`
	Message   string  `json:"message"`
	StartDate *string `json:"start_date"`
	EndDate   string  `json:"end_date"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
}

// AnnouncementUpdate carries a partial update. A nil field means "leave
// unchanged"; there is no way to clear a field through this surface.
type AnnouncementUpdate struct {
	Message   *string `json:"message"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// Teacher credentials are seeded at startup and read-only afterwards.
// Name is a legacy field kept for old seed records that predate DisplayName.
type Teacher struct {
	Username     string
	PasswordHash string
	DisplayName  string
	Name         string
	Role         string
}

// Display returns the teacher's display name, falling back to the legacy
// Name field for old records.
func (t Teacher) Display() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

// EffectiveRole defaults to "teacher" for records seeded without a role.
func (t Teacher) EffectiveRole() string {
	if t.Role != "" {
		return t.Role
	}
	return "teacher"
}
