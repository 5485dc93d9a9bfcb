package store

import (
	"encoding/json"
	"fmt"
	"os"

	"mergington/school-api/internal/model"
)

// Seed is the startup state of all three collections. Teacher passwords are
// plaintext here and hashed by New; a seed file must never contain hashes.
type Seed struct {
	Activities    map[string]model.Activity `json:"activities"`
	Teachers      []SeedTeacher             `json:"teachers"`
	Announcements []model.Announcement      `json:"announcements"`
}

type SeedTeacher struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

// LoadSeedFile reads a JSON seed, used when SEED_FILE points at a custom
// starting state. Any read or decode failure is fatal to startup.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// DefaultSeed is the built-in Mergington High roster used when no seed file
// is configured.
func DefaultSeed() Seed {
	return Seed{
		Activities: map[string]model.Activity{
			"Chess Club": {
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Mondays and Fridays, 3:30 PM - 5:00 PM",
				ScheduleDetails: model.Schedule{Days: []string{"Monday", "Friday"}, StartTime: "15:30", EndTime: "17:00"},
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
			},
			"Programming Class": {
				Description:     "Learn programming fundamentals and build software projects",
				Schedule:        "Tuesdays and Thursdays, 7:00 AM - 8:00 AM",
				ScheduleDetails: model.Schedule{Days: []string{"Tuesday", "Thursday"}, StartTime: "07:00", EndTime: "08:00"},
				MaxParticipants: 20,
				Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
			},
			"Morning Fitness": {
				Description:     "Early morning physical training and exercises",
				Schedule:        "Mondays, Wednesdays, Fridays, 6:30 AM - 7:45 AM",
				ScheduleDetails: model.Schedule{Days: []string{"Monday", "Wednesday", "Friday"}, StartTime: "06:30", EndTime: "07:45"},
				MaxParticipants: 30,
				Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
			},
			"Soccer Team": {
				Description:     "Join the school soccer team and compete in matches",
				Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
				ScheduleDetails: model.Schedule{Days: []string{"Tuesday", "Thursday"}, StartTime: "16:00", EndTime: "17:30"},
				MaxParticipants: 22,
				Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
			},
			"Basketball Team": {
				Description:     "Practice and play basketball with the school team",
				Schedule:        "Wednesdays and Fridays, 3:15 PM - 4:45 PM",
				ScheduleDetails: model.Schedule{Days: []string{"Wednesday", "Friday"}, StartTime: "15:15", EndTime: "16:45"},
				MaxParticipants: 15,
				Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
			},
			"Art Club": {
				Description:     "Explore various art techniques and create masterpieces",
				Schedule:        "Thursdays, 3:15 PM - 5:00 PM",
				ScheduleDetails: model.Schedule{Days: []string{"Thursday"}, StartTime: "15:15", EndTime: "17:00"},
				MaxParticipants: 15,
				Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
			},
			"Drama Club": {
				Description:     "Act, direct, and produce plays and performances",
				Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:30 PM",
				ScheduleDetails: model.Schedule{Days: []string{"Monday", "Wednesday"}, StartTime: "15:30", EndTime: "17:30"},
				MaxParticipants: 20,
				Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
			},
			"Math Club": {
				Description:     "Solve challenging problems and prepare for math competitions",
				Schedule:        "Tuesdays, 7:15 AM - 8:00 AM",
				ScheduleDetails: model.Schedule{Days: []string{"Tuesday"}, StartTime: "07:15", EndTime: "08:00"},
				MaxParticipants: 10,
				Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
			},
			"Debate Team": {
				Description:     "Develop public speaking and argumentation skills",
				Schedule:        "Fridays, 3:30 PM - 5:30 PM",
				ScheduleDetails: model.Schedule{Days: []string{"Friday"}, StartTime: "15:30", EndTime: "17:30"},
				MaxParticipants: 12,
				Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
			},
			"Weekend Robotics Workshop": {
				Description:     "Build and program robots in our state-of-the-art workshop",
				Schedule:        "Saturdays, 10:00 AM - 2:00 PM",
				ScheduleDetails: model.Schedule{Days: []string{"Saturday"}, StartTime: "10:00", EndTime: "14:00"},
				MaxParticipants: 15,
				Participants:    []string{"ethan@mergington.edu", "oliver@mergington.edu"},
			},
			"Science Olympiad": {
				Description:     "Weekend science competition preparation for regional and state events",
				Schedule:        "Saturdays, 1:00 PM - 4:00 PM",
				ScheduleDetails: model.Schedule{Days: []string{"Saturday"}, StartTime: "13:00", EndTime: "16:00"},
				MaxParticipants: 18,
				Participants:    []string{"isabella@mergington.edu", "lucas@mergington.edu"},
			},
			"Sunday Chess Tournament": {
				Description:     "Weekly tournament for serious chess players with rankings",
				Schedule:        "Sundays, 2:00 PM - 5:00 PM",
				ScheduleDetails: model.Schedule{Days: []string{"Sunday"}, StartTime: "14:00", EndTime: "17:00"},
				MaxParticipants: 16,
				Participants:    []string{"william@mergington.edu", "jacob@mergington.edu"},
			},
		},
		Teachers: []SeedTeacher{
			{Username: "mrodriguez", Password: "art3mis", DisplayName: "Ms. Rodriguez", Role: "teacher"},
			{Username: "mchen", Password: "a8b5f2", DisplayName: "Mr. Chen", Role: "teacher"},
			// Legacy record: predates the display_name field.
			{Username: "principal", Password: "admin123", Name: "Principal Martinez", Role: "admin"},
		},
	}
}
