package http

import (
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"mergington/school-api/internal/model"
)

func signupURL(base, activity, email, teacher string) string {
	u := base + "/activities/" + url.PathEscape(activity) + "/signup"
	q := url.Values{}
	if email != "" {
		q.Set("email", email)
	}
	if teacher != "" {
		q.Set("teacher_username", teacher)
	}
	return u + "?" + q.Encode()
}

func unregisterURL(base, activity, email, teacher string) string {
	u := base + "/activities/" + url.PathEscape(activity) + "/unregister"
	q := url.Values{}
	q.Set("email", email)
	q.Set("teacher_username", teacher)
	return u + "?" + q.Encode()
}

func TestListActivities(t *testing.T) {
	app := newTestServer(t, testSeed())

	resp := doReq(t, http.MethodGet, app.URL+"/activities", nil)
	wantStatus(t, resp, http.StatusOK)

	var activities map[string]model.Activity
	decodeBody(t, resp, &activities)
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	chess, ok := activities["Chess Club"]
	if !ok {
		t.Fatalf("expected Chess Club in listing")
	}
	if chess.ScheduleDetails.StartTime != "15:30" {
		t.Fatalf("expected schedule details present, got %+v", chess)
	}
}

func TestListActivitiesFilters(t *testing.T) {
	app := newTestServer(t, testSeed())

	cases := []struct {
		query string
		want  []string
	}{
		{"?day=Wednesday", []string{"Chess Club"}},
		{"?day=Monday", []string{"Chess Club", "Math Club"}},
		{"?day=Sunday", nil},
		{"?start_time=15:00", []string{"Chess Club"}},
		{"?start_time=15:31", nil},
		{"?end_time=08:00", []string{"Math Club"}},
		{"?day=Monday&start_time=07:00&end_time=09:00", []string{"Math Club"}},
	}
	for _, tc := range cases {
		resp := doReq(t, http.MethodGet, app.URL+"/activities"+tc.query, nil)
		wantStatus(t, resp, http.StatusOK)

		var activities map[string]model.Activity
		decodeBody(t, resp, &activities)
		if len(activities) != len(tc.want) {
			t.Fatalf("%s: expected %d activities, got %d", tc.query, len(tc.want), len(activities))
		}
		for _, name := range tc.want {
			if _, ok := activities[name]; !ok {
				t.Fatalf("%s: expected %s in result", tc.query, name)
			}
		}
	}
}

func TestAvailableDays(t *testing.T) {
	app := newTestServer(t, testSeed())

	resp := doReq(t, http.MethodGet, app.URL+"/activities/days", nil)
	wantStatus(t, resp, http.StatusOK)

	var days []string
	decodeBody(t, resp, &days)
	if !reflect.DeepEqual(days, []string{"Monday", "Wednesday"}) {
		t.Fatalf("expected alphabetically sorted unique days, got %v", days)
	}
}

func TestSignupAuthChain(t *testing.T) {
	app := newTestServer(t, testSeed())

	resp := doReq(t, http.MethodPost, signupURL(app.URL, "Chess Club", "daniel@mergington.edu", ""), nil)
	wantError(t, resp, http.StatusUnauthorized, "Authentication required for this action")

	resp = doReq(t, http.MethodPost, signupURL(app.URL, "Chess Club", "daniel@mergington.edu", "impostor"), nil)
	wantError(t, resp, http.StatusUnauthorized, "Invalid teacher credentials")

	resp = doReq(t, http.MethodPost, signupURL(app.URL, "Knitting Circle", "daniel@mergington.edu", "mrodriguez"), nil)
	wantError(t, resp, http.StatusNotFound, "Activity not found")
}

func TestSignupAndDuplicate(t *testing.T) {
	app := newTestServer(t, testSeed())

	resp := doReq(t, http.MethodPost, signupURL(app.URL, "Chess Club", "daniel@mergington.edu", "mrodriguez"), nil)
	wantStatus(t, resp, http.StatusOK)
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["message"] != "Signed up daniel@mergington.edu for Chess Club" {
		t.Fatalf("unexpected message %q", body["message"])
	}

	resp = doReq(t, http.MethodPost, signupURL(app.URL, "Chess Club", "daniel@mergington.edu", "mrodriguez"), nil)
	wantError(t, resp, http.StatusBadRequest, "Already signed up for this activity")

	resp = doReq(t, http.MethodGet, app.URL+"/activities", nil)
	var activities map[string]model.Activity
	decodeBody(t, resp, &activities)
	want := []string{"michael@mergington.edu", "daniel@mergington.edu"}
	if !reflect.DeepEqual(activities["Chess Club"].Participants, want) {
		t.Fatalf("expected participants %v, got %v", want, activities["Chess Club"].Participants)
	}
}

func TestUnregister(t *testing.T) {
	app := newTestServer(t, testSeed())

	resp := doReq(t, http.MethodPost, unregisterURL(app.URL, "Chess Club", "daniel@mergington.edu", "mrodriguez"), nil)
	wantError(t, resp, http.StatusBadRequest, "Not registered for this activity")

	resp = doReq(t, http.MethodPost, unregisterURL(app.URL, "Chess Club", "michael@mergington.edu", "mrodriguez"), nil)
	wantStatus(t, resp, http.StatusOK)
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["message"] != "Unregistered michael@mergington.edu from Chess Club" {
		t.Fatalf("unexpected message %q", body["message"])
	}

	resp = doReq(t, http.MethodGet, app.URL+"/activities", nil)
	var activities map[string]model.Activity
	decodeBody(t, resp, &activities)
	if len(activities["Chess Club"].Participants) != 0 {
		t.Fatalf("expected empty participant list, got %v", activities["Chess Club"].Participants)
	}
}
