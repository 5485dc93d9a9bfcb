package http

import (
	"net/http"
	"net/url"
	"testing"
)

func loginURL(base, username, password string) string {
	q := url.Values{}
	if username != "" {
		q.Set("username", username)
	}
	if password != "" {
		q.Set("password", password)
	}
	return base + "/auth/login?" + q.Encode()
}

func TestLogin(t *testing.T) {
	app := newTestServer(t, testSeed())

	resp := doReq(t, http.MethodPost, loginURL(app.URL, "mrodriguez", "art3mis"), nil)
	wantStatus(t, resp, http.StatusOK)

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["username"] != "mrodriguez" || body["display_name"] != "Ms. Rodriguez" || body["role"] != "teacher" {
		t.Fatalf("unexpected login projection %v", body)
	}
}

func TestLoginFailures(t *testing.T) {
	app := newTestServer(t, testSeed())

	resp := doReq(t, http.MethodPost, loginURL(app.URL, "mrodriguez", "wrong"), nil)
	wantError(t, resp, http.StatusUnauthorized, "Invalid username or password")

	resp = doReq(t, http.MethodPost, loginURL(app.URL, "nobody", "art3mis"), nil)
	wantError(t, resp, http.StatusUnauthorized, "Invalid username or password")

	resp = doReq(t, http.MethodPost, loginURL(app.URL, "mrodriguez", ""), nil)
	wantStatus(t, resp, http.StatusBadRequest)
	resp.Body.Close()
}

func TestLoginLegacyNameFallback(t *testing.T) {
	app := newTestServer(t, testSeed())

	resp := doReq(t, http.MethodPost, loginURL(app.URL, "principal", "admin123"), nil)
	wantStatus(t, resp, http.StatusOK)

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["display_name"] != "Principal Martinez" {
		t.Fatalf("expected legacy name fallback, got %v", body)
	}
	if body["role"] != "teacher" {
		t.Fatalf("expected role to default to teacher, got %v", body)
	}
}

func TestCheckSession(t *testing.T) {
	app := newTestServer(t, testSeed())

	// No password involved: knowing a username is enough.
	resp := doReq(t, http.MethodGet, app.URL+"/auth/check-session?username=mrodriguez", nil)
	wantStatus(t, resp, http.StatusOK)

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["username"] != "mrodriguez" || body["display_name"] != "Ms. Rodriguez" {
		t.Fatalf("unexpected check-session projection %v", body)
	}

	resp = doReq(t, http.MethodGet, app.URL+"/auth/check-session?username=nobody", nil)
	wantError(t, resp, http.StatusNotFound, "Teacher not found")

	resp = doReq(t, http.MethodGet, app.URL+"/auth/check-session", nil)
	wantStatus(t, resp, http.StatusBadRequest)
	resp.Body.Close()
}
