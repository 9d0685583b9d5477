package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/ploscarna/internal/auth"
	"github.com/erazemk/ploscarna/internal/db"
	"github.com/erazemk/ploscarna/internal/model"
	"github.com/erazemk/ploscarna/internal/store"
)

const testJWTSecret = "test-secret"

func setupTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	database := db.NewTestDB(t)
	router := NewRouter(database, testJWTSecret)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	// Create admin user.
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	actor := store.Actor{Email: "admin@ploscarna.si", Addr: "127.0.0.1"}
	store.CreateUser(ctx, database, actor, "admin@ploscarna.si", string(hash), model.RoleAdmin, "Admin", "", "")

	// Get token.
	body, _ := json.Marshal(map[string]string{"email": "admin@ploscarna.si", "password": "password"})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	json.NewDecoder(resp.Body).Decode(&loginResp)
	if loginResp.Token == "" {
		t.Fatal("empty token from login")
	}

	return server, loginResp.Token
}

func authRequest(method, url, token string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func TestLoginEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	// Test invalid credentials.
	body, _ := json.Marshal(map[string]string{"email": "admin@ploscarna.si", "password": "wrong"})
	resp, _ := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRegisterEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"email":      "ana@ploscarna.si",
		"password":   "correcthorse",
		"first_name": "Ana",
		"last_name":  "Novak",
		"phone":      "+386 40 123 456",
	})
	resp, _ := http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var user model.User
	json.NewDecoder(resp.Body).Decode(&user)
	resp.Body.Close()
	if user.Role != model.RoleUser {
		t.Errorf("self-registration should create a regular user, got %q", user.Role)
	}

	// Duplicate email is rejected.
	resp, _ = http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Short passwords are rejected.
	body, _ = json.Marshal(map[string]string{"email": "bo@ploscarna.si", "password": "short"})
	resp, _ = http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for short password, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestEnsemblesAPIFlow(t *testing.T) {
	server, token := setupTestServer(t)

	// Create ensemble.
	req, _ := authRequest("POST", server.URL+"/api/ensembles", token, map[string]string{
		"name": "Kvartet A",
		"type": "string quartet",
	})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// List ensembles.
	req, _ = authRequest("GET", server.URL+"/api/ensembles", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var ensembles []model.Ensemble
	json.NewDecoder(resp.Body).Decode(&ensembles)
	resp.Body.Close()
	if len(ensembles) != 1 {
		t.Errorf("expected 1 ensemble, got %d", len(ensembles))
	}
}

func TestMembersAPIFlow(t *testing.T) {
	server, token := setupTestServer(t)

	req, _ := authRequest("POST", server.URL+"/api/ensembles", token, map[string]string{"name": "Kvartet A"})
	resp, _ := http.DefaultClient.Do(req)
	resp.Body.Close()

	req, _ = authRequest("POST", server.URL+"/api/musicians", token, map[string]string{
		"first_name": "Ann",
		"last_name":  "Lee",
	})
	resp, _ = http.DefaultClient.Do(req)
	resp.Body.Close()

	// Join by display names.
	req, _ = authRequest("POST", server.URL+"/api/members", token, map[string]string{
		"ensemble": "Kvartet A",
		"musician": "Ann Lee",
		"role":     "violin",
	})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Unknown musician yields 404 instead of a silent guess.
	req, _ = authRequest("POST", server.URL+"/api/members", token, map[string]string{
		"ensemble": "Kvartet A",
		"musician": "Nobody Here",
	})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown musician, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("GET", server.URL+"/api/members", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	var memberships []model.Membership
	json.NewDecoder(resp.Body).Decode(&memberships)
	resp.Body.Close()
	if len(memberships) != 1 || memberships[0].MusicianName != "Ann Lee" {
		t.Errorf("unexpected memberships: %+v", memberships)
	}
}

func TestRecordSalesAPIFlow(t *testing.T) {
	server, token := setupTestServer(t)

	req, _ := authRequest("POST", server.URL+"/api/records", token, map[string]any{
		"title":           "Zimske pesmi",
		"wholesale_price": 8.5,
		"retail_price":    14.99,
		"disc_count":      1,
		"remaining_stock": 200,
	})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var record model.Record
	json.NewDecoder(resp.Body).Decode(&record)
	resp.Body.Close()
	salesURL := fmt.Sprintf("%s/api/records/%d/sales", server.URL, record.ID)

	// Two sales updates accumulate.
	for _, sold := range []int{100, 50} {
		req, _ = authRequest("POST", salesURL, token, map[string]int{"sold": sold})
		resp, _ = http.DefaultClient.Do(req)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		json.NewDecoder(resp.Body).Decode(&record)
		resp.Body.Close()
	}
	if record.CurrentYearSales != 150 {
		t.Errorf("expected 150 sales, got %d", record.CurrentYearSales)
	}

	// Negative delta rejected.
	req, _ = authRequest("POST", salesURL, token, map[string]int{"sold": -5})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for negative delta, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAnalyticsEndpoints(t *testing.T) {
	server, token := setupTestServer(t)

	for _, report := range []string{
		"record-overview",
		"ensemble-repertoire",
		"musician-ensembles",
		"composition-popularity",
		"record-finance",
	} {
		req, _ := authRequest("GET", server.URL+"/api/analytics/"+report, token, nil)
		resp, _ := http.DefaultClient.Do(req)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", report, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestActionsEndpoint(t *testing.T) {
	server, token := setupTestServer(t)

	// Setup already left registration and login entries; add a mutation.
	req, _ := authRequest("POST", server.URL+"/api/ensembles", token, map[string]string{"name": "Kvartet A"})
	resp, _ := http.DefaultClient.Do(req)
	resp.Body.Close()

	req, _ = authRequest("GET", server.URL+"/api/actions", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var actions []model.UserAction
	json.NewDecoder(resp.Body).Decode(&actions)
	resp.Body.Close()
	if len(actions) != 3 {
		t.Errorf("expected 3 audit entries (register + login + add), got %d", len(actions))
	}

	// Filter by type.
	req, _ = authRequest("GET", server.URL+"/api/actions?type=login", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	json.NewDecoder(resp.Body).Decode(&actions)
	resp.Body.Close()
	if len(actions) != 1 || actions[0].ActionType != model.ActionLogin {
		t.Errorf("unexpected filtered actions: %+v", actions)
	}

	// Clear.
	req, _ = authRequest("DELETE", server.URL+"/api/actions", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("GET", server.URL+"/api/actions", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	json.NewDecoder(resp.Body).Decode(&actions)
	resp.Body.Close()
	if len(actions) != 0 {
		t.Errorf("expected empty log after clear, got %d", len(actions))
	}
}

func TestUnauthenticatedAccess(t *testing.T) {
	database := db.NewTestDB(t)
	router := NewRouter(database, testJWTSecret)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	resp, _ := http.Get(server.URL + "/api/records")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for unauthenticated request, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRoleBasedAccess(t *testing.T) {
	database := db.NewTestDB(t)
	router := NewRouter(database, testJWTSecret)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	// Create a regular user.
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	actor := store.Actor{Email: "ana@ploscarna.si", Addr: "127.0.0.1"}
	user, err := store.CreateUser(ctx, database, actor, "ana@ploscarna.si", string(hash), model.RoleUser, "Ana", "Novak", "")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	userToken, _ := auth.GenerateToken(testJWTSecret, user.ID, user.Email, user.Role)

	// Regular users cannot manage accounts.
	req, _ := authRequest("GET", server.URL+"/api/users", userToken, nil)
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for user accessing users, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// But they can use the catalog.
	req, _ = authRequest("GET", server.URL+"/api/records", userToken, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for user listing records, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
