//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestAdminEndpoints_RejectMissingKey(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/admin/operators", nil)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

func TestAdminListOperators(t *testing.T) {
	resp, body := makeAdminRequest(t, "GET", "/api/v1/admin/operators", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	// The admin listing includes drafts, so it is at least as long as the
	// public one.
	var adminList struct {
		Operators []struct {
			Status string `json:"status"`
		} `json:"operators"`
	}
	if err := json.Unmarshal(body, &adminList); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	resp, body = makeRequest(t, "GET", "/api/v1/operators", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}
	var publicList struct {
		Operators []struct {
			Status string `json:"status"`
		} `json:"operators"`
	}
	if err := json.Unmarshal(body, &publicList); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(adminList.Operators) < len(publicList.Operators) {
		t.Errorf("Admin listing has %d operators, public has %d", len(adminList.Operators), len(publicList.Operators))
	}
}
