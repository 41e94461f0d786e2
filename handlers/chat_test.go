package handlers

import (
	"testing"

	"freelanceconnect/models"
)

func TestChatSides(t *testing.T) {
	cases := []struct {
		name           string
		callerRole     string
		otherRole      string
		wantClient     string
		wantFreelancer string
		wantErr        bool
	}{
		{"client starts", models.RoleClient, models.RoleFreelancer, "caller", "other", false},
		{"freelancer starts", models.RoleFreelancer, models.RoleClient, "other", "caller", false},
		{"two clients", models.RoleClient, models.RoleClient, "", "", true},
		{"two freelancers", models.RoleFreelancer, models.RoleFreelancer, "", "", true},
	}

	for _, tc := range cases {
		clientID, freelancerID, err := chatSides("caller", tc.callerRole, "other", tc.otherRole)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got client=%q freelancer=%q", tc.name, clientID, freelancerID)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if clientID != tc.wantClient || freelancerID != tc.wantFreelancer {
			t.Fatalf("%s: got client=%q freelancer=%q, want client=%q freelancer=%q",
				tc.name, clientID, freelancerID, tc.wantClient, tc.wantFreelancer)
		}
	}
}
