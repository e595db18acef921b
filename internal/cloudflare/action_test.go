package cloudflare

import "testing"

func TestActionLabels(t *testing.T) {
	cases := []struct {
		action Action
		label  string
	}{
		{ActionBan, "Ban"},
		{ActionJSChallenge, "JS Challenge"},
		{ActionCAPTCHAChallenge, "CAPTCHA Challenge"},
		{ActionAllow, "Allow"},
	}

	for _, tc := range cases {
		if got := tc.action.Label(); got != tc.label {
			t.Errorf("Expected label '%s' for %s, got '%s'", tc.label, tc.action, got)
		}
		if tc.action.Description() == "" {
			t.Errorf("Expected a description for %s", tc.action)
		}
		if !tc.action.Valid() {
			t.Errorf("Expected %s to be valid", tc.action)
		}
	}
}

func TestActionValid(t *testing.T) {
	if Action("nuke").Valid() {
		t.Error("Expected unknown action to be invalid")
	}
}

func TestActionsCoversEveryVariant(t *testing.T) {
	actions := Actions()
	if len(actions) != 4 {
		t.Fatalf("Expected 4 actions, got %d", len(actions))
	}

	seen := make(map[Action]bool)
	for _, a := range actions {
		seen[a] = true
	}
	for _, a := range []Action{ActionBan, ActionJSChallenge, ActionCAPTCHAChallenge, ActionAllow} {
		if !seen[a] {
			t.Errorf("Expected Actions() to include %s", a)
		}
	}
}
