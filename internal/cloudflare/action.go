package cloudflare

import "context"

// Action is a security action applied to a host IP within a zone.
type Action string

const (
	ActionBan              Action = "ban"
	ActionJSChallenge      Action = "js_challenge"
	ActionCAPTCHAChallenge Action = "captcha_challenge"
	ActionAllow            Action = "allow"
)

// Actions lists every selectable action in display order.
func Actions() []Action {
	return []Action{ActionJSChallenge, ActionCAPTCHAChallenge, ActionAllow, ActionBan}
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionBan, ActionJSChallenge, ActionCAPTCHAChallenge, ActionAllow:
		return true
	}
	return false
}

// Label returns the human-readable name shown on the action sheet.
func (a Action) Label() string {
	switch a {
	case ActionBan:
		return "Ban"
	case ActionJSChallenge:
		return "JS Challenge"
	case ActionCAPTCHAChallenge:
		return "CAPTCHA Challenge"
	case ActionAllow:
		return "Allow"
	}
	return string(a)
}

// Description returns the confirmation message explaining what the action
// does to the selected host IP.
func (a Action) Description() string {
	switch a {
	case ActionBan:
		return "All requests from this IP address will be blocked."
	case ActionJSChallenge:
		return "Visitors from this IP address will be asked to pass a JavaScript challenge."
	case ActionCAPTCHAChallenge:
		return "Visitors from this IP address will be asked to solve a CAPTCHA."
	case ActionAllow:
		return "Requests from this IP address will bypass security checks."
	}
	return ""
}

// ActionDispatcher effects a selected action against a host IP. The actual
// provider mutation lives behind this interface; the client only hands the
// selection off.
type ActionDispatcher interface {
	DispatchAction(ctx context.Context, zoneID string, action Action, hostIP string) error
}
