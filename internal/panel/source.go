package panel

import (
	"errors"
	"time"

	"cfpanel/internal/account"
	"cfpanel/internal/busy"
	"cfpanel/internal/cloudflare"

	"github.com/sirupsen/logrus"
)

// ErrNoZoneSelected is returned when an operation needs a zone but none was
// requested and no zone has been selected on the account.
var ErrNoZoneSelected = errors.New("no zone selected")

// ClientSource builds Cloudflare clients from the stored account record.
// Credentials are read fresh on every build, so a saved credential change
// takes effect on the next call without a restart.
type ClientSource struct {
	store   *account.Store
	tracker *busy.Tracker
	baseURL string
	timeout time.Duration
	logger  *logrus.Entry
}

// NewClientSource creates a client source bound to the account store.
func NewClientSource(store *account.Store, tracker *busy.Tracker, baseURL string, timeout time.Duration, logger *logrus.Entry) *ClientSource {
	return &ClientSource{
		store:   store,
		tracker: tracker,
		baseURL: baseURL,
		timeout: timeout,
		logger:  logger,
	}
}

// Client returns a Cloudflare client for the current credentials, or
// account.ErrNotConfigured when none are stored.
func (s *ClientSource) Client() (*cloudflare.Client, error) {
	acc, err := s.store.Get()
	if err != nil {
		return nil, err
	}

	opts := []cloudflare.Option{
		cloudflare.WithBusySink(s.tracker),
	}
	if s.baseURL != "" {
		opts = append(opts, cloudflare.WithBaseURL(s.baseURL))
	}
	if s.timeout > 0 {
		opts = append(opts, cloudflare.WithTimeout(s.timeout))
	}
	if s.logger != nil {
		opts = append(opts, cloudflare.WithLogger(s.logger))
	}

	return cloudflare.NewClient(acc.Email, acc.APIKey, opts...), nil
}

// Zone resolves the zone an operation should target: the requested zone if
// given, otherwise the account's selected zone.
func (s *ClientSource) Zone(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}

	acc, err := s.store.Get()
	if err != nil {
		return "", err
	}
	if acc.SelectedZoneID == "" {
		return "", ErrNoZoneSelected
	}
	return acc.SelectedZoneID, nil
}

// Tracker exposes the shared busy tracker.
func (s *ClientSource) Tracker() *busy.Tracker {
	return s.tracker
}
