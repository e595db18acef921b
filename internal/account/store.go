package account

import (
	"errors"

	"cfpanel/internal/model"

	"gorm.io/gorm"
)

// ErrNotConfigured is returned when no account record has been saved yet.
var ErrNotConfigured = errors.New("no account configured")

// Store is the single-record credential store. Get returns the one account
// row; Save replaces it.
type Store struct {
	db *gorm.DB
}

// NewStore creates an account store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the stored account or ErrNotConfigured.
func (s *Store) Get() (*model.Account, error) {
	var acc model.Account
	if err := s.db.First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotConfigured
		}
		return nil, err
	}
	return &acc, nil
}

// Save stores the credentials, replacing any existing record. The selected
// zone survives a credential update unless a new one is given.
func (s *Store) Save(email, apiKey, selectedZoneID string) (*model.Account, error) {
	acc, err := s.Get()
	if err != nil {
		if !errors.Is(err, ErrNotConfigured) {
			return nil, err
		}
		acc = &model.Account{}
	}

	acc.Email = email
	acc.APIKey = apiKey
	if selectedZoneID != "" {
		acc.SelectedZoneID = selectedZoneID
	}

	if err := s.db.Save(acc).Error; err != nil {
		return nil, err
	}
	return acc, nil
}

// SelectZone persists the selected zone on the stored account.
func (s *Store) SelectZone(zoneID string) error {
	acc, err := s.Get()
	if err != nil {
		return err
	}
	return s.db.Model(acc).Update("selected_zone_id", zoneID).Error
}
