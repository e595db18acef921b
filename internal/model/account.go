package model

// Account holds the Cloudflare credentials the panel acts with. The table
// only ever contains one row; saving replaces it.
type Account struct {
	BaseModel
	Email          string `gorm:"type:varchar(255);not null" json:"email"`
	APIKey         string `gorm:"column:api_key;type:varchar(255);not null" json:"-"`
	SelectedZoneID string `gorm:"column:selected_zone_id;type:varchar(64)" json:"selected_zone_id"`
}

// TableName specifies the table name for Account model
func (Account) TableName() string {
	return "accounts"
}
