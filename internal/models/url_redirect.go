package models

import (
	"time"
)

// URLRedirect maps a retired path to the path that replaced it
type URLRedirect struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OldPath    string `gorm:"type:varchar(500);uniqueIndex;not null" json:"old_path"`
	NewPath    string `gorm:"type:varchar(500);not null" json:"new_path"`
	StatusCode int    `gorm:"default:301" json:"status_code"`

	// Inactive redirects are kept for history but no longer served
	Active   bool       `gorm:"default:true;not null" json:"active"`
	Hits     int64      `gorm:"default:0" json:"hits"`
	LastUsed *time.Time `json:"last_used"`
}

// TableName keeps the table name used by the existing deployments
func (URLRedirect) TableName() string {
	return "url_redirects"
}
