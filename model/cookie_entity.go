package model

import (
	"time"
)

// CookieEntity stores one platform's captured browser session as a JSON
// cookie array. The login capturer writes it; the playwright manager loads it
// into the browser context before a fill pass.
type CookieEntity struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Platform    string    `gorm:"column:platform"`     // greenhouse/lever/ashby
	CookieValue string    `gorm:"column:cookie_value"` // JSON array of cookies
	Remark      string    `gorm:"column:remark"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (CookieEntity) TableName() string {
	return "cookie"
}
