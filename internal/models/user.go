package models

import "time"

// UserModel represents a site account. Authorization is decided per request
// by comparing Email against the configured admin allow-list, never by a
// stored role flag.
type UserModel struct {
	Base
	Email         string     `json:"email" gorm:"uniqueIndex;not null"`
	Name          string     `json:"name"`
	Avatar        string     `json:"avatar"`
	Password      string     `json:"-"     gorm:"not null"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }

// UserSession is a revocable login session bound into JWT claims.
type UserSession struct {
	Base
	UserID    string     `json:"-"          gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:text"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func (UserSession) TableName() string { return "user_sessions" }
