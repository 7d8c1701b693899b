package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// JSONStringArray stores a string slice as a JSON column so the schema
// works identically on SQLite and Postgres.
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the persisted form of an internal recipe. External recipes
// never reach this table; they live only in the cache for their TTL.
type Recipe struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Ingredients JSONStringArray `gorm:"type:json;not null;default:'[]'" json:"ingredients"`
	Steps       JSONStringArray `gorm:"type:json;not null;default:'[]'" json:"steps"`
	PrepTime    string          `gorm:"size:50" json:"prep_time"`
	CookTime    string          `gorm:"size:50" json:"cook_time"`
	Difficulty  string          `gorm:"size:50" json:"difficulty"`
	Cuisine     string          `gorm:"size:50" json:"cuisine"`
}
