package entity

import "time"

// Author is identified by ID only. An update replaces every other field.
type Author struct {
	ID        int64
	Name      string
	BirthDate time.Time
}
