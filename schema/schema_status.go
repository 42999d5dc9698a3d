package schema

import "time"

// StoreStatus represents the status of the profile store.
type StoreStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	Location      string    `json:"location"`
	TotalProfiles int       `json:"total_profiles"`
	LastUpdated   time.Time `json:"last_updated"`
	SizeBytes     int64     `json:"size_bytes"`
	SchemaVersion int       `json:"schema_version"`
	RuleSet       string    `json:"rule_set"`
}
