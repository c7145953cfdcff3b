package testmodels

import "github.com/go-openapi/strfmt"

type DeviceProfile struct {

	// Unique identifier for the device.
	// Required: true
	ID *string `json:"Id"`

	// Identity pool the device belongs to.
	// Required: true
	PoolID *string `json:"PoolId"`

	// Platform of the device (APNS, GCM, ...).
	Platform string `json:"Platform,omitempty"`

	// Sync status of the device.
	Status string `json:"Status,omitempty"`

	// Timestamp when the device registered.
	// Format: date-time
	RegisteredAt *strfmt.DateTime `json:"RegisteredAt,omitempty"`

	// Timestamp of the last successful sync.
	// Format: date-time
	LastSyncedAt *strfmt.DateTime `json:"LastSyncedAt,omitempty"`
}
