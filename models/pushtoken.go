package models

import "time"

// DeviceKind identifies the push transport a token belongs to.
type DeviceKind string

const (
	DeviceWeb     DeviceKind = "web"
	DeviceIOS     DeviceKind = "ios"
	DeviceAndroid DeviceKind = "android"
)

// PushToken holds the structure for the fcm-tokens resource in the CMS
type PushToken struct {
	ID       int        `json:"id,omitempty"`
	Token    string     `json:"token"`  // FCM token on web, Expo push token (e.g., "ExponentPushToken[xxx]") on mobile
	Device   DeviceKind `json:"device"` // "web", "ios" or "android"
	UserID   int        `json:"user"`
	LastUsed time.Time  `json:"lastUsed"`
	Active   bool       `json:"active"`
}
