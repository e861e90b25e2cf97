package notifying

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotifierUnavailable  = errors.New("notifier unavailable")
)
