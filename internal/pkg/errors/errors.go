package errors

import "errors"

// Custom application errors
var (
	ErrInvalidSchedule   = errors.New("invalid schedule configuration")       // Schedule spec missing required fields or malformed time
	ErrScheduleNotFound  = errors.New("schedule not found")                   // Unknown schedule ID for cancel/get
	ErrScheduling        = errors.New("failed to register schedule")          // Underlying cron runtime rejected the trigger
	ErrInvalidEmail      = errors.New("invalid email request")                // Email request missing subject/body or template context
	ErrEmailAPI          = errors.New("failed to communicate with Zoho Mail") // Generic Zoho Mail API error
	ErrPushAPI           = errors.New("failed to communicate with OneSignal") // Generic OneSignal API error
	ErrInvalidPush       = errors.New("invalid push notification request")    // Push request without a target audience
	ErrTemplate          = errors.New("failed to render email template")      // Unknown template type or render failure
	ErrInvalidPlayer     = errors.New("invalid player registration")          // Registration missing required fields or bad device type
	ErrPlayerNotFound    = errors.New("player not found")                     // Unknown player ID
	ErrDatabaseOperation = errors.New("database operation failed")            // Generic database error
	ErrInternalServer    = errors.New("internal server error")                // Generic internal error
)
