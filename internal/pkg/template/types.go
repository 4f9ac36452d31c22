package template

// Type identifies an email template.
type Type string

const (
	// User-related templates
	TypeWelcome            Type = "WELCOME"
	TypeUserRegistration   Type = "USER_REGISTRATION"
	TypeEmailVerification  Type = "EMAIL_VERIFICATION"
	TypePasswordReset      Type = "PASSWORD_RESET"
	TypePasswordChanged    Type = "PASSWORD_CHANGED"
	TypeAccountActivated   Type = "ACCOUNT_ACTIVATED"
	TypeAccountDeactivated Type = "ACCOUNT_DEACTIVATED"

	// Booking-related templates
	TypeBookingConfirmed Type = "BOOKING_CONFIRMED"
	TypeBookingCancelled Type = "BOOKING_CANCELLED"
	TypeBookingReminder  Type = "BOOKING_REMINDER"
	TypeBookingModified  Type = "BOOKING_MODIFIED"
	TypeCheckInReminder  Type = "CHECK_IN_REMINDER"
	TypeCheckOutReminder Type = "CHECK_OUT_REMINDER"

	// Payment-related templates
	TypePaymentReceived Type = "PAYMENT_RECEIVED"
	TypePaymentFailed   Type = "PAYMENT_FAILED"
	TypePaymentReminder Type = "PAYMENT_REMINDER"
	TypeInvoice         Type = "INVOICE"

	// Review-related templates
	TypeReviewRequest  Type = "REVIEW_REQUEST"
	TypeReviewReceived Type = "REVIEW_RECEIVED"

	// Host-related templates
	TypeNewBookingRequest Type = "NEW_BOOKING_REQUEST"
	TypeBookingApproved   Type = "BOOKING_APPROVED"
	TypeBookingDeclined   Type = "BOOKING_DECLINED"

	// Notification templates
	TypeGeneralNotification Type = "GENERAL_NOTIFICATION"
	TypeSystemAlert         Type = "SYSTEM_ALERT"
)

// defaultSubjects maps each template type to the subject used when the
// context does not provide one.
var defaultSubjects = map[Type]string{
	TypeWelcome:             "Welcome!",
	TypeUserRegistration:    "Welcome! Complete your registration",
	TypeEmailVerification:   "Verify your email address",
	TypePasswordReset:       "Reset your password",
	TypePasswordChanged:     "Your password has been changed",
	TypeAccountActivated:    "Your account has been activated",
	TypeAccountDeactivated:  "Your account has been deactivated",
	TypeBookingConfirmed:    "Booking Confirmed",
	TypeBookingCancelled:    "Booking Cancelled",
	TypeBookingReminder:     "Upcoming Booking Reminder",
	TypeBookingModified:     "Booking Modified",
	TypeCheckInReminder:     "Check-in Reminder",
	TypeCheckOutReminder:    "Check-out Reminder",
	TypePaymentReceived:     "Payment Received",
	TypePaymentFailed:       "Payment Failed",
	TypePaymentReminder:     "Payment Reminder",
	TypeInvoice:             "Invoice",
	TypeReviewRequest:       "Share your experience",
	TypeReviewReceived:      "New review received",
	TypeNewBookingRequest:   "New Booking Request",
	TypeBookingApproved:     "Booking Approved",
	TypeBookingDeclined:     "Booking Declined",
	TypeGeneralNotification: "Notification",
	TypeSystemAlert:         "System Alert",
}

// Valid reports whether the template type is known.
func (t Type) Valid() bool {
	_, ok := defaultSubjects[t]
	return ok
}

// DefaultSubject returns the subject used when the rendering context
// does not carry one.
func (t Type) DefaultSubject() string {
	if s, ok := defaultSubjects[t]; ok {
		return s
	}
	return "Notification"
}
