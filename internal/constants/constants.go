package constants

// Service classes offered on the booking form and pricing page.
const (
	ServiceTypeSameDay   = "same-day"
	ServiceTypeNextDay   = "next-day"
	ServiceTypeScheduled = "scheduled"
	ServiceTypeBulk      = "bulk"
)

// ServiceTypes is the closed set accepted by booking and parcel intake.
var ServiceTypes = []string{
	ServiceTypeSameDay,
	ServiceTypeNextDay,
	ServiceTypeScheduled,
	ServiceTypeBulk,
}

// Parcel statuses, in lifecycle order.
const (
	ParcelStatusCollected      = "collected"
	ParcelStatusInTransit      = "in-transit"
	ParcelStatusOutForDelivery = "out-for-delivery"
	ParcelStatusDelivered      = "delivered"
)

// ParcelStatuses is the closed set accepted by status updates.
var ParcelStatuses = []string{
	ParcelStatusCollected,
	ParcelStatusInTransit,
	ParcelStatusOutForDelivery,
	ParcelStatusDelivered,
}

// Booking statuses. Transitions are operator-driven only.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusPickedUp  = "picked-up"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// BookingStatuses is the closed set accepted by booking status updates.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusPickedUp,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// Contact inquiry statuses.
const (
	InquiryStatusNew     = "new"
	InquiryStatusRead    = "read"
	InquiryStatusReplied = "replied"
	InquiryStatusClosed  = "closed"
)

// InquiryStatuses is the closed set accepted by inquiry status updates.
var InquiryStatuses = []string{
	InquiryStatusNew,
	InquiryStatusRead,
	InquiryStatusReplied,
	InquiryStatusClosed,
}

// Operator roles. Only RoleAdmin may call admin operations.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Public identifier formats.
const (
	TrackingNumberPrefix = "DE"
	TrackingNumberRandom = 10
	BookingRefPrefix     = "DES"
	BookingRefRandom     = 8
)

// Sentinels seeded into a parcel's first history entry.
const (
	HubLocation             = "DumoExpress Hub"
	OnlineBookingLocation   = "Online Booking"
	ParcelCreatedDesc       = "Parcel collected and registered in system"
	OnlineBookingCreateDesc = "Shipment created via online booking"
)

// Notifier payload caps.
const (
	NotifyTitleMaxLen   = 1200
	NotifyContentMaxLen = 20000
)

// Queue names.
const (
	QueueDefault = "default"
)

// Asynq task types.
const (
	TaskBookingNotify = "notify:booking"
	TaskContactNotify = "notify:contact"
)

// Captcha scene keys.
const (
	CaptchaSceneBooking = "booking"
	CaptchaSceneContact = "contact"
)
