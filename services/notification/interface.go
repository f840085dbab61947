package notification

import "context"

// NotificationService defines methods for sending pushes to doctors and
// patients. Delivery transport lives outside this service; implementations
// here only hand the message off. Failures are reported but callers treat
// them as fire-and-forget: a failed push never fails a booking.
type NotificationService interface {
	SendDoctorPushNotification(ctx context.Context, doctorID, title, body string, data map[string]string) error
	SendPatientPushNotification(ctx context.Context, patientID, title, body string, data map[string]string) error
}
