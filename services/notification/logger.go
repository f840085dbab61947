package notification

import (
	"context"

	"go.uber.org/zap"

	"medibook/utils"
)

// LogNotificationService records outgoing notifications instead of pushing
// them. It stands in for the external push gateway in environments where no
// delivery transport is wired up.
type LogNotificationService struct{}

func NewLogNotificationService() *LogNotificationService {
	return &LogNotificationService{}
}

func (s *LogNotificationService) SendDoctorPushNotification(
	ctx context.Context,
	doctorID, title, body string,
	data map[string]string,
) error {
	utils.GetLogger().Info("doctor notification",
		zap.String("doctorID", doctorID),
		zap.String("title", title),
		zap.String("body", body),
		zap.Any("data", data),
	)
	return nil
}

func (s *LogNotificationService) SendPatientPushNotification(
	ctx context.Context,
	patientID, title, body string,
	data map[string]string,
) error {
	utils.GetLogger().Info("patient notification",
		zap.String("patientID", patientID),
		zap.String("title", title),
		zap.String("body", body),
		zap.Any("data", data),
	)
	return nil
}
