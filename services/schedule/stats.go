package schedule

import (
	"math"

	"medibook/models"
)

// AttendanceStats tallies attendance over the given appointments. The rate is
// a rounded percentage of present over total, 0 when there is nothing to
// count.
func AttendanceStats(appts []models.Appointment) models.AttendanceStats {
	stats := models.AttendanceStats{Total: len(appts)}
	for _, a := range appts {
		switch a.Attendance {
		case models.AttendancePresent:
			stats.Present++
		case models.AttendanceAbsent:
			stats.Absent++
		}
	}
	stats.NotMarked = stats.Total - stats.Present - stats.Absent
	if stats.Total > 0 {
		stats.AttendanceRate = int(math.Round(float64(stats.Present) / float64(stats.Total) * 100))
	}
	return stats
}
