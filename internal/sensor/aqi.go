package sensor

// Status is the severity label attached to an air quality index.
type Status string

// Air quality status labels, following the EPA AQI bands.
const (
	StatusGood          Status = "Good"
	StatusModerate      Status = "Moderate"
	StatusSensitive     Status = "Unhealthy for Sensitive Groups"
	StatusUnhealthy     Status = "Unhealthy"
	StatusVeryUnhealthy Status = "Very Unhealthy"
	StatusHazardous     Status = "Hazardous"
)

// aqiBands maps inclusive upper bounds to status labels, lowest first.
var aqiBands = []struct {
	max    int
	status Status
}{
	{50, StatusGood},
	{100, StatusModerate},
	{150, StatusSensitive},
	{200, StatusUnhealthy},
	{300, StatusVeryUnhealthy},
}

// ClassifyAQI returns the status label for an air quality index. Values
// above 300 are Hazardous; negative values land in the lowest band.
func ClassifyAQI(aqi int) Status {
	for _, band := range aqiBands {
		if aqi <= band.max {
			return band.status
		}
	}
	return StatusHazardous
}
