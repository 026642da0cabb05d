package sensor

import "testing"

func TestClassifyAQI(t *testing.T) {
	tests := []struct {
		aqi  int
		want Status
	}{
		{0, StatusGood},
		{25, StatusGood},
		{50, StatusGood},
		{51, StatusModerate},
		{100, StatusModerate},
		{101, StatusSensitive},
		{150, StatusSensitive},
		{151, StatusUnhealthy},
		{200, StatusUnhealthy},
		{201, StatusVeryUnhealthy},
		{300, StatusVeryUnhealthy},
		{301, StatusHazardous},
		{999, StatusHazardous},
		{-5, StatusGood},
	}

	for _, tt := range tests {
		if got := ClassifyAQI(tt.aqi); got != tt.want {
			t.Errorf("ClassifyAQI(%d) = %q, want %q", tt.aqi, got, tt.want)
		}
	}
}
