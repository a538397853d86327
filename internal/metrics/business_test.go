package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestIncrementCharacterCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.CharacterCreatedTotal)

	m.IncrementCharacterCreated()

	newValue := getCounterValue(t, m.CharacterCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementCommentCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.CommentCreatedTotal)

	m.IncrementCommentCreated()

	newValue := getCounterValue(t, m.CommentCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementPhotoUploaded(t *testing.T) {
	m := getTestMetrics()

	m.IncrementPhotoUploaded(3)
	m.IncrementPhotoUploaded(2)

	if got := getCounterValue(t, m.PhotoUploadedTotal); got != 5 {
		t.Errorf("Expected photo upload counter to be 5, got %f", got)
	}
}

func TestSetCharactersTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero characters", 0},
		{"one character", 1},
		{"multiple characters", 42},
		{"large number", 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetCharactersTotal(tt.count)
			value := getGaugeValue(t, m.CharactersTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestSetPhotosTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero photos", 0},
		{"one photo", 1},
		{"multiple photos", 100},
		{"large number", 5000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetPhotosTotal(tt.count)
			value := getGaugeValue(t, m.PhotosTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestBusinessMetricsIntegration(t *testing.T) {
	m := getTestMetrics()

	m.SetCharactersTotal(10)
	m.SetPhotosTotal(50)

	if getGaugeValue(t, m.CharactersTotal) != 10 {
		t.Error("Expected CharactersTotal to be 10")
	}
	if getGaugeValue(t, m.PhotosTotal) != 50 {
		t.Error("Expected PhotosTotal to be 50")
	}

	initialCharacterCreated := getCounterValue(t, m.CharacterCreatedTotal)
	initialCommentCreated := getCounterValue(t, m.CommentCreatedTotal)

	m.IncrementCharacterCreated()
	m.IncrementCommentCreated()
	m.IncrementCommentCreated()

	if getCounterValue(t, m.CharacterCreatedTotal) <= initialCharacterCreated {
		t.Error("Expected CharacterCreatedTotal to increment")
	}
	if getCounterValue(t, m.CommentCreatedTotal) <= initialCommentCreated {
		t.Error("Expected CommentCreatedTotal to increment")
	}

	m.SetCharactersTotal(11)
	m.SetPhotosTotal(52)

	if getGaugeValue(t, m.CharactersTotal) != 11 {
		t.Error("Expected CharactersTotal to be 11")
	}
	if getGaugeValue(t, m.PhotosTotal) != 52 {
		t.Error("Expected PhotosTotal to be 52")
	}
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}
