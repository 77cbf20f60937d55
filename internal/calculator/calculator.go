package calculator

import (
	"math"
	"time"
)

// ComputeDurationHours возвращает длительность в целых часах с округлением вверх
// 61 минута = 2 часа, для неположительного интервала - 0
func ComputeDurationHours(start, end time.Time) int {
	elapsed := end.Sub(start)
	if elapsed <= 0 {
		return 0
	}
	return int(math.Ceil(elapsed.Hours()))
}

// ComputeTotalPrice возвращает durationHours * pricePerHour, не меньше 0
func ComputeTotalPrice(durationHours int, pricePerHour float64) float64 {
	total := float64(durationHours) * pricePerHour
	if total <= 0 {
		return 0
	}
	return total
}

// Quote результат расчета стоимости бронирования
type Quote struct {
	DurationHours int
	TotalPrice    float64
}

// ComputeQuote считает длительность и стоимость за один вызов
func ComputeQuote(start, end time.Time, pricePerHour float64) Quote {
	duration := ComputeDurationHours(start, end)
	return Quote{
		DurationHours: duration,
		TotalPrice:    ComputeTotalPrice(duration, pricePerHour),
	}
}
