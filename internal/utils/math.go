// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach сдвигает current к target с экспоненциальным сглаживанием
func Approach(current, target, rate, deltaTime float64) float64 {
	return current + (target-current)*rate*deltaTime
}
