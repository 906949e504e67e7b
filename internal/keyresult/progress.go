package keyresult

// Progress returns current as a percentage of target. A zero target yields 0.
// The result is not clamped or rounded.
func Progress(current, target float64) float64 {
	if target > 0 {
		return current / target * 100
	}
	return 0
}

// ResolveProgress prefers an explicitly supplied percentage over the computed one.
func ResolveProgress(explicit *float64, current, target float64) float64 {
	if explicit != nil {
		return *explicit
	}
	return Progress(current, target)
}
