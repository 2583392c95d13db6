// Package healthmood computes the cross-cutting modifiers that health and
// mood apply to progression, creative output and live performance. Every
// function is pure; the package holds no state.
package healthmood

// HealthStatus buckets health into five bands.
type HealthStatus string

const (
	HealthCritical  HealthStatus = "critical"  // 0-20
	HealthPoor      HealthStatus = "poor"      // 21-40
	HealthFair      HealthStatus = "fair"      // 41-60
	HealthGood      HealthStatus = "good"      // 61-80
	HealthExcellent HealthStatus = "excellent" // 81-100
)

// MoodStatus buckets mood into five bands.
type MoodStatus string

const (
	MoodDepressed MoodStatus = "depressed" // 0-20
	MoodSad       MoodStatus = "sad"       // 21-40
	MoodNeutral   MoodStatus = "neutral"   // 41-60
	MoodHappy     MoodStatus = "happy"     // 61-80
	MoodEuphoric  MoodStatus = "euphoric"  // 81-100
)

// WarningThreshold is the level below which either axis triggers a warning.
const WarningThreshold = 30

// StatusForHealth returns the band for a health value.
func StatusForHealth(health int) HealthStatus {
	switch {
	case health <= 20:
		return HealthCritical
	case health <= 40:
		return HealthPoor
	case health <= 60:
		return HealthFair
	case health <= 80:
		return HealthGood
	default:
		return HealthExcellent
	}
}

// StatusForMood returns the band for a mood value.
func StatusForMood(mood int) MoodStatus {
	switch {
	case mood <= 20:
		return MoodDepressed
	case mood <= 40:
		return MoodSad
	case mood <= 60:
		return MoodNeutral
	case mood <= 80:
		return MoodHappy
	default:
		return MoodEuphoric
	}
}

// HealthMultiplier maps health to physical effectiveness (0.5x to 1.2x).
func HealthMultiplier(health int) float64 {
	switch StatusForHealth(health) {
	case HealthCritical:
		return 0.5
	case HealthPoor:
		return 0.7
	case HealthFair:
		return 0.9
	case HealthGood:
		return 1.0
	default:
		return 1.2
	}
}

// MoodMultiplier maps mood to creativity and focus (0.6x to 1.3x).
func MoodMultiplier(mood int) float64 {
	switch StatusForMood(mood) {
	case MoodDepressed:
		return 0.6
	case MoodSad:
		return 0.8
	case MoodNeutral:
		return 1.0
	case MoodHappy:
		return 1.15
	default:
		return 1.3
	}
}

// XPMultiplier combines both axes evenly.
func XPMultiplier(health, mood int) float64 {
	return (HealthMultiplier(health) + MoodMultiplier(mood)) / 2.0
}

// SongQualityModifier scales creative output from mood alone; mood dominates
// songwriting.
func SongQualityModifier(mood int) float64 {
	switch StatusForMood(mood) {
	case MoodDepressed:
		return 0.5
	case MoodSad:
		return 0.75
	case MoodNeutral:
		return 1.0
	case MoodHappy:
		return 1.2
	default:
		return 1.5
	}
}

// RecordingQualityModifier weighs mood over health for studio work.
// Range: 0.5 to 1.3.
func RecordingQualityModifier(health, mood int) float64 {
	combined := 0.4*float64(health)/100.0 + 0.6*float64(mood)/100.0
	return 0.5 + 0.8*combined
}

// PerformanceQualityModifier weighs both axes evenly for live shows.
// Range: 0.4 to 1.4.
func PerformanceQualityModifier(health, mood int) float64 {
	combined := 0.5*float64(health)/100.0 + 0.5*float64(mood)/100.0
	return 0.4 + 1.0*combined
}

// RestHealthRecovery returns health regained from resting. Recovery is
// amplified when already low: ×1.5 below 30, ×1.2 below 50.
func RestHealthRecovery(hoursRested float64, currentHealth int) int {
	base := hoursRested * 10
	return amplifyRecovery(base, currentHealth)
}

// RestMoodRecovery returns mood regained from resting, amplified the same
// way as health recovery.
func RestMoodRecovery(hoursRested float64, currentMood int) int {
	base := hoursRested * 5
	return amplifyRecovery(base, currentMood)
}

func amplifyRecovery(base float64, current int) int {
	switch {
	case current < 30:
		return int(base * 1.5)
	case current < 50:
		return int(base * 1.2)
	default:
		return int(base)
	}
}

// OverworkHealthLoss returns the health cost of a shift beyond eight hours:
// 2 per excess hour.
func OverworkHealthLoss(hoursWorked float64) int {
	if hoursWorked <= 8 {
		return 0
	}
	return int((hoursWorked - 8) * 2)
}

// OverworkMoodLoss is half the health cost.
func OverworkMoodLoss(hoursWorked float64) int {
	return OverworkHealthLoss(hoursWorked) / 2
}

// SuccessfulGigMoodBoost rewards a good show: up to +5 from attendance and
// +5 from quality.
func SuccessfulGigMoodBoost(attendance, quality int) int {
	attendanceFactor := attendance / 100
	if attendanceFactor > 5 {
		attendanceFactor = 5
	}
	return attendanceFactor + quality/20
}

// FailedGigMoodLoss scales disappointment by how far attendance fell short
// of expectations.
func FailedGigMoodLoss(expectedAttendance, actualAttendance int) int {
	if expectedAttendance <= 0 {
		return 0
	}
	ratio := float64(actualAttendance) / float64(expectedAttendance)
	switch {
	case ratio < 0.3:
		return 15
	case ratio < 0.5:
		return 10
	case ratio < 0.7:
		return 5
	default:
		return 0
	}
}

// ShouldWarnLowHealth fires below the warning threshold.
func ShouldWarnLowHealth(health int) bool {
	return health < WarningThreshold
}

// ShouldWarnLowMood fires below the warning threshold.
func ShouldWarnLowMood(mood int) bool {
	return mood < WarningThreshold
}

// RecommendedAction summarizes both axes into one suggestion, with health
// prioritized when both are critical.
func RecommendedAction(health, mood int) string {
	switch {
	case health < WarningThreshold && mood < WarningThreshold:
		return "You need to rest! Both your health and mood are low."
	case health < WarningThreshold:
		return "Rest to recover your health."
	case mood < WarningThreshold:
		return "Take a break to improve your mood."
	case health < 50 || mood < 50:
		return "Consider resting to optimize your performance."
	default:
		return "You're in good shape! Keep up the great work."
	}
}
