package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Seconds per unit used by Age
const (
	SecondsPerDay    = 86400
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// Byte size formatting constants
const (
	ByteUnit = 1024
)

// ByteUnits lists the labels used by Bytes, smallest first. TB is the last step.
var ByteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// UnknownPlaceholder is returned by Clock for unknown or elapsed durations
const UnknownPlaceholder = "—"

// Age converts a millisecond counter into a compact human readable string such
// as "13h 5m 45s". Seconds are dropped once the total passes one minute unless
// includeSeconds is set. Partial seconds are truncated.
func Age(milliseconds int64, includeSeconds bool) string {
	seconds := milliseconds / 1000
	if seconds <= 0 {
		return "0s"
	}

	days := seconds / SecondsPerDay
	hours := (seconds % SecondsPerDay) / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute

	var secs int64
	if includeSeconds || seconds <= SecondsPerMinute {
		secs = seconds % SecondsPerMinute
	}

	var b strings.Builder
	writeUnit(&b, days, 'd')
	writeUnit(&b, hours, 'h')
	writeUnit(&b, minutes, 'm')
	writeUnit(&b, secs, 's')

	return strings.TrimRight(b.String(), " ")
}

func writeUnit(b *strings.Builder, value int64, unit byte) {
	if value <= 0 {
		return
	}
	b.WriteString(strconv.FormatInt(value, 10))
	b.WriteByte(unit)
	b.WriteByte(' ')
}

// AgeDuration is Age for a time.Duration
func AgeDuration(d time.Duration, includeSeconds bool) string {
	return Age(d.Milliseconds(), includeSeconds)
}

// Bytes formats a byte count with two decimals and the largest unit up to TB,
// e.g. "1.50 KB"
func Bytes(bytes int64) string {
	value := float64(bytes)
	unitIndex := 0

	for value >= ByteUnit && unitIndex < len(ByteUnits)-1 {
		value /= ByteUnit
		unitIndex++
	}

	return fmt.Sprintf("%.2f %s", value, ByteUnits[unitIndex])
}

// Clock returns seconds formatted as mm:ss, or hh:mm:ss past one hour.
// Zero and negative values mean unknown and render as UnknownPlaceholder.
func Clock(seconds int) string {
	if seconds <= 0 {
		return UnknownPlaceholder
	}

	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
