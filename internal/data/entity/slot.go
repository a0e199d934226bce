package entity

import (
	"strconv"
	"strings"
)

const (
	// Jam layanan konsultasi di cabang
	ServiceOpenHour  = 8
	ServiceCloseHour = 15

	ServiceOpen  = "08:00"
	ServiceClose = "15:00"

	// BufferMinutes adalah jarak minimal antar booking pada tanggal dan cabang
	// yang sama. Selisih tepat 60 menit masih diperbolehkan.
	BufferMinutes = 60
)

// TimeToMinutes converts "HH:MM" to minutes since midnight. ok reports whether
// the value parsed cleanly; malformed values fall back to 0 (midnight), which
// matches how legacy rows with broken time strings have always been treated.
func TimeToMinutes(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}

// Available reports whether a candidate time (in minutes since midnight) keeps
// at least BufferMinutes distance from every existing booking. The caller is
// expected to pass bookings already filtered to the same date and location.
func Available(existing []*Booking, candidateMinutes int) bool {
	for _, b := range existing {
		bookedMinutes, _ := TimeToMinutes(b.Time)

		diff := candidateMinutes - bookedMinutes
		if diff < 0 {
			diff = -diff
		}
		if diff < BufferMinutes {
			return false
		}
	}
	return true
}

// ServiceSlots returns the fixed hourly slots, 08:00 through 15:00 inclusive.
func ServiceSlots() []string {
	slots := make([]string, 0, ServiceCloseHour-ServiceOpenHour+1)
	for hour := ServiceOpenHour; hour <= ServiceCloseHour; hour++ {
		slots = append(slots, pad(hour)+":00")
	}
	return slots
}

// FreeSlots filters ServiceSlots down to the ones that keep the buffer
// distance from every existing booking.
func FreeSlots(existing []*Booking) []string {
	free := make([]string, 0, ServiceCloseHour-ServiceOpenHour+1)
	for _, slot := range ServiceSlots() {
		minutes, _ := TimeToMinutes(slot)
		if Available(existing, minutes) {
			free = append(free, slot)
		}
	}
	return free
}

func pad(hour int) string {
	if hour < 10 {
		return "0" + strconv.Itoa(hour)
	}
	return strconv.Itoa(hour)
}
