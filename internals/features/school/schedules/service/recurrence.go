// file: internals/features/school/schedules/service/recurrence.go
package service

import (
	"iter"
	"time"
)

// ISOWeekday: Senin=1 .. Minggu=7.
func ISOWeekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// WeekdayOccurrences menghasilkan semua tanggal dengan isoWeekday tertentu
// di rentang [from, toExclusive) yang lolos filter keep (nil = tanpa filter).
// Kandidat pertama = from + ((isoWeekday - isoweekday(from)) mod 7) hari,
// lalu melangkah tepat 7 hari. keep hanya menyaring, tidak menghentikan
// enumerasi. Deterministik terhadap keempat inputnya.
func WeekdayOccurrences(from, toExclusive time.Time, isoWeekday int, keep func(time.Time) bool) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		daysAhead := (isoWeekday - ISOWeekday(from)) % 7
		if daysAhead < 0 {
			daysAhead += 7
		}
		for d := from.AddDate(0, 0, daysAhead); d.Before(toExclusive); d = d.AddDate(0, 0, 7) {
			if keep != nil && !keep(d) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}
