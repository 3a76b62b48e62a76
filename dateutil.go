// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// dateutil.go
// The placeholder translation is adapted from https://github.com/metakeule/fmtdate by Marc René Arns

package main

import (
	"strings"
	"time"
)

// Layouts use spreadsheet-style placeholders:
//
//	YYYY year, MM month (01), MMM month (Jan), DD day (02), hh hour (15), mm minutes (04)
const (
	ExpiryFormat = "YYYY-MM-DD"
	// ShortStamp is used for sale, queue and undo timestamps.
	ShortStamp = "DD MMM hh:mm"
)

type placeholder struct{ find, subst string }

// Longer tokens come first so "MMM" is not eaten by "MM".
var placeholders = []placeholder{
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"YYYY", "2006"},
	{"DDDD", "Monday"},
	{"DDD", "Mon"},
	{"DD", "02"},
}

func layout(format string) string {
	for _, ph := range placeholders {
		format = strings.ReplaceAll(format, ph.find, ph.subst)
	}
	return format
}

// Format renders date using a placeholder layout such as ShortStamp.
func Format(format string, date time.Time) string {
	return date.Format(layout(format))
}

// FormatDate renders an expiry date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return Format(ExpiryFormat, date)
}

// ParseDate reads a YYYY-MM-DD expiry date. The result is midnight UTC and
// only its calendar date is meaningful.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(layout(ExpiryFormat), value)
}

// DaysUntil counts whole calendar days from the local date of now to the
// calendar date of expiry as stored. Past dates are negative.
func DaysUntil(now, expiry time.Time) int {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := expiry.Date()
	from := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
