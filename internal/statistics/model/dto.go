// Package model provides data transfer objects for the admin dashboard.
package model

import "github.com/festy23/sportsday/internal/sport"

// SportStatistics is the participant count of one sport.
type SportStatistics struct {
	Sport sport.Sport
	// Participants is the number of students interested in the sport.
	Participants int
}

// Dashboard is the admin landing page summary.
type Dashboard struct {
	TotalStudents int
	// Sports follows catalog order.
	Sports []SportStatistics
}

// EmptyDashboard returns the summary shown when no data could be read.
func EmptyDashboard() *Dashboard {
	all := sport.All()
	d := &Dashboard{Sports: make([]SportStatistics, 0, len(all))}
	for _, sp := range all {
		d.Sports = append(d.Sports, SportStatistics{Sport: sp})
	}
	return d
}
