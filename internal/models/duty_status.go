package models

// DutyStatus classifies one time interval in a driver's duty log.
type DutyStatus string

const (
	StatusOffDuty      DutyStatus = "off_duty"
	StatusSleeperBerth DutyStatus = "sleeper_berth"
	StatusDriving      DutyStatus = "driving"
	StatusOnDuty       DutyStatus = "on_duty"
)

// AllDutyStatuses lists every known status in log sheet row order,
// top to bottom.
var AllDutyStatuses = []DutyStatus{
	StatusOffDuty,
	StatusSleeperBerth,
	StatusDriving,
	StatusOnDuty,
}

// Known reports whether s is one of the four regulatory duty statuses.
func (s DutyStatus) Known() bool {
	switch s {
	case StatusOffDuty, StatusSleeperBerth, StatusDriving, StatusOnDuty:
		return true
	}
	return false
}

// Label returns the human-readable grid row label for s, or UnknownValue
// for statuses outside the regulatory set.
func (s DutyStatus) Label() string {
	switch s {
	case StatusOffDuty:
		return "Off Duty"
	case StatusSleeperBerth:
		return "Sleeper Berth"
	case StatusDriving:
		return "Driving"
	case StatusOnDuty:
		return "On Duty"
	}
	return UnknownValue
}
