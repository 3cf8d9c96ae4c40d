package model

import "time"

const (
	//status labels derived from days until test date
	DUE_TODAY    string = "due today"
	DUE_TOMORROW        = "due tomorrow"
	UPCOMING            = "upcoming"
	EXPIRED             = "expired"
	MANUAL              = "manual"

	//severity tiers matching the status labels
	CRITICAL = "critical"
	WARNING  = "warning"
	OK       = "ok"
	NEUTRAL  = "neutral"
)

type Reminder struct {
	Id            uint32 `storm:"id,increment"`
	Name          string
	VehicleNumber string
	TestNumber    string
	VehicleType   string
	TestDate      string `storm:"index"`
	Phone         string
	CreatedAt     time.Time `storm:"index"`
}
