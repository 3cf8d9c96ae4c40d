package model

import "time"

const (
	//message directions
	OUT = "out"
	IN  = "in"

	//delivery outcome statuses
	SENT    = "sent"
	FAILED  = "failed"
	ERROR   = "error"
	UNKNOWN = "unknown"
)

type MessageLog struct {
	Id        uint32 `storm:"id,increment"`
	Direction string `storm:"index"`
	Phone     string
	Text      string
	Status    string
	Meta      string
	CreatedAt time.Time `storm:"index"`
}
