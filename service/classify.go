package service

import "github.com/dilshat/wa-reminder/model"

//ClassifyDays maps the number of days until the test date to a status label and severity tier.
//Zero is the test day itself, negative values mean the test date has passed.
//The branches cover every integer exactly once, the last one is reachable only for negative values
func ClassifyDays(daysUntil int) (string, string) {
	if daysUntil == 0 {
		return model.DUE_TODAY, model.CRITICAL
	} else if daysUntil == 1 {
		return model.DUE_TOMORROW, model.WARNING
	} else if daysUntil >= 2 {
		return model.UPCOMING, model.OK
	}
	return model.EXPIRED, model.NEUTRAL
}
