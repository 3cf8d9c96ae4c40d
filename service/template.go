package service

import (
	"bytes"

	"github.com/alecthomas/template"
	"github.com/dilshat/wa-reminder/service/dto"
)

//notificationText is the fixed notification template.
//Wording follows the letters sent out by the vehicle testing office
const notificationText = `Hello {{.Name}},

This is a reminder that the periodic inspection (KIR) of your vehicle is due.

Vehicle number: {{.VehicleNumber}}
Test number: {{.TestNumber}}
Vehicle type: {{.VehicleType}}
Test date: {{.TestDate}}

Please bring your vehicle to the motor vehicle testing center before the test date.
Make sure the vehicle is ready for inspection and roadworthy.

Thank you - Department of Transportation`

//placeholder shown in place of absent optional fields
const emptyField = "-"

var notificationTmpl = template.Must(template.New("notification").Parse(notificationText))

//BuildMessage renders the notification text for the given reminder.
//The status label is part of the dispatch contract but is not interpolated into the text
func BuildMessage(reminder dto.ReminderView, statusLabel string) (string, error) {
	if reminder.TestNumber == "" {
		reminder.TestNumber = emptyField
	}
	if reminder.VehicleType == "" {
		reminder.VehicleType = emptyField
	}

	var buf bytes.Buffer
	err := notificationTmpl.Execute(&buf, reminder)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
