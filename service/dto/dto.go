package dto

type Id struct {
	Id uint32 `json:"id"`
}

type ReminderInput struct {
	Name          string `json:"name"`
	VehicleNumber string `json:"vehicle_number"`
	TestNumber    string `json:"test_number"`
	VehicleType   string `json:"vehicle_type"`
	TestDate      string `json:"test_date"`
	Phone         string `json:"phone"`
}

type ReminderView struct {
	Id            uint32 `json:"id"`
	Name          string `json:"name"`
	VehicleNumber string `json:"vehicle_number"`
	TestNumber    string `json:"test_number"`
	VehicleType   string `json:"vehicle_type"`
	TestDate      string `json:"test_date"`
	Phone         string `json:"phone"`
	DaysUntil     int    `json:"days_until"`
	Status        string `json:"status"`
	Severity      string `json:"severity"`
}

type RunNowInput struct {
	AsOf string `json:"as_of"`
}

type SendResult struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type Action struct {
	Id            uint32     `json:"id"`
	Name          string     `json:"name"`
	VehicleNumber string     `json:"vehicle_number"`
	TestDate      string     `json:"test_date"`
	DaysUntil     int        `json:"days_until"`
	Status        string     `json:"status"`
	Severity      string     `json:"severity"`
	SendResult    SendResult `json:"send_result"`
}

type Stats struct {
	In    int `json:"in"`
	Out   int `json:"out"`
	Users int `json:"users"`
}

type Timeseries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}
