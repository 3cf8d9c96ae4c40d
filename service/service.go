package service

import (
	"strconv"
	"time"

	"github.com/dchest/uniuri"
	"github.com/dilshat/wa-reminder/dao"
	"github.com/dilshat/wa-reminder/model"
	"github.com/dilshat/wa-reminder/service/dto"
	"github.com/dilshat/wa-reminder/util"
	"github.com/dilshat/wa-reminder/whatsapp"
	"go.uber.org/zap"
)

type InvalidPayloadErr struct {
	message string
}

func (e *InvalidPayloadErr) Error() string {
	return e.message
}

func NewInvalidPayloadError(msg string) *InvalidPayloadErr {
	return &InvalidPayloadErr{message: msg}
}

type NotFoundErr struct {
	message string
}

func (e *NotFoundErr) Error() string {
	return e.message
}

func NewNotFoundError(msg string) *NotFoundErr {
	return &NotFoundErr{message: msg}
}

const (
	PERIOD_DAY   = "day"
	PERIOD_MONTH = "month"
)

type Service interface {
	AddReminder(reminder dto.ReminderInput) (dto.Id, error)
	ListReminders(asOf string) ([]dto.ReminderView, error)
	UpdateReminder(id uint32, reminder dto.ReminderInput) error
	DeleteReminder(id uint32) error
	ClearReminders() error
	RunNow(asOf string) ([]dto.Action, error)
	SendOne(id uint32) (dto.SendResult, error)
	Stats() (dto.Stats, error)
	OutgoingTimeseries(period string, buckets int) (dto.Timeseries, error)
}

type service struct {
	relay         whatsapp.Client
	reminderDao   dao.ReminderDao
	messageLogDao dao.MessageLogDao
}

func NewService(relay whatsapp.Client, reminderDao dao.ReminderDao, messageLogDao dao.MessageLogDao) Service {
	return &service{
		relay:         relay,
		reminderDao:   reminderDao,
		messageLogDao: messageLogDao,
	}
}

func validate(reminder dto.ReminderInput) (string, error) {
	if util.IsBlank(reminder.Name) || util.IsBlank(reminder.VehicleNumber) {
		return "", NewInvalidPayloadError("Name and vehicle number are required")
	}

	testDate, err := util.ParseDate(reminder.TestDate)
	if err != nil {
		return "", NewInvalidPayloadError("Test date must be in YYYY-MM-DD format")
	}

	return testDate.Format(util.DateLayout), nil
}

func (s service) AddReminder(reminder dto.ReminderInput) (dto.Id, error) {
	testDate, err := validate(reminder)
	if err != nil {
		return dto.Id{}, err
	}

	id, err := s.reminderDao.Create(model.Reminder{
		Name:          reminder.Name,
		VehicleNumber: reminder.VehicleNumber,
		TestNumber:    reminder.TestNumber,
		VehicleType:   reminder.VehicleType,
		TestDate:      testDate,
		Phone:         reminder.Phone,
	})
	if err != nil {
		return dto.Id{}, err
	}

	return dto.Id{Id: id}, nil
}

func (s service) ListReminders(asOf string) ([]dto.ReminderView, error) {
	asOfDate, err := s.resolveAsOf(asOf)
	if err != nil {
		return nil, err
	}

	reminders, err := s.reminderDao.GetAll()
	if err != nil {
		return nil, err
	}

	views := []dto.ReminderView{}
	for _, r := range reminders {
		testDate, err := util.ParseDate(r.TestDate)
		if err != nil {
			//malformed stored dates are skipped, not surfaced
			zap.L().Warn("Skipping reminder with malformed test date",
				zap.Uint32("id", r.Id), zap.String("test_date", r.TestDate))
			continue
		}

		daysUntil := util.DaysBetween(asOfDate, testDate)
		status, severity := ClassifyDays(daysUntil)

		views = append(views, dto.ReminderView{
			Id:            r.Id,
			Name:          r.Name,
			VehicleNumber: r.VehicleNumber,
			TestNumber:    r.TestNumber,
			VehicleType:   r.VehicleType,
			TestDate:      testDate.Format(util.DateLayout),
			Phone:         r.Phone,
			DaysUntil:     daysUntil,
			Status:        status,
			Severity:      severity,
		})
	}

	return views, nil
}

func (s service) UpdateReminder(id uint32, reminder dto.ReminderInput) error {
	testDate, err := validate(reminder)
	if err != nil {
		return err
	}

	err = s.reminderDao.Update(model.Reminder{
		Id:            id,
		Name:          reminder.Name,
		VehicleNumber: reminder.VehicleNumber,
		TestNumber:    reminder.TestNumber,
		VehicleType:   reminder.VehicleType,
		TestDate:      testDate,
		Phone:         reminder.Phone,
	})
	if err != nil {
		if err.Error() == "not found" {
			return NewNotFoundError("Reminder not found " + strconv.Itoa(int(id)))
		}
		return err
	}

	return nil
}

func (s service) DeleteReminder(id uint32) error {
	err := s.reminderDao.DeleteById(id)
	if err != nil {
		if err.Error() == "not found" {
			return NewNotFoundError("Reminder not found " + strconv.Itoa(int(id)))
		}
		return err
	}
	return nil
}

func (s service) ClearReminders() error {
	return s.reminderDao.Clear()
}

func (s service) RunNow(asOf string) ([]dto.Action, error) {
	runId := uniuri.NewLen(8)

	reminders, err := s.ListReminders(asOf)
	if err != nil {
		return nil, err
	}

	actions := []dto.Action{}
	for _, r := range reminders {
		if r.DaysUntil < 0 {
			//expired records are never re-notified by batch runs
			continue
		}

		text, err := BuildMessage(r, r.Status)
		if err != nil {
			return nil, err
		}

		phone := whatsapp.NormalizePhone(r.Phone)
		result := s.dispatch(phone, text)

		actions = append(actions, dto.Action{
			Id:            r.Id,
			Name:          r.Name,
			VehicleNumber: r.VehicleNumber,
			TestDate:      r.TestDate,
			DaysUntil:     r.DaysUntil,
			Status:        r.Status,
			Severity:      r.Severity,
			SendResult:    result,
		})

		zap.L().Info("Reminder dispatched",
			zap.String("run", runId),
			zap.Uint32("id", r.Id),
			zap.String("vehicle", r.VehicleNumber),
			zap.String("status", r.Status),
			zap.String("result", result.Status))
	}

	return actions, nil
}

func (s service) SendOne(id uint32) (dto.SendResult, error) {
	reminder, err := s.reminderDao.GetOneById(id)
	if err != nil {
		if err.Error() == "not found" {
			return dto.SendResult{}, NewNotFoundError("Reminder not found " + strconv.Itoa(int(id)))
		}
		return dto.SendResult{}, err
	}

	text, err := BuildMessage(dto.ReminderView{
		Id:            reminder.Id,
		Name:          reminder.Name,
		VehicleNumber: reminder.VehicleNumber,
		TestNumber:    reminder.TestNumber,
		VehicleType:   reminder.VehicleType,
		TestDate:      reminder.TestDate,
		Phone:         reminder.Phone,
	}, model.MANUAL)
	if err != nil {
		return dto.SendResult{}, err
	}

	phone := whatsapp.NormalizePhone(reminder.Phone)

	return s.dispatch(phone, text), nil
}

//dispatch performs a single relay call and classifies the outcome.
//The log record is appended in a deferred block so no exit path skips it
func (s service) dispatch(phone, text string) (result dto.SendResult) {
	status := model.UNKNOWN
	meta := ""

	defer func() {
		_, err := s.messageLogDao.Create(model.OUT, phone, text, status, meta)
		if err != nil {
			zap.L().Error("Error logging message attempt", zap.Error(err))
		}
	}()

	resp, err := s.relay.Send(phone, text)
	if err != nil {
		status = model.ERROR
		meta = err.Error()
		return dto.SendResult{Status: status, Detail: meta}
	}

	meta = resp.Body
	if resp.Ok() {
		status = model.SENT
	} else {
		status = model.FAILED
	}

	return dto.SendResult{Status: status, Detail: meta}
}

func (s service) Stats() (dto.Stats, error) {
	today := util.Today()

	in, err := s.messageLogDao.CountByDirectionOn(model.IN, today)
	if err != nil {
		return dto.Stats{}, err
	}

	out, err := s.messageLogDao.CountByDirectionOn(model.OUT, today)
	if err != nil {
		return dto.Stats{}, err
	}

	users, err := s.reminderDao.Count()
	if err != nil {
		return dto.Stats{}, err
	}

	return dto.Stats{In: in, Out: out, Users: users}, nil
}

func (s service) OutgoingTimeseries(period string, buckets int) (dto.Timeseries, error) {
	today := util.Today()

	layout := util.DateLayout
	if period == PERIOD_MONTH {
		layout = "2006-01"
		if buckets <= 0 {
			buckets = 12
		}
	} else if buckets <= 0 {
		buckets = 30
	}

	//oldest bucket first, newest is the current day/month
	labels := make([]string, 0, buckets)
	for i := buckets - 1; i >= 0; i-- {
		var bucket time.Time
		if period == PERIOD_MONTH {
			bucket = time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		} else {
			bucket = today.AddDate(0, 0, -i)
		}
		labels = append(labels, bucket.Format(layout))
	}

	since, err := time.Parse(layout, labels[0])
	if err != nil {
		return dto.Timeseries{}, err
	}

	logs, err := s.messageLogDao.GetAllByDirectionSince(model.OUT, since)
	if err != nil {
		return dto.Timeseries{}, err
	}

	counts := make(map[string]int)
	for _, entry := range logs {
		counts[entry.CreatedAt.Format(layout)]++
	}

	data := make([]int, len(labels))
	for i, label := range labels {
		data[i] = counts[label]
	}

	return dto.Timeseries{Labels: labels, Data: data}, nil
}

func (s service) resolveAsOf(asOf string) (time.Time, error) {
	if util.IsBlank(asOf) {
		return util.Today(), nil
	}

	asOfDate, err := util.ParseDate(asOf)
	if err != nil {
		return time.Time{}, NewInvalidPayloadError("as_of must be in YYYY-MM-DD format")
	}

	return asOfDate, nil
}
