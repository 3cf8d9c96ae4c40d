package dao

import (
	"time"

	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/wa-reminder/model"
)

type MessageLogDao interface {
	//Create appends a log record of a message attempt and returns its id
	Create(direction, phone, text, status, meta string) (uint32, error)
	//GetAll returns all log records
	GetAll() ([]model.MessageLog, error)
	//CountByDirectionOn returns the number of log records with the given direction created on the given day
	CountByDirectionOn(direction string, day time.Time) (int, error)
	//GetAllByDirectionSince returns log records with the given direction created at or after {since}
	GetAllByDirectionSince(direction string, since time.Time) ([]model.MessageLog, error)
}

func NewMessageLogDao(db Db) MessageLogDao {
	return &messageLogDao{db: db}
}

type messageLogDao struct {
	db Db
}

func (d messageLogDao) Create(direction, phone, text, status, meta string) (uint32, error) {
	entry := &model.MessageLog{
		Direction: direction,
		Phone:     phone,
		Text:      text,
		Status:    status,
		Meta:      meta,
		CreatedAt: time.Now().UTC(),
	}
	err := d.db.Save(entry)
	return entry.Id, err
}

func (d messageLogDao) GetAll() (logs []model.MessageLog, err error) {
	err = d.db.All(&logs)
	return
}

func (d messageLogDao) CountByDirectionOn(direction string, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)
	count, err := d.db.Select(q.Eq("Direction", direction), q.Gte("CreatedAt", start), q.Lt("CreatedAt", end)).Count(&model.MessageLog{})
	if err != nil && err.Error() != "not found" {
		return 0, err
	}
	return count, nil
}

func (d messageLogDao) GetAllByDirectionSince(direction string, since time.Time) ([]model.MessageLog, error) {
	var logs []model.MessageLog
	err := d.db.Select(q.Eq("Direction", direction), q.Gte("CreatedAt", since)).OrderBy("CreatedAt").Find(&logs)
	if err != nil && err.Error() != "not found" {
		return nil, err
	}
	return logs, nil
}
