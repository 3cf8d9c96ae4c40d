package dao

import (
	"time"

	"github.com/dilshat/wa-reminder/model"
)

type ReminderDao interface {
	//Create creates reminder record and returns its id
	Create(reminder model.Reminder) (uint32, error)
	//GetOneById returns reminder by id
	GetOneById(id uint32) (model.Reminder, error)
	//GetAll returns all reminders ordered by test date ascending
	GetAll() ([]model.Reminder, error)
	//Update replaces all mutable fields of the reminder with the given id
	Update(reminder model.Reminder) error
	//DeleteById removes reminder with the given id
	DeleteById(id uint32) error
	//Clear removes all reminders and resets the id sequence back to 1
	Clear() error
	//Count returns the number of reminder records
	Count() (int, error)
}

func NewReminderDao(db Db) ReminderDao {
	return &reminderDao{db: db}
}

type reminderDao struct {
	db Db
}

func (r reminderDao) Create(reminder model.Reminder) (uint32, error) {
	reminder.Id = 0
	reminder.CreatedAt = time.Now().UTC()
	err := r.db.Save(&reminder)
	return reminder.Id, err
}

func (r reminderDao) GetOneById(id uint32) (reminder model.Reminder, err error) {
	err = r.db.One("Id", id, &reminder)
	return
}

func (r reminderDao) GetAll() (reminders []model.Reminder, err error) {
	err = r.db.AllByIndex("TestDate", &reminders)
	return
}

func (r reminderDao) Update(reminder model.Reminder) error {
	var existing model.Reminder
	err := r.db.One("Id", reminder.Id, &existing)
	if err != nil {
		return err
	}
	//full replace, creation time is immutable
	reminder.CreatedAt = existing.CreatedAt
	return r.db.Save(&reminder)
}

func (r reminderDao) DeleteById(id uint32) error {
	var reminder model.Reminder
	err := r.db.One("Id", id, &reminder)
	if err != nil {
		return err
	}
	return r.db.DeleteStruct(&reminder)
}

func (r reminderDao) Clear() error {
	//dropping the bucket also resets the increment sequence
	err := r.db.Drop(&model.Reminder{})
	if err != nil {
		return err
	}
	return r.db.Init(&model.Reminder{})
}

func (r reminderDao) Count() (int, error) {
	return r.db.Count(&model.Reminder{})
}
