package controller

import (
	"net/http"
	"strconv"

	"github.com/dilshat/wa-reminder/log"
	"github.com/dilshat/wa-reminder/service"
	"github.com/dilshat/wa-reminder/service/dto"
	"github.com/labstack/echo/v4"
)

// AddReminder godoc
// @Summary Add reminder
// @Description Adds a new vehicle inspection reminder
// @Accept json
// @Produce json
// @Param reminder body dto.ReminderInput true "Reminder"
// @Success 200 {object} dto.Id
// @Failure 400 "error description"
// @Router /add [post]
func GetAddReminderFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reminder := new(dto.ReminderInput)
		if err := c.Bind(reminder); err != nil {
			return err
		}

		id, err := srv.AddReminder(*reminder)
		if err != nil {
			return handleError(c, err)
		}

		return c.JSON(http.StatusOK, id)
	}
}

// ListReminders godoc
// @Summary List reminders
// @Description Lists all reminders ordered by test date with derived due status
// @Produce json
// @Param as_of query string false "As-of date in YYYY-MM-DD format, defaults to today"
// @Success 200 {array} dto.ReminderView
// @Failure 400 "error description"
// @Router /list [get]
func GetListRemindersFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reminders, err := srv.ListReminders(c.QueryParam("as_of"))
		if err != nil {
			return handleError(c, err)
		}

		return c.JSON(http.StatusOK, reminders)
	}
}

// UpdateReminder godoc
// @Summary Update reminder
// @Description Replaces all fields of the reminder with the given id
// @Accept json
// @Produce json
// @Param id path int true "Reminder id"
// @Param reminder body dto.ReminderInput true "Reminder"
// @Success 200 {object} dto.Id
// @Failure 400 "error description"
// @Failure 404 "reminder not found"
// @Router /edit/{id} [put]
func GetUpdateReminderFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId(c.Param("id"))
		if err != nil {
			return err
		}

		reminder := new(dto.ReminderInput)
		if err := c.Bind(reminder); err != nil {
			return err
		}

		if err := srv.UpdateReminder(id, *reminder); err != nil {
			return handleError(c, err)
		}

		return c.JSON(http.StatusOK, dto.Id{Id: id})
	}
}

// DeleteReminder godoc
// @Summary Delete reminder
// @Description Deletes the reminder with the given id
// @Produce json
// @Param id path int true "Reminder id"
// @Success 200 {object} dto.Id
// @Failure 404 "reminder not found"
// @Router /delete/{id} [delete]
func GetDeleteReminderFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId(c.Param("id"))
		if err != nil {
			return err
		}

		if err := srv.DeleteReminder(id); err != nil {
			return handleError(c, err)
		}

		return c.JSON(http.StatusOK, dto.Id{Id: id})
	}
}

// ClearReminders godoc
// @Summary Clear reminders
// @Description Deletes all reminders and resets the id sequence
// @Produce json
// @Success 200 "all reminders removed"
// @Router /clear [delete]
func GetClearRemindersFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := srv.ClearReminders(); err != nil {
			return handleError(c, err)
		}

		return c.JSON(http.StatusOK, map[string]string{"message": "All reminders removed, ids reset to 1"})
	}
}

// RunNow godoc
// @Summary Run reminders now
// @Description Dispatches notifications for all reminders that are due or upcoming
// @Accept json
// @Produce json
// @Param body body dto.RunNowInput false "Optional as-of date"
// @Success 200 {array} dto.Action
// @Failure 400 "error description"
// @Router /run_now [post]
func GetRunNowFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		input := new(dto.RunNowInput)
		if err := c.Bind(input); err != nil {
			return err
		}

		actions, err := srv.RunNow(input.AsOf)
		if err != nil {
			return handleError(c, err)
		}

		return c.JSON(http.StatusOK, actions)
	}
}

// SendOne godoc
// @Summary Send one reminder
// @Description Dispatches the notification for a single reminder regardless of its due date
// @Produce json
// @Param id path int true "Reminder id"
// @Success 200 {object} dto.SendResult
// @Failure 404 "reminder not found"
// @Router /send_one/{id} [post]
func GetSendOneFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId(c.Param("id"))
		if err != nil {
			return err
		}

		result, err := srv.SendOne(id)
		if err != nil {
			return handleError(c, err)
		}

		return c.JSON(http.StatusOK, result)
	}
}

// Stats godoc
// @Summary Message stats
// @Description Returns today's inbound/outbound message counts and the number of reminders
// @Produce json
// @Success 200 {object} dto.Stats
// @Router /api/stats [get]
func GetStatsFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := srv.Stats()
		if err != nil {
			return handleError(c, err)
		}

		return c.JSON(http.StatusOK, stats)
	}
}

// Timeseries godoc
// @Summary Outbound message timeseries
// @Description Returns outbound message counts bucketed by day or month
// @Produce json
// @Param period query string false "day or month, defaults to day"
// @Param days query int false "Number of day buckets, defaults to 30"
// @Param months query int false "Number of month buckets, defaults to 12"
// @Success 200 {object} dto.Timeseries
// @Router /api/messages_timeseries [get]
func GetTimeseriesFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		period := c.QueryParam("period")

		bucketsParam := c.QueryParam("days")
		if period == service.PERIOD_MONTH {
			bucketsParam = c.QueryParam("months")
		}
		//service substitutes the period default when parsing fails
		buckets, _ := strconv.Atoi(bucketsParam)

		ts, err := srv.OutgoingTimeseries(period, buckets)
		if err != nil {
			return handleError(c, err)
		}

		return c.JSON(http.StatusOK, ts)
	}
}

func parseId(raw string) (uint32, error) {
	id64, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id64), nil
}

func handleError(c echo.Context, err error) error {
	switch err.(type) {
	case *service.InvalidPayloadErr:
		return c.String(http.StatusBadRequest, err.Error())
	case *service.NotFoundErr:
		return c.String(http.StatusNotFound, err.Error())
	default:
		log.Error.Println(err)
		return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
	}
}
