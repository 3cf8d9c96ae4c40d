package util

import (
	"os"
	"strconv"
	"strings"
	"time"
)

//DateLayout is the only accepted format of calendar dates
const DateLayout = "2006-01-02"

func FileExists(name string) bool {
	_, err := os.Stat(name)

	if os.IsNotExist(err) {
		return false
	}

	//sometimes there can be permission or other errors
	//here we use a simple logic that if file exists and we can use it then true otherwise false
	return err == nil
}

func GetEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func GetEnvAsInt(name string, defaultVal int) int {
	valueStr := GetEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}

	return defaultVal
}

func IsBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

//ParseDate parses a date in strict YYYY-MM-DD format.
//Values with a time component or a divergent format are rejected
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

//Today returns the current UTC date at midnight
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

//DaysBetween returns the number of whole days from one midnight date to another, negative when {to} is in the past
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
