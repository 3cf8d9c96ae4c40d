package util

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	_ = os.Setenv("TEST_VAR", "TEST_VAL")
	actual := GetEnv("TEST_VAR", "OOPS")
	if actual != "TEST_VAL" {
		t.Errorf("start failed, expected %s, got %s", "TEST_VAL", actual)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	_ = os.Setenv("TEST_VAR", "123")
	actual := GetEnvAsInt("TEST_VAR", 321)
	if actual != 123 {
		t.Errorf("start failed, expected %d, got %d", 123, actual)
	}
}

func TestFileExists(t *testing.T) {
	f, err := ioutil.TempFile(os.TempDir(), "util_test")
	if err != nil {
		t.Error(err)
	}
	defer func() {
		f.Close()
	}()

	require.True(t, FileExists(f.Name()))
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank("   "))
	require.False(t, IsBlank(" test  "))
	require.False(t, IsBlank("test"))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-06-15")

	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("15/06/2024")
	require.Error(t, err)

	_, err = ParseDate("2024-06-15 10:00")
	require.Error(t, err)

	_, err = ParseDate("2024-6-15")
	require.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	from, _ := ParseDate("2024-06-15")
	to, _ := ParseDate("2024-06-18")

	require.Equal(t, 3, DaysBetween(from, to))
	require.Equal(t, -3, DaysBetween(to, from))
	require.Equal(t, 0, DaysBetween(from, from))
}
