package controller

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"testing"

	"github.com/dilshat/wa-reminder/service"
	"github.com/dilshat/wa-reminder/service/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	OK200        bool
	stringCalled bool
	lastCode     int
)

func TestGetAddReminderFunc(t *testing.T) {
	OK200 = false
	f := GetAddReminderFunc(mockService{})

	err := f(mockContext{})

	require.NoError(t, err)
	require.True(t, OK200)

	bindError := errors.New("Bind error")

	err = f(mockContext{bindError: bindError})

	require.Equal(t, bindError, err)

	stringCalled = false
	f = GetAddReminderFunc(mockService{err: service.NewInvalidPayloadError("blablabla")})

	_ = f(mockContext{})

	require.True(t, stringCalled)
	require.Equal(t, http.StatusBadRequest, lastCode)

	stringCalled = false
	f = GetAddReminderFunc(mockService{err: errors.New("blablabla")})

	_ = f(mockContext{})

	require.True(t, stringCalled)
	require.Equal(t, http.StatusInternalServerError, lastCode)
}

func TestGetListRemindersFunc(t *testing.T) {
	OK200 = false
	f := GetListRemindersFunc(mockService{})

	err := f(mockContext{queryParam: "2024-06-15"})

	require.NoError(t, err)
	require.True(t, OK200)

	stringCalled = false
	f = GetListRemindersFunc(mockService{err: service.NewInvalidPayloadError("bad as_of")})

	_ = f(mockContext{queryParam: "15/06/2024"})

	require.True(t, stringCalled)
	require.Equal(t, http.StatusBadRequest, lastCode)
}

func TestGetUpdateReminderFunc(t *testing.T) {
	OK200 = false
	f := GetUpdateReminderFunc(mockService{})

	err := f(mockContext{param: "123"})

	require.NoError(t, err)
	require.True(t, OK200)

	err = f(mockContext{param: ""})

	require.Error(t, err)

	stringCalled = false
	f = GetUpdateReminderFunc(mockService{err: service.NewNotFoundError("not found")})

	_ = f(mockContext{param: "123"})

	require.True(t, stringCalled)
	require.Equal(t, http.StatusNotFound, lastCode)
}

func TestGetDeleteReminderFunc(t *testing.T) {
	OK200 = false
	f := GetDeleteReminderFunc(mockService{})

	err := f(mockContext{param: "123"})

	require.NoError(t, err)
	require.True(t, OK200)

	err = f(mockContext{param: "abc"})

	require.Error(t, err)

	stringCalled = false
	f = GetDeleteReminderFunc(mockService{err: service.NewNotFoundError("not found")})

	_ = f(mockContext{param: "123"})

	require.True(t, stringCalled)
	require.Equal(t, http.StatusNotFound, lastCode)
}

func TestGetClearRemindersFunc(t *testing.T) {
	OK200 = false
	f := GetClearRemindersFunc(mockService{})

	err := f(mockContext{})

	require.NoError(t, err)
	require.True(t, OK200)

	stringCalled = false
	f = GetClearRemindersFunc(mockService{err: errors.New("blablabla")})

	_ = f(mockContext{})

	require.True(t, stringCalled)
	require.Equal(t, http.StatusInternalServerError, lastCode)
}

func TestGetRunNowFunc(t *testing.T) {
	OK200 = false
	f := GetRunNowFunc(mockService{})

	err := f(mockContext{})

	require.NoError(t, err)
	require.True(t, OK200)

	bindError := errors.New("Bind error")

	err = f(mockContext{bindError: bindError})

	require.Equal(t, bindError, err)

	stringCalled = false
	f = GetRunNowFunc(mockService{err: service.NewInvalidPayloadError("bad as_of")})

	_ = f(mockContext{})

	require.True(t, stringCalled)
	require.Equal(t, http.StatusBadRequest, lastCode)
}

func TestGetSendOneFunc(t *testing.T) {
	OK200 = false
	f := GetSendOneFunc(mockService{})

	err := f(mockContext{param: "123"})

	require.NoError(t, err)
	require.True(t, OK200)

	err = f(mockContext{param: ""})

	require.Error(t, err)

	stringCalled = false
	f = GetSendOneFunc(mockService{err: service.NewNotFoundError("not found")})

	_ = f(mockContext{param: "123"})

	require.True(t, stringCalled)
	require.Equal(t, http.StatusNotFound, lastCode)
}

func TestGetStatsFunc(t *testing.T) {
	OK200 = false
	f := GetStatsFunc(mockService{})

	err := f(mockContext{})

	require.NoError(t, err)
	require.True(t, OK200)
}

func TestGetTimeseriesFunc(t *testing.T) {
	OK200 = false
	f := GetTimeseriesFunc(mockService{})

	err := f(mockContext{queryParam: "day"})

	require.NoError(t, err)
	require.True(t, OK200)

	stringCalled = false
	f = GetTimeseriesFunc(mockService{err: errors.New("blablabla")})

	_ = f(mockContext{})

	require.True(t, stringCalled)
	require.Equal(t, http.StatusInternalServerError, lastCode)
}

//-----------mocks--------
type mockContext struct {
	bindError  error
	param      string
	queryParam string
}

type mockService struct {
	err error
}

func (m mockService) AddReminder(reminder dto.ReminderInput) (dto.Id, error) {
	return dto.Id{Id: 1}, m.err
}

func (m mockService) ListReminders(asOf string) ([]dto.ReminderView, error) {
	return []dto.ReminderView{}, m.err
}

func (m mockService) UpdateReminder(id uint32, reminder dto.ReminderInput) error {
	return m.err
}

func (m mockService) DeleteReminder(id uint32) error {
	return m.err
}

func (m mockService) ClearReminders() error {
	return m.err
}

func (m mockService) RunNow(asOf string) ([]dto.Action, error) {
	return []dto.Action{}, m.err
}

func (m mockService) SendOne(id uint32) (dto.SendResult, error) {
	return dto.SendResult{}, m.err
}

func (m mockService) Stats() (dto.Stats, error) {
	return dto.Stats{}, m.err
}

func (m mockService) OutgoingTimeseries(period string, buckets int) (dto.Timeseries, error) {
	return dto.Timeseries{}, m.err
}

func (m mockContext) Request() *http.Request {
	panic("implement me")
}

func (m mockContext) SetRequest(r *http.Request) {
	panic("implement me")
}

func (m mockContext) SetResponse(r *echo.Response) {
	panic("implement me")
}

func (m mockContext) Response() *echo.Response {
	panic("implement me")
}

func (m mockContext) IsTLS() bool {
	panic("implement me")
}

func (m mockContext) IsWebSocket() bool {
	panic("implement me")
}

func (m mockContext) Scheme() string {
	panic("implement me")
}

func (m mockContext) RealIP() string {
	panic("implement me")
}

func (m mockContext) Path() string {
	panic("implement me")
}

func (m mockContext) SetPath(p string) {
	panic("implement me")
}

func (m mockContext) Param(name string) string {
	return m.param
}

func (m mockContext) ParamNames() []string {
	panic("implement me")
}

func (m mockContext) SetParamNames(names ...string) {
	panic("implement me")
}

func (m mockContext) ParamValues() []string {
	panic("implement me")
}

func (m mockContext) SetParamValues(values ...string) {
	panic("implement me")
}

func (m mockContext) QueryParam(name string) string {
	return m.queryParam
}

func (m mockContext) QueryParams() url.Values {
	panic("implement me")
}

func (m mockContext) QueryString() string {
	panic("implement me")
}

func (m mockContext) FormValue(name string) string {
	panic("implement me")
}

func (m mockContext) FormParams() (url.Values, error) {
	panic("implement me")
}

func (m mockContext) FormFile(name string) (*multipart.FileHeader, error) {
	panic("implement me")
}

func (m mockContext) MultipartForm() (*multipart.Form, error) {
	panic("implement me")
}

func (m mockContext) Cookie(name string) (*http.Cookie, error) {
	panic("implement me")
}

func (m mockContext) SetCookie(cookie *http.Cookie) {
	panic("implement me")
}

func (m mockContext) Cookies() []*http.Cookie {
	panic("implement me")
}

func (m mockContext) Get(key string) interface{} {
	panic("implement me")
}

func (m mockContext) Set(key string, val interface{}) {
	panic("implement me")
}

func (m mockContext) Bind(i interface{}) error {
	return m.bindError
}

func (m mockContext) Validate(i interface{}) error {
	panic("implement me")
}

func (m mockContext) Render(code int, name string, data interface{}) error {
	panic("implement me")
}

func (m mockContext) HTML(code int, html string) error {
	panic("implement me")
}

func (m mockContext) HTMLBlob(code int, b []byte) error {
	panic("implement me")
}

func (m mockContext) String(code int, s string) error {
	stringCalled = true
	lastCode = code
	return nil
}

func (m mockContext) JSON(code int, i interface{}) error {
	OK200 = true
	return nil
}

func (m mockContext) JSONPretty(code int, i interface{}, indent string) error {
	panic("implement me")
}

func (m mockContext) JSONBlob(code int, b []byte) error {
	panic("implement me")
}

func (m mockContext) JSONP(code int, callback string, i interface{}) error {
	panic("implement me")
}

func (m mockContext) JSONPBlob(code int, callback string, b []byte) error {
	panic("implement me")
}

func (m mockContext) XML(code int, i interface{}) error {
	panic("implement me")
}

func (m mockContext) XMLPretty(code int, i interface{}, indent string) error {
	panic("implement me")
}

func (m mockContext) XMLBlob(code int, b []byte) error {
	panic("implement me")
}

func (m mockContext) Blob(code int, contentType string, b []byte) error {
	panic("implement me")
}

func (m mockContext) Stream(code int, contentType string, r io.Reader) error {
	panic("implement me")
}

func (m mockContext) File(file string) error {
	panic("implement me")
}

func (m mockContext) Attachment(file string, name string) error {
	panic("implement me")
}

func (m mockContext) Inline(file string, name string) error {
	panic("implement me")
}

func (m mockContext) NoContent(code int) error {
	panic("implement me")
}

func (m mockContext) Redirect(code int, url string) error {
	panic("implement me")
}

func (m mockContext) Error(err error) {
	panic("implement me")
}

func (m mockContext) Handler() echo.HandlerFunc {
	panic("implement me")
}

func (m mockContext) SetHandler(h echo.HandlerFunc) {
	panic("implement me")
}

func (m mockContext) Logger() echo.Logger {
	panic("implement me")
}

func (m mockContext) Echo() *echo.Echo {
	panic("implement me")
}

func (m mockContext) Reset(r *http.Request, w http.ResponseWriter) {
	panic("implement me")
}
