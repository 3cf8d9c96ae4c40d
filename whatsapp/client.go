package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

//payload accepted by the relay send endpoint
type payload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

//Response is the relay reply to a send attempt
type Response struct {
	Code int
	Body string
}

//Ok returns true when the relay accepted the message
func (r Response) Ok() bool {
	return r.Code >= 200 && r.Code <= 299
}

type Client interface {
	//Send posts the message to the relay and returns its response.
	//A non-nil error means the call did not complete at all
	Send(phone, text string) (Response, error)
}

func NewClient(url string, timeoutSec, tps int) Client {
	return &client{
		url:         url,
		httpClient:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		rateLimiter: rate.NewLimiter(rate.Limit(tps), 1),
	}
}

type client struct {
	url         string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func (c *client) Send(phone, text string) (Response, error) {
	err := c.rateLimiter.Wait(context.Background())
	if err != nil {
		return Response{}, err
	}

	body, err := json.Marshal(payload{Phone: phone, Message: text})
	if err != nil {
		return Response{}, err
	}

	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer(body))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	return Response{Code: resp.StatusCode, Body: string(respBody)}, nil
}
