package main

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// newClient builds a resty client pointed at the service. The bearer token is
// attached when present so public and protected calls share one path.
func newClient() *resty.Client {
	c := resty.New().
		SetBaseURL(apiFlag).
		SetHeader("Content-Type", "application/json")
	if tokenFlag != "" {
		c.SetAuthToken(tokenFlag)
	}
	return c
}

// checkStatus turns non-2xx responses into errors carrying the body.
func checkStatus(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

func doGet(path string) ([]byte, error) {
	return checkStatus(newClient().R().Get(path))
}

func doPostJSON(path string, payload interface{}) ([]byte, error) {
	return checkStatus(newClient().R().SetBody(payload).Post(path))
}

func doPutJSON(path string, payload interface{}) ([]byte, error) {
	return checkStatus(newClient().R().SetBody(payload).Put(path))
}

func doDelete(path string) ([]byte, error) {
	return checkStatus(newClient().R().Delete(path))
}
