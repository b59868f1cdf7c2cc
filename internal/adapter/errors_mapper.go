package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrVerseNotFound, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUpstream, resp.StatusCode(), body)
	}
}
