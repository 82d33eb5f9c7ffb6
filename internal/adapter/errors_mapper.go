package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusNotFound:              ErrNotFound,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusServiceUnavailable:    ErrUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if json.Unmarshal(resp.Body(), &errResp) == nil && errResp.Message != "" {
		body = errResp.Message
	}
	if body == "" {
		body = http.StatusText(status)
	}

	if kind := models.ErrorFromKind(errResp.Code); kind != nil {
		return &RemoteError{Kind: kind, Status: status, Message: body}
	}
	if kind, ok := statusErrors[status]; ok {
		return &RemoteError{Kind: kind, Status: status, Message: body}
	}

	return fmt.Errorf("http %d: %s", status, body)
}
