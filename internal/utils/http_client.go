package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent by every HTTPClient.
const UserAgent = "silkread"

// HTTPClient embeds *resty.Client so the adapter can use the full resty API
// while construction stays in one place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to address. A bare "host:port" is
// treated as plain HTTP. A zero timeout leaves resty's default.
//
//	client := utils.NewHTTPClient("localhost:8080", 30*time.Second)
//	resp, err := client.R().SetBody(raw).Post("/api/save/decode")
func NewHTTPClient(address string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(BaseURL(address)).
		SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// BaseURL prefixes address with http:// unless it already names a scheme.
func BaseURL(address string) string {
	if address == "" || strings.Contains(address, "://") {
		return address
	}
	return "http://" + address
}
