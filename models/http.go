package models

// DecodeResponse is the body returned by the decode endpoint.
type DecodeResponse struct {
	Player    PlayerRecord `json:"player"`
	ToolStats ToolStats    `json:"tool_stats"`
	PlayTime  string       `json:"play_time"`
}

// ErrorResponse is the body written for a failed request. Code is the decode
// error kind (see [ErrorKind]) or a generic status name.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
