package gameplan

import "fmt"

// UpstreamError carries a non-2xx analytics response so transport layers
// can preserve the upstream status code and message.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("analytics status=%d message=%s", e.StatusCode, e.Message)
}
