package relay

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// decodeResponse tolerates non-JSON bodies; a success flag only counts when
// the service actually said so.
func decodeResponse(resp *http.Response) relayResponse {
	var payload relayResponse
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return payload
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		payload.Message = strings.TrimSpace(string(raw))
		if len(payload.Message) > 256 {
			payload.Message = payload.Message[:256]
		}
	}
	return payload
}
