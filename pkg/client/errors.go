package client

import (
	"encoding/json"
	"fmt"
)

const nonJSONPreview = 200

func decodeAPIError(status int, data []byte) *APIError {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		preview := string(data)
		if len(preview) > nonJSONPreview {
			preview = preview[:nonJSONPreview]
		}
		return &APIError{StatusCode: status, Message: fmt.Sprintf("Non-JSON server response: %s", preview)}
	}
	if body.Error == "" {
		return &APIError{StatusCode: status, Message: "API request failed"}
	}
	return &APIError{StatusCode: status, Message: body.Error}
}
