package domain

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// The posting API wraps the platform's response: {"success": true, "data": {"data": {"id": "..."}}}
const postIDPath = "data.data.id"

// ExtractPostID probes the success body for the nested post identifier. Returns false if there's none.
func ExtractPostID(body []byte) (string, bool) {
	id := gjson.GetBytes(body, postIDPath)
	if id.Type != gjson.String && id.Type != gjson.Number {
		return "", false
	}
	if id.String() == "" {
		return "", false
	}
	return id.String(), true
}

func StatusURL(format, postID string) string {
	return fmt.Sprintf(format, postID)
}
