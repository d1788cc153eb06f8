package tracker

import (
	"encoding/base64"
	"fmt"
	"net/http"
)

// EncodePhoto turns raw image bytes into a data URI suitable for
// embedding in the store. The content type is sniffed from the bytes.
func EncodePhoto(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	mime := http.DetectContentType(raw)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(raw))
}
