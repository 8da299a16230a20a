package yahoo

import (
	"fmt"
)

// maxBodyExcerpt はHTTPErrorに残すレスポンスボディの文字数です。
const maxBodyExcerpt = 100

// HTTPError はchart APIが成功以外のステータスを返した場合のエラーです。
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, excerpt(e.Body, maxBodyExcerpt))
}

// UpstreamError はAPIがchart.errorで報告したエラーです。
type UpstreamError struct {
	Code        string
	Description string
}

func (e *UpstreamError) Error() string {
	return e.Description
}

// excerpt はsの先頭n文字（rune単位）を返します。
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
