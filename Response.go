package webframe

import (
	"bytes"
	"io"
	"strconv"

	"github.com/rohanthewiz/webframe/consts"
)

// Response is the interface for an HTTP response.
type Response interface {
	Body() []byte
	Header(string) string
	Status() int
}

// response represents one HTTP response. Every response closes the connection.
type response struct {
	body    []byte
	headers []Header
	status  uint16
}

func newResponse(status int, contentType string, body []byte) *response {
	res := &response{status: uint16(status), body: body}
	res.SetHeader(consts.HeaderContentType, contentType)
	res.SetHeader(consts.HeaderContentLength, strconv.Itoa(len(body)))
	res.SetHeader(consts.HeaderConnection, consts.ConnectionClose)
	return res
}

// Body returns the response body.
func (res *response) Body() []byte {
	return res.body
}

// Header returns the header value for the given key.
func (res *response) Header(key string) string {
	for _, header := range res.headers {
		if header.Key == key {
			return header.Value
		}
	}

	return ""
}

// SetHeader sets the header value for the given key.
func (res *response) SetHeader(key string, value string) {
	for i, header := range res.headers {
		if header.Key == key {
			res.headers[i].Value = value
			return
		}
	}

	res.headers = append(res.headers, Header{Key: key, Value: value})
}

// Status returns the HTTP status code.
func (res *response) Status() int {
	return int(res.status)
}

// WriteTo frames the response as HTTP/1.1 and writes it in one call.
func (res *response) WriteTo(w io.Writer) (int64, error) {
	tmp := bytes.Buffer{}
	tmp.Grow(128 + len(res.body))

	tmp.WriteString(consts.HTTP1)
	tmp.WriteByte(consts.RuneSingleSpace)
	tmp.WriteString(strconv.Itoa(int(res.status)))
	tmp.WriteByte(consts.RuneSingleSpace)
	tmp.WriteString(consts.StatusText(int(res.status)))
	tmp.WriteString(consts.CRLF)

	for _, header := range res.headers {
		tmp.WriteString(header.Key)
		tmp.WriteString(": ")
		tmp.WriteString(header.Value)
		tmp.WriteString(consts.CRLF)
	}

	tmp.WriteString(consts.CRLF)
	tmp.Write(res.body)

	return tmp.WriteTo(w)
}
