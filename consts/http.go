package consts

const (
	MethodGet = "GET"
)

const (
	HTTP1 = "HTTP/1.1"

	ProtocolTCP = "tcp"

	CRLF = "\r\n"

	RuneNewLine     = '\n'
	RuneQuestion    = '?'
	RuneAmpersand   = '&'
	RuneEquals      = '='
	RuneSingleSpace = ' '
)

const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderConnection    = "Connection"

	ConnectionClose = "close"
)

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusInternalServerError = 500
)

// StatusText returns the reason phrase for the status codes this server emits.
func StatusText(code int) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return ""
	}
}

// NonTextBody is the body sent when a handler produces something other than text.
const NonTextBody = "Response generated"
