package consts

const (
	MIMEOctetStream = "application/octet-stream"
	MIMEHTML        = "text/html"
	MIMEHTMLUTF8    = "text/html; charset=UTF-8"
	MIMECSS         = "text/css"
	MIMEJavaScript  = "application/javascript"
	MIMEPNG         = "image/png"
	MIMEJPEG        = "image/jpeg"
)

// StaticExtensions maps the file extensions served from disk to their content type.
// A request path ending in one of these is never routed to a controller.
var StaticExtensions = map[string]string{
	".html": MIMEHTML,
	".css":  MIMECSS,
	".js":   MIMEJavaScript,
	".png":  MIMEPNG,
	".jpg":  MIMEJPEG,
}

// MimeByExt returns the content type for ext (including the dot), or application/octet-stream.
func MimeByExt(ext string) string {
	if mime, ok := StaticExtensions[ext]; ok {
		return mime
	}
	return MIMEOctetStream
}
