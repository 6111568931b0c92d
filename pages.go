package webframe

import (
	"strconv"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/webframe/consts"
)

// page is the shell shared by the error pages.
type page struct {
	Title string
	Body  element.Component
}

func (p page) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
		),
		b.Body().R(
			element.RenderComponents(b, p.Body),
		),
	)
	return nil
}

// notice is a heading, an optional message and a link home.
type notice struct {
	Heading  string
	Message  string
	HomeLink bool
}

func (n notice) Render(b *element.Builder) any {
	b.H1().T(n.Heading)
	if n.Message != "" {
		b.P().T(n.Message)
	}
	if n.HomeLink {
		b.P().R(
			b.A("href", "/").T("Back to Home"),
		)
	}
	return nil
}

func renderPage(p page) string {
	b := element.NewBuilder()
	element.RenderComponents(b, p)
	return b.String()
}

// notFoundPage is the body for a dynamic path with no route.
func notFoundPage(urlPath string) string {
	return renderPage(page{
		Title: "404 - Not Found",
		Body: notice{
			Heading:  "404 - Not Found",
			Message:  "The requested path " + urlPath + " was not found.",
			HomeLink: true,
		},
	})
}

// errorPage is the body for a handler that failed.
func errorPage(msg string) string {
	return renderPage(page{
		Title: "500 - Error",
		Body: notice{
			Heading:  "500 - Internal Server Error",
			Message:  "An error occurred: " + msg,
			HomeLink: true,
		},
	})
}

// statusPage is the body sent with a real error status, e.g. "400 Bad Request".
func statusPage(status int) string {
	title := strconv.Itoa(status) + " " + consts.StatusText(status)
	return renderPage(page{
		Title: title,
		Body:  notice{Heading: title},
	})
}
