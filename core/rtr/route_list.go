package rtr

// RouteList represents a registered route for debugging and inspection purposes.
//
// Fields:
//   - Method: HTTP method from the consts package
//   - Path: the exact path the route answers on
//   - HandlerRef: string representation of the handler (for logs)
type RouteList struct {
	Method     string
	Path       string
	HandlerRef string
}
