package ioc

// Bind builds the argument list for h from the parsed query parameters.
// Missing values are not an error: the argument is simply absent and the handler decides.
func Bind(h *Handler, query map[string]string) Args {
	args := make(Args, len(h.Params))

	for i, p := range h.Params {
		if p.Kind != ParamQuery {
			continue
		}

		if v := query[p.Name]; v != "" {
			args[i] = Arg{Value: v, Valid: true}
		} else if p.Default != "" {
			args[i] = Arg{Value: p.Default, Valid: true}
		}
	}

	return args
}
