package webframe

import (
	"path"
	"strings"

	"github.com/rohanthewiz/webframe/consts"
)

// splitTarget splits a request target on the first '?' into path and query.
// Though we could have used the standard URL package we wanted to maintain fine control;
// in particular nothing is decoded or normalized.
func splitTarget(target string) (urlPath string, query string) {
	queryPos := strings.IndexByte(target, consts.RuneQuestion)
	if queryPos == -1 {
		return target, ""
	}
	return target[:queryPos], target[queryPos+1:]
}

// parseQuery parses key=value pairs separated by '&'.
// Pairs without '=' or with an empty key are skipped, the last duplicate key wins
// and values are kept exactly as received (no percent-decoding).
func parseQuery(query string) map[string]string {
	params := make(map[string]string)

	if strings.TrimSpace(query) == "" {
		return params
	}

	for len(query) > 0 {
		var pair string
		if amp := strings.IndexByte(query, consts.RuneAmpersand); amp >= 0 {
			pair, query = query[:amp], query[amp+1:]
		} else {
			pair, query = query, ""
		}

		eq := strings.IndexByte(pair, consts.RuneEquals)
		if eq <= 0 {
			continue
		}
		params[pair[:eq]] = pair[eq+1:]
	}

	return params
}

// isStaticAsset reports whether the path names a file with a known static extension.
// Only the path part of the target is considered.
func isStaticAsset(target string) bool {
	urlPath, _ := splitTarget(target)
	_, ok := consts.StaticExtensions[path.Ext(urlPath)]
	return ok
}
