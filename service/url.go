package service

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// buildURL appends path to root and substitutes {name} placeholders from
// params. A single leading separator is stripped; a trailing separator is
// forced unless the raw template carries a query string. Query detection
// looks at the raw template only, so a '?' introduced by substitution still
// receives the trailing separator.
func buildURL(root, path string, params Params) (string, error) {
	if path != "" {
		if path[0] == '/' {
			path = path[1:]
		}
		if path != "" && !strings.HasSuffix(path, "/") && !strings.Contains(path, "?") {
			path += "/"
		}
	}

	result := root + path

	for {
		start := strings.IndexByte(result, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(result[start:], '}')
		if end < 0 {
			return "", errors.Errorf("malformed path template %q: missing closing brace", path)
		}

		placeholder := result[start : start+end+1]
		result = strings.ReplaceAll(result, placeholder, paramValue(params, placeholder[1:len(placeholder)-1]))
	}

	return result, nil
}

func paramValue(params Params, name string) string {
	if params == nil {
		return ""
	}
	value, ok := params[name]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
