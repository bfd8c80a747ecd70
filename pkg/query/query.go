package query

import (
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// UpperSlice is [StringSlice] with every entry upper-cased, for enum filters
// such as "type=solo,group".
func UpperSlice(val string) []string {
	res := StringSlice(val)
	for i, v := range res {
		res[i] = strings.ToUpper(v)
	}
	return res
}
