package util

import "strconv"

// ParseId parses a numeric path parameter.
func ParseId(val string) (int64, error) {
	return strconv.ParseInt(val, 10, 64)
}

func FormatId(id int64) string {
	return strconv.FormatInt(id, 10)
}
