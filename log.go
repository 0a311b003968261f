package antsy

import "net/url"

const LogMaskVal = "xxxxxx"

// Mask replaces every value stored under key with [LogMaskVal],
// squashing multiple values into one.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}
