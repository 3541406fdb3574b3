package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Two classification key formats are accepted:
//
//	new:    "{path}-{tier}-{consequence}"          tier in {beginner, epic}
//	legacy: "{path}-{intensity}-{tracking}-{consequence}"  numeric intensity
//
// Both resolve to a (path, intensity) pair used to match challenge ids.
func parseClassKey(key string) (path string, intensity int, err error) {
	if strings.Contains(key, "-epic-") || strings.Contains(key, "-beginner-") {
		parts := strings.Split(key, "-")
		if len(parts) < 2 {
			return "", 0, fmt.Errorf("malformed class key %q", key)
		}
		intensity = 2
		if parts[1] == "epic" {
			intensity = 4
		}
		return parts[0], intensity, nil
	}

	parts := strings.Split(key, "-")
	if len(parts) < 2 {
		return "", 0, fmt.Errorf("malformed class key %q", key)
	}
	n, parseErr := strconv.Atoi(parts[1])
	if parseErr != nil {
		n = 2
	}
	return parts[0], n, nil
}
