package util

// Contains reports whether str equals any element of the list.
func Contains(str string, list ...string) bool {
	for _, s := range list {
		if s == str {
			return true
		}
	}
	return false
}
