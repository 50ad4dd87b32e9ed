package utils

// RemoveEmptyStrings drops "" entries, e.g. from a split CORS_ORIGINS list
// with trailing commas. The result is nil when nothing is left.
func RemoveEmptyStrings(items []string) []string {
	var out []string
	for _, s := range items {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
