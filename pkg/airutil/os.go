package airutil

import "github.com/drone/envsubst"

// ExpandEnv substitutes environment variables in s. If
// the expression is invalid, s is returned unchanged.
func ExpandEnv(s string) string {
	val, err := envsubst.EvalEnv(s)
	if err != nil {
		return s
	}
	return val
}

// ExpandPaths expands each path, dropping any that
// become empty.
func ExpandPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p = ExpandEnv(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
