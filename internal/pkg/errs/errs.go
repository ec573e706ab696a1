package errs

import (
	"fmt"
	"strings"
)

// sanitize renders a value for inclusion in an error message, collapsing
// line breaks so a single error always occupies a single log line.
func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
