package validation

import (
	"fmt"
	"strings"
)

const maxContentLength = 1000

// ValidateContent checks a comment body. Content must be non-empty
// after trimming and within the length limit.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	if len(content) > maxContentLength {
		return fmt.Errorf("content must be at most %d characters", maxContentLength)
	}
	return nil
}
