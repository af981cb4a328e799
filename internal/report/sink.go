package report

import (
	"fmt"
	"os"
	"time"
)

// DefaultFilename returns the default report destination for a report
// generated at t. The embedded timestamp keeps successive exports from
// colliding. Callers should pass the same t used for Build so the filename
// and the header agree.
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("wrong_answers_%s.txt", t.Format("20060102_150405"))
}

// Write persists report text to path as UTF-8.
func Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
