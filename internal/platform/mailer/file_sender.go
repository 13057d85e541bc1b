package mailer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileSender appends every message to a local archive file.
type FileSender struct {
	filePath string
}

// NewFileSender creates the archive directory if needed.
func NewFileSender(filePath string) (*FileSender, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("email archive file path cannot be empty")
	}
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory for email archive '%s': %w", dir, err)
	}
	return &FileSender{filePath: filePath}, nil
}

func (s *FileSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	file, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open email archive: %w", err)
	}
	defer file.Close()

	entry := fmt.Sprintf("--- Email archived at %s (To: %v, Subject: %s) ---\n", time.Now().Format(time.RFC3339Nano), to, subject)
	if _, err := file.WriteString(entry); err != nil {
		return fmt.Errorf("failed to write email archive: %w", err)
	}
	if _, err := file.Write(rawMessage); err != nil {
		return fmt.Errorf("failed to write email archive: %w", err)
	}
	if _, err := file.WriteString("\n--- End archived email ---\n\n"); err != nil {
		return fmt.Errorf("failed to write email archive: %w", err)
	}
	return nil
}
