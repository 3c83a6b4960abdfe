package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/eabolaji/worldnews/internal/config"
)

// Launcher opens article URLs in the system browser. The opened page
// runs in a separate process and gets no handle back into this one.
type Launcher struct {
	opener string
}

func NewLauncher(cfg *config.Config) *Launcher {
	opener := cfg.Browser.Opener
	if opener == "" {
		opener = findCommand("xdg-open", "open", "start")
	}
	return &Launcher{opener: opener}
}

// Open validates rawURL and hands it to the platform opener.
func (l *Launcher) Open(rawURL string) error {
	if err := ValidateArticleURL(rawURL); err != nil {
		return err
	}
	if l.opener == "" {
		return fmt.Errorf("no browser opener available")
	}

	cmd := exec.Command(l.opener, rawURL)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", l.opener, err)
	}

	// Reap the opener in the background so it never zombies.
	go func() { _ = cmd.Wait() }()

	return nil
}

// ValidateArticleURL enforces the usable-link rule: non-empty, not the
// literal "null", well-formed, http or https, and a real hostname.
func ValidateArticleURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)

	if rawURL == "" {
		return fmt.Errorf("URL cannot be empty")
	}
	if rawURL == "null" {
		return fmt.Errorf("article has no URL")
	}
	if len(rawURL) > 2048 {
		return fmt.Errorf("URL too long (max 2048 characters)")
	}
	if strings.ContainsAny(rawURL, "<>\"'`") {
		return fmt.Errorf("URL contains invalid characters")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must use http or https protocol")
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL must have a valid hostname")
	}

	return nil
}

// findCommand returns the first command available on PATH.
func findCommand(commands ...string) string {
	for _, cmd := range commands {
		if _, err := exec.LookPath(cmd); err == nil {
			return cmd
		}
	}
	return ""
}
