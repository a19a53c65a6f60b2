package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand     = "open"
	XDGOpenCommand  = "xdg-open"
	RundllCommand   = "rundll32"
	AndroidCommand  = "am"
	URLProtocolProc = "url.dll,FileProtocolHandler"
)

// PlaceholderLink marks an entry without a live sample
const PlaceholderLink = "#"

var (
	// ErrNoLink is returned for empty or placeholder links
	ErrNoLink = errors.New("no link available")
	// ErrUnsupportedScheme is returned for anything but http and https
	ErrUnsupportedScheme = errors.New("unsupported link scheme")
)

// startCommand launches a detached process. Replaced in tests.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// ValidateLink parses link and accepts only absolute http(s) URLs
func ValidateLink(link string) (*url.URL, error) {
	link = strings.TrimSpace(link)
	if link == "" || link == PlaceholderLink {
		return nil, ErrNoLink
	}

	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("parse link: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse link: missing host in %q", link)
	}
	return u, nil
}

// OpenURL opens link in the system browser as a separate process
func OpenURL(link string) error {
	u, err := ValidateLink(link)
	if err != nil {
		return err
	}

	name, args, err := BrowserCommand(runtime.GOOS, u.String())
	if err != nil {
		return err
	}
	if err := startCommand(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", u.Redacted(), err)
	}
	return nil
}

// BrowserCommand returns the command line that opens link on goos
func BrowserCommand(goos, link string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{link}, nil
	case OSWindows:
		return RundllCommand, []string{URLProtocolProc, link}, nil
	case OSAndroid:
		return AndroidCommand, []string{"start", "-a", "android.intent.action.VIEW", "-d", link}, nil
	case OSLinux, "freebsd", "openbsd", "netbsd":
		return XDGOpenCommand, []string{link}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
