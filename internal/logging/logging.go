// Package logging configures the structured logger shared by the commands.
package logging

import (
	"io"
	"math"
	"os"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"

	"contact-mapper/internal/common"
)

const (
	EnvLogLevel     = "CONTACTMAP_LOG_LEVEL"
	EnvLogTimestamp = "CONTACTMAP_LOG_TIMESTAMP"
)

// Disabled is above every level charmlog emits.
const Disabled = charmlog.Level(math.MaxInt32)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure installs the default logger for profile. Only the first call has
// an effect.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		charmlog.SetDefault(New(os.Stderr, profile))
	})
}

// New returns a logger writing to w, set up for profile and the environment.
func New(w io.Writer, profile Profile) *charmlog.Logger {
	opts := defaultOptions(profile)
	applyEnvOverrides(&opts)

	return charmlog.NewWithOptions(w, opts)
}

func defaultOptions(profile Profile) charmlog.Options {
	switch profile {
	case ProfileTest:
		return charmlog.Options{Level: charmlog.DebugLevel}
	default:
		return charmlog.Options{Level: charmlog.InfoLevel, ReportTimestamp: true}
	}
}

func applyEnvOverrides(opts *charmlog.Options) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		opts.Level = lvl
	}
	if v, ok := common.ParseBool(os.Getenv(EnvLogTimestamp)); ok {
		opts.ReportTimestamp = v
	}
}

// ParseLevel parses a level name. ok is false for an empty or unknown name.
func ParseLevel(raw string) (charmlog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "trace":
		return charmlog.DebugLevel, true
	case "info":
		return charmlog.InfoLevel, true
	case "warn", "warning":
		return charmlog.WarnLevel, true
	case "error":
		return charmlog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return Disabled, true
	default:
		return charmlog.InfoLevel, false
	}
}
