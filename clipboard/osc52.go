package clipboard

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/andareed/wrwatch/logging"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when neither the system clipboard nor OSC52 works.
var ErrUnavailable = errors.New("clipboard unavailable")

func copyOSC52(text string, out io.Writer, env func(string) string, tty bool) error {
	if !osc52Supported(env, tty) {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return ErrUnavailable
	}

	seq := osc52.New(text)
	if env("TMUX") != "" {
		seq = seq.Tmux()
	} else if strings.HasPrefix(env("TERM"), "screen") {
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(out); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported(env func(string) string, tty bool) bool {
	if term := env("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return tty
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
