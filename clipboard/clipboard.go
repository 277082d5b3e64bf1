// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence for remote and headless terminals.
package clipboard

import (
	"os"

	"github.com/andareed/wrwatch/logging"
	"github.com/atotto/clipboard"
)

// Method says how text reached the clipboard.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

// Copy tries the native clipboard first, then OSC52 on stdout.
func Copy(text string) (Method, error) {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return MethodSystem, nil
		}
		logging.Debugf("Clipboard: system clipboard failed: %v", err)
	}
	if err := copyOSC52(text, os.Stdout, os.Getenv, isTTY(os.Stdout)); err != nil {
		return "", err
	}
	return MethodOSC52, nil
}
