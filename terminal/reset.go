package terminal

import (
	"io"
)

// ANSI sequences restoring a sane terminal after an unclean exit
const (
	csiMouseOff      = "\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l"
	csiCursorShow    = "\x1b[?25h"
	csiAltScreenExit = "\x1b[?1049l"
	csiSGR0          = "\x1b[0m"
	csiAutoWrapOn    = "\x1b[?7h"
)

// EmergencyReset writes reset sequences to w and restores cooked mode
// Best-effort for crash recovery; used when the screen could not be finalized
func EmergencyReset(w io.Writer) {
	_, _ = io.WriteString(w, csiMouseOff+csiCursorShow+csiAltScreenExit+csiSGR0+csiAutoWrapOn)
	resetTerminalMode()
}
