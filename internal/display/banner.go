package display

import (
	"fmt"
	"os"

	"github.com/backmassage/mediascope/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are
// enabled. Only used outside the interactive UI (check mode).
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` __  __          _ _
|  \/  | ___  __| (_) __ _ ___  ___ ___  _ __   ___
| |\/| |/ _ \/ _`+"`"+` | |/ _`+"`"+` / __|/ __/ _ \| '_ \ / _ \
| |  | |  __/ (_| | | (_| \__ \ (_| (_) | |_) |  __/
|_|  |_|\___|\__,_|_|\__,_|___/\___\___/| .__/ \___|
                                        |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
