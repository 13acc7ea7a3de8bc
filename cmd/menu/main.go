// Command menu prints the menus of your cafeteria in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/ka2n/menu/cli"
	"github.com/ka2n/menu/log"
	"github.com/morikuni/failure/v2"
)

func main() {
	if err := cli.Run(); err != nil {
		var userMessage string
		if fmsg := failure.MessageOf(err); fmsg != "" {
			userMessage = fmsg.String()
		} else {
			userMessage = err.Error()
		}
		log.Debug("Command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", userMessage)
		os.Exit(1)
	}
}
