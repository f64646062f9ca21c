// Command blist converts a vCard or CSV address book export into a libpurple
// buddy list (blist.xml) for the whatsapp protocol plugin.
//
//	blist [flags] [inputFile] [outputFile] [templateFile]
package main

import (
	"fmt"
	"os"

	"blist_converter/platform/apperr"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blist:", err)
		os.Exit(apperr.ExitCode(err))
	}
}
