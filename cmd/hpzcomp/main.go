// SPDX-License-Identifier: MIT
// Source: ianlewis-go-dictzip/cmd/dictzip (cli.App.Run entry point shape)

package main

import "os"

func main() {
	app := newApp()
	_ = app.Run(os.Args)
}
