// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package auth

import (
	"os/exec"
	"runtime"
)

// OpenBrowser opens the system browser at the given URL. Tests swap it for
// a recording implementation.
var OpenBrowser func(url string) error = openBrowser

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
