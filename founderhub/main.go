// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/founderhub/founderhub-cli/founderhub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
