/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/taskpanel/cmd"
	"github.com/josephgoksu/taskpanel/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
