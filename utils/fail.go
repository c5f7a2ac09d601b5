package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/ttacon/chalk"
)

// Check logs msg in red and panics with err when err is not nil.
func Check(err error, msg string) {
	if err != nil {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Panicln(err)
	}
}

// Fail prints err in red after msg and exits with status 1.
func Fail(err error, msg string) {
	fmt.Print(chalk.Red)
	fmt.Printf("%s: %v", msg, err)
	fmt.Println(chalk.Reset)
	os.Exit(1)
}

// Warn logs msg and err in yellow and carries on.
func Warn(err error, msg string) {
	if err != nil {
		fmt.Print(chalk.Yellow)
		log.Print(msg+": ", err, chalk.Reset)
	}
}

// Debug returns a logger that only prints when enabled.
func Debug(enabled bool) func(format string, a ...interface{}) {
	if !enabled {
		return func(string, ...interface{}) {}
	}
	return func(format string, a ...interface{}) {
		log.Printf(chalk.Cyan.Color("debug ")+format, a...)
	}
}
