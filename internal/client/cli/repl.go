package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Resend(ctx context.Context) error
	Verify(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Reset(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a until EOF or
// "exit"/"quit". Command errors are printed and the loop carries on.
//
//	Not logged in: register, resend, verify, login, reset, exit
//	Logged in:     whoami, refresh, logout, reset, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dl %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, refresh, logout, reset, exit")
			} else {
				printlnFn("Available commands: register, resend, verify, login, reset, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "resend":
			err = a.Resend(ctx)

		case "verify":
			err = a.Verify(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "refresh":
			err = a.Refresh(ctx)

		case "reset":
			err = a.Reset(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
