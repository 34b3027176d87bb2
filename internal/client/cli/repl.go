package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for prompt output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can
// provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	ShowCart(ctx context.Context) error
	Add(ctx context.Context, productID string, qty int) error
	Update(ctx context.Context, productID string, qty int) error
	Total(ctx context.Context) error
}

// runREPL starts the storefront's read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	Anonymous:
//	  - help                     — show available commands
//	  - register                 — create an account
//	  - login                    — authenticate
//	  - l | list                 — show the catalog
//	  - search <text>            — search the catalog (debounced)
//	  - exit | quit              — leave the program
//
//	Logged in, additionally:
//	  - cart                     — show the cart with line totals
//	  - add <productId> [qty]    — add a product to the cart
//	  - update <productId> <qty> — set a line item's quantity
//	  - total                    — show the cart total
//	  - logout                   — end the session
//
// Errors returned by command handlers are ignored here; handlers print
// their own advisories. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qkart %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search <text>, cart, add <productId> [qty], update <productId> <qty>, total, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (l)ist, search <text>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			if len(args) < 1 {
				printlnFn("Usage: add <productId> [qty]")
				continue
			}
			qty := 1
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					printlnFn("Usage: add <productId> [qty]")
					continue
				}
				qty = n
			}
			_ = a.Add(ctx, args[0], qty)

		case "update":
			if len(args) != 2 {
				printlnFn("Usage: update <productId> <qty>")
				continue
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				printlnFn("Usage: update <productId> <qty>")
				continue
			}
			_ = a.Update(ctx, args[0], qty)

		case "total":
			_ = a.Total(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
