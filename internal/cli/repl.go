package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Users(ctx context.Context, query string) error
	Whois(ctx context.Context, login string) error
	Stage(ctx context.Context, login string) error
	Unstage(login string) error
	Staged() error
	SetNote(text string) error
	Select(path string) error
	Send(ctx context.Context) error
	History(ctx context.Context) error
	Show(n int) error
	Paste(ctx context.Context, n int) error
	Refresh(ctx context.Context) error
}

const helpText = `Available commands:
  users [text]     list users, optionally filtered by name
  whois <login>    show a user's details
  stage <login>    add a recipient
  unstage <login>  remove a recipient
  staged           show recipients and note
  note [text]      set the note (no text clears it)
  select <file>    choose the script to share
  send             share the selection with the staged recipients
  history          list clipboards sent to you, newest first
  show <n>         show the note of history row n
  p | paste <n>    paste history row n
  refresh          reload the user directory
  exit | quit      leave the program`

// runREPL starts a simple read–eval–print loop for the ShareNodes CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands and missing
// arguments are reported back to the user, as are errors returned by
// handlers. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// The prompt comes from promptFn; an empty prompt is not printed, which keeps
// piped output clean.
func runREPL(ctx context.Context, a execIface, promptFn func() string, scanner *bufio.Scanner) {
	for {
		if p := promptFn(); p != "" {
			printlnFn(p)
		}
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "users", "u":
			report(a.Users(ctx, rest))

		case "whois":
			if len(args) != 1 {
				printlnFn("Usage: whois <login>")
				continue
			}
			report(a.Whois(ctx, args[0]))

		case "stage":
			if len(args) == 0 {
				printlnFn("Usage: stage <login> [login...]")
				continue
			}
			for _, login := range args {
				report(a.Stage(ctx, login))
			}

		case "unstage":
			if len(args) == 0 {
				printlnFn("Usage: unstage <login> [login...]")
				continue
			}
			for _, login := range args {
				report(a.Unstage(login))
			}

		case "staged":
			report(a.Staged())

		case "note":
			report(a.SetNote(rest))

		case "select":
			if rest == "" {
				printlnFn("Usage: select <file>")
				continue
			}
			report(a.Select(rest))

		case "send":
			report(a.Send(ctx))

		case "history", "h":
			report(a.History(ctx))

		case "show":
			n, ok := rowArg(args, "show")
			if !ok {
				continue
			}
			report(a.Show(n))

		case "p", "paste":
			n, ok := rowArg(args, "paste")
			if !ok {
				continue
			}
			report(a.Paste(ctx, n))

		case "refresh":
			report(a.Refresh(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func rowArg(args []string, cmd string) (int, bool) {
	if len(args) != 1 {
		printlnFn(fmt.Sprintf("Usage: %s <n>", cmd))
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		printlnFn(fmt.Sprintf("Usage: %s <n>, n is a row number from history", cmd))
		return 0, false
	}
	return n, true
}

func report(err error) {
	if err != nil {
		printlnFn(userMessage(err))
	}
}
