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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Whoami(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ListCourses(ctx context.Context) error
	ShowCourse(ctx context.Context, courseID int64) error
	ListModules(ctx context.Context) error
	ShowModule(ctx context.Context, moduleID int64) error
	ListGroups(ctx context.Context) error
	ShowGroup(ctx context.Context, groupID int64) error
	ShowPost(ctx context.Context, postID int64) error
	DownloadPostFile(ctx context.Context, postID int64) error
	TakeQuiz(ctx context.Context, quizID int64) error
	ShowProgress(ctx context.Context) error
	MarkComplete(ctx context.Context, moduleID int64) error
	Logout(ctx context.Context) error
}

// parseID turns the first argument of a command into a numeric identifier.
// An empty or malformed argument yields a usage hint and ok=false.
func parseID(cmd string, args []string) (int64, bool) {
	if len(args) == 0 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn(fmt.Sprintf("Invalid id %q; usage: %s <id>", args[0], cmd))
		return 0, false
	}
	return id, true
}

// runREPL starts a simple read–eval–print loop for the Health App CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - whoami           — show the current profile
//	  - edit             — edit the current profile
//	  - courses          — list courses
//	  - course <id>      — show one course with its modules
//	  - modules          — list learning modules
//	  - module <id>      — show one module with its posts
//	  - groups           — list groups
//	  - group <id>       — show one group with its members
//	  - post <id>        — show a post
//	  - postfile <id>    — download a post attachment
//	  - quiz <id>        — take a quiz
//	  - progress         — show learning progress
//	  - complete <id>    — mark a module as completed
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("healthapp %s> ", statusFn()))
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
				printlnFn("Available commands: whoami, edit, courses, course <id>, modules, module <id>, groups, group <id>, post <id>, postfile <id>, quiz <id>, progress, complete <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "courses":
			_ = a.ListCourses(ctx)

		case "course":
			if id, ok := parseID(cmd, args); ok {
				_ = a.ShowCourse(ctx, id)
			}

		case "modules":
			_ = a.ListModules(ctx)

		case "module":
			if id, ok := parseID(cmd, args); ok {
				_ = a.ShowModule(ctx, id)
			}

		case "groups":
			_ = a.ListGroups(ctx)

		case "group":
			if id, ok := parseID(cmd, args); ok {
				_ = a.ShowGroup(ctx, id)
			}

		case "post":
			if id, ok := parseID(cmd, args); ok {
				_ = a.ShowPost(ctx, id)
			}

		case "postfile":
			if id, ok := parseID(cmd, args); ok {
				_ = a.DownloadPostFile(ctx, id)
			}

		case "quiz":
			if id, ok := parseID(cmd, args); ok {
				_ = a.TakeQuiz(ctx, id)
			}

		case "progress":
			_ = a.ShowProgress(ctx)

		case "complete":
			if id, ok := parseID(cmd, args); ok {
				_ = a.MarkComplete(ctx, id)
			}

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
