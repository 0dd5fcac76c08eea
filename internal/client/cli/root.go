package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	getStatus() string
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Delete(ctx context.Context) error
	Modify(ctx context.Context) error
	AddUser(ctx context.Context) error
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// runREPL reads commands from in and dispatches them until exit or EOF.
// It starts with a login attempt; its failure is reported the same way
// as any command failure, leaving the user at the prompt.
func runREPL(ctx context.Context, in io.Reader, exec execIface) {

	scanner := bufio.NewScanner(in)

	if err := exec.Login(ctx); err != nil {
		log.Println(err.Error())
	}

	for {
		fmt.Printf("pswmgr %s> ", exec.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			if exec.isLoggedIn() {
				fmt.Println("Available commands: (l)ist, add, del, mod, adduser, exit")
			} else {
				fmt.Println("Available commands: login, exit")
			}
		case "login":
			err = exec.Login(ctx)
		case "list", "l":
			err = exec.List(ctx)
		case "add":
			err = exec.Add(ctx)
		case "del":
			err = exec.Delete(ctx)
		case "mod":
			err = exec.Modify(ctx)
		case "adduser":
			err = exec.AddUser(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}

		if err != nil {
			log.Println(err.Error())
		}
	}
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the password manager CLI (type 'help' for commands)")
	runREPL(ctx, os.Stdin, a)
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}
