package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if auth := a.sessions.Auth(); auth.User != nil {
		s = auth.User.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to wpcloud CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("wpc %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: status, buy, backup, restore, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "status":
			a.Status(ctx)
		case "buy":
			a.Buy(ctx)
		case "backup":
			a.Backup(ctx)
		case "restore":
			a.Restore(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
