package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"formvault/internal/client/prompt"
	"formvault/internal/client/session"
	"formvault/internal/client/store"
	"formvault/internal/logger"
)

var (
	version   string
	buildDate string
)

// login prompts for credentials until a non-empty pair is entered, then
// opens the session.
func login(ctx context.Context, s *session.Session, reader *bufio.Reader) error {
	for {
		username, err := prompt.ReadLine(reader, "Username: ", os.Stdout)
		if err != nil {
			return err
		}
		password, err := prompt.ReadPassword(os.Stdout)
		if err != nil {
			return err
		}

		err = s.Login(ctx, username, password)
		if errors.Is(err, session.ErrEmptyCredentials) {
			fmt.Println("Username and password are required.")
			continue
		}
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%d submissions on record)\n", s.Username(), len(s.Submissions()))
		return nil
	}
}

// printTable renders the session's submission list with 1-based row
// numbers derived from list position.
func printTable(s *session.Session) {
	subs := s.Submissions()
	if len(subs) == 0 {
		fmt.Println("No submissions yet.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tName\tEmail\tPhone\tAddress\tMessage")
	for i, sub := range subs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, sub.Name, sub.Email, sub.Phone, sub.Address, sub.Message)
	}
	_ = w.Flush()
}

// repl runs the interactive shell loop, accepting commands to submit
// and review contact records.
func repl(ctx context.Context, s *session.Session) {
	reader := bufio.NewReader(os.Stdin)

	if err := login(ctx, s, reader); err != nil {
		fmt.Println("login aborted:", err)
		return
	}

	for {
		fmt.Print("formvault> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		args := strings.Fields(strings.TrimSpace(line))
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, submit, list, logout, exit")
		case "submit":
			rec, err := prompt.ForSubmission(reader, os.Stdout)
			if err != nil {
				fmt.Println("submit aborted:", err)
				continue
			}
			if err := s.Submit(ctx, rec); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Submitted (row %d)\n", len(s.Submissions()))
		case "list":
			printTable(s)
		case "logout":
			s.Logout()
			fmt.Println("Logged out.")
			if err := login(ctx, s, reader); err != nil {
				fmt.Println("login aborted:", err)
				return
			}
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// main parses command-line flags, selects the store adapter variant,
// and starts the shell.
func main() {
	var (
		storeKind string
		baseURL   string
		storeFile string
		logLevel  string
		showVer   bool
	)

	flag.StringVar(&storeKind, "store", "remote", "store adapter: remote | local")
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL (remote store)")
	flag.StringVar(&storeFile, "file", "submissions.json", "path to the store file (local store)")
	flag.StringVar(&logLevel, "l", "error", "log level")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("FormVault Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}

	var st store.Store
	switch storeKind {
	case "remote":
		st = store.NewRemoteStore(http.DefaultClient, baseURL)
	case "local":
		st = store.NewLocalStore(storeFile)
	default:
		log.Log.Fatal("unknown store kind", zap.String("store", storeKind))
	}

	repl(context.Background(), session.New(st, log.Log))
}
