package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/enrolldesk/enrolldesk/internal/config"
	"github.com/enrolldesk/enrolldesk/internal/dashboard"
	"github.com/enrolldesk/enrolldesk/internal/dashboard/client"
	"github.com/enrolldesk/enrolldesk/internal/dashboard/prefs"
)

func main() {
	var (
		apiURL     = flag.String("url", "", "API base URL (overrides config)")
		username   = flag.String("username", "", "login username (overrides config)")
		configPath = flag.String("config", filepath.Join("configs", "config.yaml"), "config file path")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	baseURL := cfg.Client.BaseURL
	if *apiURL != "" {
		baseURL = *apiURL
	}
	user := cfg.Client.Username
	if *username != "" {
		user = *username
	}
	password := cfg.Client.Password

	if user == "" {
		user = promptLine("Username: ")
	}
	if password == "" {
		password = promptPassword("Password: ")
	}

	api := client.New(baseURL, cfg.ClientTimeout())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	login, err := api.Login(ctx, user, password)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}

	prefsPath, err := prefs.DefaultPath()
	if err != nil {
		prefsPath = ""
	}
	var p *prefs.Prefs
	if prefsPath != "" {
		p, _ = prefs.Load(prefsPath)
	}

	model := dashboard.New(api, login.User.Role, p, prefsPath)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard exited with error: %v\n", err)
		os.Exit(1)
	}
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(prompt string) string {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(raw)
}
