// Package main implements gridsnap, a window snapping layout editor.
// Layouts are trees of columns and rows over a virtual display; the editor
// lets you split, resize and margin regions interactively and saves the
// result for the snapping engine and for preset shortcuts.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridsnap/gridsnap/internal/app"
	"github.com/gridsnap/gridsnap/internal/config"
	"github.com/gridsnap/gridsnap/internal/server"
	"github.com/gridsnap/gridsnap/internal/store"
	"github.com/gridsnap/gridsnap/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode    bool
	themeFlag    string
	dividerWidth int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridsnap",
		Short: "Window snapping layout editor",
		Long: `gridsnap - window snapping layout editor

Edit tiling layouts as trees of columns and rows: drag dividers, preview
splits with modifier keys, adjust margins and apply presets. Layouts persist
per display and drive where dragged windows snap.`,
		Example: `  # Run the editor
  gridsnap

  # Run with debug logging
  gridsnap --debug

  # Serve the editor over SSH
  gridsnap ssh --port 2222

  # Edit configuration
  gridsnap config edit

  # List preset slots
  gridsnap presets list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Theme name (overrides config)")
	rootCmd.Flags().IntVar(&dividerWidth, "divider-width", 0, "Divider thickness in display units (overrides config)")

	var sshPort, sshHost, sshKeyPath string
	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the editor over SSH",
		Long: `Serve the gridsnap editor over SSH

Allows editing layouts from a remote machine. The server generates a host
key automatically if not specified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}
	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gridsnap configuration",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print configuration file path",
			RunE: func(cmd *cobra.Command, args []string) error {
				return printConfigPath()
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Edit configuration in $EDITOR",
			RunE: func(cmd *cobra.Command, args []string) error {
				return editConfigFile()
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Reset configuration to defaults",
			RunE: func(cmd *cobra.Command, args []string) error {
				return resetConfigToDefaults()
			},
		},
	)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "Inspect preset slots",
	}
	presetsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all preset slots",
			RunE: func(cmd *cobra.Command, args []string) error {
				return listPresets()
			},
		},
		&cobra.Command{
			Use:   "show <slot>",
			Short: "Print a preset slot's layout as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return showPreset(args[0])
			},
		},
		&cobra.Command{
			Use:   "clear <slot>",
			Short: "Clear a user preset slot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return clearPreset(args[0])
			},
		},
	)

	rootCmd.AddCommand(sshCmd, configCmd, presetsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

// filterMouseMotion drops motion events while the help overlay is open, so
// hover tracking cannot churn underneath it.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	if editor, ok := model.(*app.Editor); ok && editor.HelpVisible() {
		return nil
	}
	return msg
}

func runLocal() error {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("Failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	userConfig.ApplyOverrides(config.Overrides{Theme: themeFlag, DividerWidth: dividerWidth})
	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		log.Warn("Could not initialize theme", "err", err)
	}

	editor := app.New(userConfig, store.New())
	defer editor.Close()

	p := tea.NewProgram(
		editor,
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(filterMouseMotion),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(host, port, keyPath string) error {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	if err := server.Start(ctx, server.Config{Host: host, Port: port, KeyPath: keyPath}); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	// Ensure config file exists (create default if needed)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.LoadUserConfig(); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: gridsnap config edit")
	return nil
}

// listPresets prints every preset slot in a pretty table
func listPresets() error {
	st := store.New()
	defaults := config.DefaultConfig().Input.PresetKeys

	rows := [][]string{}
	for slot, p := range st.Presets(len(defaults)) {
		key := defaults[slot]
		switch {
		case p == nil:
			rows = append(rows, []string{key, "(empty)", ""})
		case p.ID == uuid.Nil:
			rows = append(rows, []string{key, p.Name, "builtin"})
		default:
			rows = append(rows, []string{key, p.Name, "user"})
		}
	}

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("gridsnap Presets"))
	fmt.Println()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Key", "Name", "Source").
		Rows(rows...)
	// Cap the table to the terminal width when stdout is a tty, so long
	// preset names wrap instead of breaking the border.
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		t = t.Width(min(w, 72))
	}
	fmt.Println(t)
	return nil
}

// showPreset prints one slot's layout as JSON, for export or inspection
func showPreset(arg string) error {
	slot, err := parseSlot(arg)
	if err != nil {
		return err
	}

	list := store.New().Presets(slot + 1)
	p := list[slot]
	if p == nil {
		return fmt.Errorf("preset slot %d is empty", slot+1)
	}

	data, err := json.MarshalIndent(p.Layout, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal preset: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// clearPreset removes a user preset, revealing the builtin behind it
func clearPreset(arg string) error {
	slot, err := parseSlot(arg)
	if err != nil {
		return err
	}
	if err := store.New().DeletePreset(slot); err != nil {
		return err
	}
	fmt.Printf("Preset slot %d cleared\n", slot+1)
	return nil
}

// parseSlot converts a 1-based slot argument to its index
func parseSlot(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("slot must be a positive number, got %q", arg)
	}
	return n - 1, nil
}
