package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/Akashdeep-Patra/zed-git-stage/internal/app"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/config"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/git"
	"github.com/Akashdeep-Patra/zed-git-stage/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// A TUI spends most of its time waiting on git subprocesses, fsnotify
	// and terminal input, so two OS threads cover the actual Go work.
	// Matters when several instances share a machine. An explicit
	// GOMAXPROCS from the user wins.
	if os.Getenv("GOMAXPROCS") == "" {
		maxProcs := 2
		if n := runtime.NumCPU(); n < maxProcs {
			maxProcs = n
		}
		runtime.GOMAXPROCS(maxProcs)
	}

	// Keep RSS low: trigger GC well before the default heap target.
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zgs",
		Short: "An interactive TUI for staging and committing git changes",
		Long: `zgs is a keyboard-first, terminal-based git staging tool.

It shows the working tree grouped the way git status does (staged,
unstaged, untracked), lets you stage and unstage files with a single
keypress, stage individual hunks, view diffs, and commit — while a
filesystem watcher keeps the view in sync with changes made outside
the tool.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"zgs %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	rootCmd.Flags().StringP("path", "p", ".", "Path to the git repository")
	rootCmd.Flags().Bool("no-watch", false, "Disable the filesystem watcher")

	return rootCmd
}

// buildVersionCmd creates the `zgs version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("zgs %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `zgs completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for zgs.

Examples:
  # Bash (add to ~/.bashrc)
  zgs completion bash > /etc/bash_completion.d/zgs

  # Zsh (add to ~/.zshrc before compinit)
  zgs completion zsh > "${fpath[1]}/_zgs"

  # Fish
  zgs completion fish > ~/.config/fish/completions/zgs.fish

  # PowerShell
  zgs completion powershell > zgs.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

func runApp(cmd *cobra.Command, _ []string) error {
	repoPath, _ := cmd.Flags().GetString("path")
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cliSvc, err := git.NewCLIService(repoPath)
	if err != nil {
		if errors.Is(err, git.ErrNotARepo) {
			return fmt.Errorf("%s is not inside a git repository", repoPath)
		}
		return fmt.Errorf("opening repository: %w", err)
	}

	// Wrap with a 2-second TTL cache to deduplicate git calls within a
	// single refresh cycle.
	gitSvc := git.NewCachedService(cliSvc, 2*time.Second)

	// Start the filesystem watcher unless disabled. Failure to start is
	// degraded mode, not fatal: the UI still refreshes on keypress.
	var w *watcher.Watcher
	if cfg.Watch && !noWatch {
		if ww, watchErr := watcher.New(cliSvc.RepoRoot(), cliSvc.GitDir()); watchErr == nil {
			w = ww
			defer w.Stop()
		} else {
			fmt.Fprintf(os.Stderr, "warning: filesystem watcher unavailable: %v\n", watchErr)
		}
	}

	model := app.New(gitSvc, cfg, w)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
