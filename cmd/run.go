package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/websh-dev/websh/commands"
	"github.com/websh-dev/websh/core/config"
	"github.com/websh-dev/websh/core/logger"
	"github.com/websh-dev/websh/core/shell"
	"github.com/websh-dev/websh/core/sysinfo"
)

// clearSequence is what the clear command writes to the terminal.
const clearSequence = "\x1b[H\x1b[2J"

var errorColor = color.New(color.FgRed)

// openEventLog wires the configured JSON lines event log to a logger
// stamped with a fresh session ID.
func openEventLog(configuration *config.Configuration) (*logger.Logger, io.Closer, error) {
	fd, err := configuration.OpenEventLog()
	if err != nil {
		return nil, nil, err
	}
	eventLog := logger.New(logger.NewJSONLinesRecorder(fd)).WithSession(logger.NewSessionID())
	return eventLog, fd, nil
}

// newEngine assembles a shell engine over the host filesystem with the
// host's identity and environment.
func newEngine(configuration *config.Configuration, eventLog *logger.Logger) *shell.Engine {
	sys := sysinfo.New()

	var user, hostname string
	if host, err := sys.Host(); err == nil {
		user = host.Username
		hostname = host.Hostname
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	}

	session := shell.NewSession(shell.SessionParams{
		FS:            afero.NewOsFs(),
		Dir:           cwd,
		Environ:       os.Environ(),
		SysInfo:       sys,
		User:          user,
		Hostname:      hostname,
		HistoryWindow: configuration.History.DisplayLimit,
	})
	for _, alias := range configuration.Aliases {
		session.Aliases().Set(alias.Name, alias.Text)
	}
	if runtime.GOOS == "windows" {
		session.Aliases().Set("grep", "findstr")
	}

	hostShell := configuration.Fallback.Shell
	if len(hostShell) == 0 {
		hostShell = shell.DefaultShell()
	}
	runner := shell.NewExecRunner(configuration.FallbackTimeout(), hostShell)

	return shell.NewEngine(session, commands.Registry(),
		shell.WithFallback(runner),
		shell.WithLogger(eventLog))
}

// verbCompleter adapts Engine.Suggest to readline's completion interface.
type verbCompleter struct {
	engine *shell.Engine
}

// Do returns the suffixes that extend the text left of the cursor.
func (c *verbCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])

	var suffixes [][]rune
	for _, candidate := range c.engine.Suggest(prefix) {
		if strings.HasPrefix(candidate, prefix) {
			suffixes = append(suffixes, []rune(candidate[len(prefix):]))
		}
	}
	return suffixes, len([]rune(prefix))
}

func runInteractive(cmd *cobra.Command, configuration *config.Configuration) error {
	eventLog, closer, err := openEventLog(configuration)
	if err != nil {
		return err
	}
	defer closer.Close()

	engine := newEngine(configuration, eventLog)
	session := engine.Session()
	eventLog.LogSessionStart(logger.SessionStart{
		User:     session.User(),
		Hostname: session.Hostname(),
	})

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          engine.Prompt(),
		InterruptPrompt: "^C",
		AutoComplete:    &verbCompleter{engine: engine},
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	out := cmd.OutOrStdout()
	if configuration.Banner != "" {
		fmt.Fprintln(out, configuration.Banner)
	}
	fmt.Fprintln(out, "Type 'help' for available commands, 'exit' to quit.")
	fmt.Fprintln(out)

	for {
		rl.SetPrompt(engine.Prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			fmt.Fprintln(out, "Goodbye!")
			return nil

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		result := engine.Execute(line)
		if result.Output == shell.ClearScreen {
			fmt.Fprint(out, clearSequence)
		} else if result.Output != "" {
			fmt.Fprintln(out, result.Output)
		}
		if result.Error != "" {
			errorColor.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", result.Error)
		}
	}
}
