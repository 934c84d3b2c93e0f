package main

import (
	"fmt"
	"os"
	"strings"

	"cyberbot/cmd/cyberbot/config"
	"cyberbot/internal/dialogue"
	"cyberbot/internal/logging"
	"cyberbot/internal/topics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "1.2.0"

var (
	// Global flags
	verbose  bool
	noColor  bool
	nameFlag string

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "cyberbot",
	Short: "cyberbot - cybersecurity awareness chatbot",
	Long: `cyberbot is a scripted cybersecurity awareness chatbot.

It explains core security topics (passwords, phishing, malware, and more)
through a keyword-matching dialogue engine with follow-up questions, runs
a multiple-choice quiz, and keeps a to-do list with reminders.

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			// lipgloss and glamour honor NO_COLOR via termenv.
			os.Setenv("NO_COLOR", "1")
		}
		// The interactive chat has its own UI; zap is for the
		// non-interactive commands.
		if cmd.Use == "cyberbot" && cmd.CalledAs() == "cyberbot" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveChat()
	},
}

// askCmd resolves a single utterance without the TUI, for scripting.
var askCmd = &cobra.Command{
	Use:   "ask [utterance]",
	Short: "Resolve one utterance through the dialogue engine",
	Long: `Runs a single utterance through the response resolution engine with a
fresh conversation state and prints the reply.

Example:
  cyberbot ask "tell me about passwords"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

// topicsCmd prints the topic list.
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics the chatbot can explain",
	RunE:  runTopics,
}

// quizCmd launches the quiz game.
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play the cybersecurity quiz",
	Long: `Starts a ten-question quiz sampled from the built-in question bank.
Answer with the arrow keys or number keys; enter submits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cyberbot version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cyberbot %s\n", version)
	},
}

func runAsk(cmd *cobra.Command, args []string) error {
	store, err := topics.Load()
	if err != nil {
		return fmt.Errorf("failed to load topic content: %w", err)
	}

	name := resolveUserName()
	engine := dialogue.NewEngine(store, name)
	state := dialogue.NewState()

	input := strings.Join(args, " ")
	resp := engine.Resolve(input, state)

	logger.Debug("resolved utterance",
		zap.String("input", input),
		zap.String("topic", string(state.CurrentTopic())),
		zap.String("phase", state.Phase().String()),
	)

	fmt.Println(resp.Joined())
	return nil
}

func runTopics(cmd *cobra.Command, args []string) error {
	store, err := topics.Load()
	if err != nil {
		return fmt.Errorf("failed to load topic content: %w", err)
	}
	fmt.Println(store.Help())
	return nil
}

// resolveUserName picks the personalization name: flag, config, fallback.
func resolveUserName() string {
	if nameFlag != "" {
		return nameFlag
	}
	if cfg, err := config.Load(); err == nil && cfg.UserName != "" {
		return cfg.UserName
	}
	return "friend"
}

func main() {
	if dir, err := config.Dir(); err == nil {
		if err := logging.Initialize(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging init failed: %v\n", err)
		}
	}
	defer logging.CloseAll()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&nameFlag, "name", "", "override the configured user name")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
