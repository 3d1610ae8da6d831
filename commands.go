package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"content_planner/config"
	"content_planner/planner"
	"content_planner/server"
	"content_planner/tui"
	"content_planner/wizard"
)

var (
	verbose bool
	useMock bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "content-planner",
	Short: "AI-assisted content planning wizard",
	Long: `content-planner turns a transcript or brief into a structured help sheet
through six steps: input, brief, keywords & audience, competitors, sources,
and outline. Each step calls a generation endpoint and its output can be
regenerated or hand-edited before moving on.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the step endpoint service",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		llm, err := buildLLM(settings)
		if err != nil {
			return err
		}
		agent, err := planner.NewAgent(llm)
		if err != nil {
			return err
		}
		srv, err := server.New(agent, logger)
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = settings.Server.Addr
		}
		logger.Info("planner service listening", zap.String("addr", addr))
		return http.ListenAndServe(addr, srv.Routes())
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run the interactive planning wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		machine, err := openMachine()
		if err != nil {
			return err
		}
		state := machine.State()

		title, _ := cmd.Flags().GetString("title")
		sourceFile, _ := cmd.Flags().GetString("source-file")
		audience, _ := cmd.Flags().GetString("audience")
		seo, _ := cmd.Flags().GetBool("seo")
		fresh := state.Brief == nil && state.Input.WorkingTitle == ""
		if fresh && title == "" && sourceFile == "" {
			return errors.New("no plan in progress; start one with --title and --source-file")
		}
		if title != "" || sourceFile != "" {
			if state.Brief != nil {
				return errors.New("a plan is already in progress; run `content-planner reset` to start over")
			}
			source, err := readSource(sourceFile)
			if err != nil {
				return err
			}
			state.Input = planner.ContentPlannerInput{
				WorkingTitle:   title,
				SourceContent:  source,
				TargetAudience: audience,
				SEOImportant:   seo,
			}
			machine.SaveEdits()
		}

		prog := tea.NewProgram(tui.NewModel(machine), tea.WithAltScreen())
		_, err = prog.Run()
		return err
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the help sheet from the saved plan and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		machine, err := openMachine()
		if err != nil {
			return err
		}
		sheet, err := machine.Compile()
		if err != nil {
			return err
		}
		fmt.Println(sheet)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the compiled help sheet to a file or the clipboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		machine, err := openMachine()
		if err != nil {
			return err
		}
		state := machine.State()
		if state.CompiledHelpSheet == "" {
			if _, err := machine.Compile(); err != nil {
				return err
			}
		}
		if toClipboard, _ := cmd.Flags().GetBool("clipboard"); toClipboard {
			if err := state.CopyToClipboard(); err != nil {
				return err
			}
			fmt.Println("help sheet copied to clipboard")
			return nil
		}
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			settings, err := config.LoadSettings()
			if err == nil {
				dir = settings.Planner.ExportDir
			}
		}
		path, err := state.WriteFile(dir)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved plan and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		machine, err := openMachine()
		if err != nil {
			return err
		}
		machine.Reset()
		fmt.Println("plan cleared")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "use the built-in mock generator instead of the LLM API")

	serveCmd.Flags().String("addr", "", "listen address (overrides config)")

	planCmd.Flags().String("title", "", "working title for a new plan")
	planCmd.Flags().String("source-file", "", "path to the transcript or brief text (- for stdin)")
	planCmd.Flags().String("audience", "", "optional target audience hint")
	planCmd.Flags().Bool("seo", false, "mark SEO as important for this piece")

	exportCmd.Flags().Bool("clipboard", false, "copy to the clipboard instead of writing a file")
	exportCmd.Flags().String("dir", "", "directory to write the help sheet into")

	rootCmd.AddCommand(serveCmd, planCmd, compileCmd, exportCmd, resetCmd)
}

// openMachine wires the persisted state, step client, and store together.
func openMachine() (*wizard.Machine, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	if _, err := config.EnsureDataDir(); err != nil {
		return nil, err
	}
	statePath, err := config.StatePath()
	if err != nil {
		return nil, err
	}
	store := wizard.NewStore(statePath, logger)
	state := store.Load()
	client := wizard.NewStepClient(settings.Planner.EndpointBase)
	return wizard.NewMachine(state, client, store, logger), nil
}

func buildLLM(settings config.Settings) (planner.LLMClient, error) {
	if useMock {
		return planner.MockLLM{}, nil
	}
	llmCfg := &planner.LLMSettings{
		Provider: settings.LLM.Provider,
		Model:    settings.LLM.Model,
		APIKey:   settings.LLM.APIKey,
		BaseURL:  settings.LLM.BaseURL,
	}
	switch settings.LLM.Provider {
	case "openai":
		return planner.NewOpenAILLMFromConfig(llmCfg)
	case "deepseek":
		// DeepSeek speaks the OpenAI wire protocol behind a custom base URL.
		if llmCfg.BaseURL == "" {
			return nil, errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return planner.NewOpenAILLMFromConfig(llmCfg)
	case "mock":
		return planner.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", settings.LLM.Provider)
	}
}

func readSource(path string) (string, error) {
	if path == "" {
		return "", errors.New("--source-file is required when starting a new plan")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
