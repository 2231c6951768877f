package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/234quix/rewoo/internal/agent"
	"github.com/234quix/rewoo/internal/gateway"
	"github.com/234quix/rewoo/internal/governance"
	"github.com/234quix/rewoo/internal/observability"
	"github.com/234quix/rewoo/internal/store"
	"github.com/234quix/rewoo/internal/tools"
	"github.com/234quix/rewoo/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to config file (json or yaml)")
	serve := flag.Bool("serve", false, "Run as a gateway service instead of a one-shot task")
	flag.Parse()

	cfg := config.LoadConfig(*configPath)

	// Initialize LLM (using default enabled provider)
	pName, pCfg := cfg.GetDefaultProvider()
	if pName == "" {
		log.Fatal("No enabled provider found in config")
	}

	var llm llms.Model
	var err error
	switch pName {
	case "openai", "openrouter":
		opts := []openai.Option{
			openai.WithToken(pCfg.APIKey),
			openai.WithModel(pCfg.Model),
		}
		if pCfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(pCfg.BaseURL))
		}
		llm, err = openai.New(opts...)
	default:
		log.Fatalf("Provider %s not yet implemented in main", pName)
	}
	if err != nil {
		log.Fatal(err)
	}

	registry := buildRegistry(cfg, llm)

	gov := governance.NewDefaultPolicyEngine()
	// Default safety rules: block dangerous destructive commands
	_ = gov.DenyArguments(`rm\s+-rf`)
	_ = gov.DenyArguments(`mkfs`)
	_ = gov.DenyArguments(`shutdown`)
	_ = gov.DenyArguments(`reboot`)

	logger := observability.NewLogger()
	promptsDir := cfg.App.Prompts
	if promptsDir == "" {
		promptsDir = "./prompts"
	}
	prompts := agent.NewPromptManager(promptsDir)

	gen := agent.NewLLMGenerator(llm)
	planner := agent.NewPlanner(gen, registry, prompts, logger)
	worker := agent.NewWorker(registry, gov, logger)
	solver := agent.NewSolver(gen, prompts, logger)
	orch := agent.NewOrchestrator(planner, worker, solver, logger)
	orch.Observer = agent.ObserverFunc(func(state agent.State, outcome agent.Outcome) {
		observability.SetStatus(phaseFor(state), outcome.Task)
	})

	var trace *store.TraceStore
	if cfg.Trace.Path != "" {
		trace, err = store.NewTraceStore(cfg.Trace.Path)
		if err != nil {
			log.Fatal(err)
		}
		defer trace.Close()
	}

	if *serve {
		runService(cfg, orch, trace)
		return
	}

	task := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if task == "" {
		fmt.Fprintln(os.Stderr, "usage: rewoo [-config path] [-serve] <task>")
		os.Exit(2)
	}

	runOnce(orch, trace, task)
}

func buildRegistry(cfg *config.Config, llm llms.Model) *tools.Registry {
	registry := tools.NewRegistry()

	if cfg.Tools.Search {
		searchTool, err := tools.NewSearchTool()
		if err != nil {
			log.Printf("Warning: Failed to initialize search tool: %v", err)
		} else {
			registry.Register(searchTool)
		}
	}
	if cfg.Tools.LLM {
		registry.Register(tools.NewLLMTool(llm))
	}
	if cfg.Tools.Scraper {
		registry.Register(tools.NewScraperTool())
	}
	if cfg.Tools.Browser {
		registry.Register(tools.NewBrowserTool())
	}
	if cfg.Tools.Calc {
		registry.Register(tools.NewCalcTool())
	}
	if cfg.Tools.File {
		workspace := cfg.App.Workspace
		if workspace == "" {
			workspace = "."
		}
		registry.Register(tools.NewFileTool(workspace))
	}
	if cfg.Tools.Shell {
		registry.Register(tools.NewShellTool())
	}

	if len(registry.Tools) == 0 {
		log.Fatal("No tools enabled in config; the planner would have nothing to call")
	}
	return registry
}

func runOnce(orch *agent.Orchestrator, trace *store.TraceStore, task string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := orch.Run(ctx, task)
	recordTrace(trace, outcome, err)

	if err != nil {
		log.Printf("Run %s failed: %v", outcome.RunID, err)
		// Surface the partial trace for diagnosis
		if outcome.Plan.Len() > 0 {
			fmt.Fprintf(os.Stderr, "\n-- PLAN --\n%s\n", outcome.Plan.String())
		}
		for _, b := range outcome.Evidence {
			fmt.Fprintf(os.Stderr, "%s = %s\n", b.Name, b.Value)
		}
		os.Exit(1)
	}

	fmt.Println(outcome.FinalAnswer)
}

// tracedRunner archives every gateway-initiated run alongside the
// reply, the same way runOnce does for CLI runs.
type tracedRunner struct {
	orch  *agent.Orchestrator
	trace *store.TraceStore
}

func (t tracedRunner) Run(ctx context.Context, task string) (*agent.Outcome, error) {
	outcome, err := t.orch.Run(ctx, task)
	recordTrace(t.trace, outcome, err)
	return outcome, err
}

func runService(cfg *config.Config, orch *agent.Orchestrator, trace *store.TraceStore) {
	runner := tracedRunner{orch: orch, trace: trace}
	observability.PrintBanner()
	observability.InitializeTerminal()

	// Route all log output through the terminal mutex so it never
	// interrupts the dashboard's cursor save/restore sequence.
	log.SetOutput(observability.NewTermWriter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := 0
	if tgCfg, ok := cfg.GetGateway("telegram"); ok {
		tg, err := gateway.NewTelegramGateway(tgCfg.Token, runner)
		if err != nil {
			log.Fatal(err)
		}
		go func() {
			if err := tg.Start(); err != nil {
				log.Printf("\033[91m[ FAIL ] TELEGRAM GATEWAY ERROR: %v\033[0m", err)
				stop()
			}
		}()
		defer tg.Stop()
		started++
	}
	if dcCfg, ok := cfg.GetGateway("discord"); ok {
		dc, err := gateway.NewDiscordGateway(dcCfg.Token, runner)
		if err != nil {
			log.Fatal(err)
		}
		if err := dc.Start(); err != nil {
			log.Fatal(err)
		}
		defer dc.Stop()
		started++
	}
	if started == 0 {
		log.Fatal("No gateway is enabled in config")
	}

	// Live status dashboard (1-second updates)
	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				observability.PrintLiveStatus()
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				observability.Heartbeat()
			}
		}
	}()

	<-ctx.Done()

	observability.CleanupTerminal()
	time.Sleep(500 * time.Millisecond)
	log.Println("Service stopped.")
}

func recordTrace(trace *store.TraceStore, outcome *agent.Outcome, runErr error) {
	if trace == nil {
		return
	}
	status := "done"
	if runErr != nil {
		status = fmt.Sprintf("failed: %v", runErr)
	}
	if err := trace.Record(outcome.RunID, outcome.Task, outcome.Plan.String(), outcome.Evidence, outcome.FinalAnswer, status); err != nil {
		log.Printf("Failed to archive run %s: %v", outcome.RunID, err)
	}
}

func phaseFor(state agent.State) observability.Phase {
	switch state {
	case agent.StatePlanning:
		return observability.PhasePlanning
	case agent.StateExecuting, agent.StateRouting:
		return observability.PhaseExecuting
	case agent.StateSolving:
		return observability.PhaseSolving
	default:
		return observability.PhaseIdle
	}
}
