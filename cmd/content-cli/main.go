// Package main 内容生成命令行工具
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ai-content-writer/internal/application/content"
	"ai-content-writer/internal/config"
	"ai-content-writer/internal/infrastructure/llm"
	"ai-content-writer/internal/interfaces/cli"
	einoobs "ai-content-writer/internal/observability/eino"
	"ai-content-writer/internal/workflow/chain"
	apperrors "ai-content-writer/pkg/errors"
	"ai-content-writer/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaults := cli.DefaultOptions()
	var (
		opts        = defaults
		paraphrase  string
		interactive bool
		configDir   string
	)
	flag.StringVar(&opts.ContentType, "content-type", defaults.ContentType, "content type: Blog|Essay")
	flag.StringVar(&opts.Length, "length", defaults.Length, "length: concise|standard|extended")
	flag.StringVar(&opts.Style, "style", defaults.Style, "writing style: Formal|Informal|Conversational|Academic")
	flag.StringVar(&opts.Tone, "tone", defaults.Tone, "tone: Informative|Persuasive|Neutral|Descriptive")
	flag.BoolVar(&opts.Summary, "summary", false, "include a brief summary at the end")
	flag.StringVar(&opts.Keywords, "keywords", "", "comma-separated keywords")
	flag.StringVar(&opts.Topic, "topic", "", "topic to write about (required to generate)")
	flag.StringVar(&paraphrase, "paraphrase", "", "comma-separated paragraph numbers to paraphrase after rendering")
	flag.BoolVar(&interactive, "interactive", false, "choose options interactively")
	flag.StringVar(&configDir, "config", config.DefaultDir, "configuration directory")
	flag.Parse()

	nums, err := cli.ParseParagraphNumbers(paraphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "--paraphrase: %v\n", err)
		return 2
	}
	opts.Paraphrase = nums

	_ = godotenv.Load()

	cfg, err := config.LoadFrom(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	// 标准输出留给生成内容
	logger.InitWithWriter(os.Stderr, cfg.Observability.Logging.Level, "text")
	einoobs.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generator := chain.NewTextChain(llm.NewEinoFactory(cfg), cfg.LLM.DefaultProvider)
	session := content.NewSession("cli", generator)

	var runErr error
	if interactive {
		runner := cli.NewRunner(session, os.Stdout, cli.NewSurveyDriver())
		runErr = runner.RunInteractive(ctx, opts)
	} else {
		runner := cli.NewRunner(session, os.Stdout, nil)
		runErr = runner.Run(ctx, opts)
	}

	switch {
	case runErr == nil:
		return 0
	case errors.Is(runErr, cli.ErrAborted):
		return 130
	case apperrors.HasCode(runErr, apperrors.CodeInvalidParam):
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		return 2
	case apperrors.HasCode(runErr, apperrors.CodeLLMCallFailed):
		// 失败信息已内联输出
		return 1
	default:
		logger.Error(ctx, "content-cli failed", runErr)
		return 1
	}
}
