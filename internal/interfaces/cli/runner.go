package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ai-content-writer/internal/application/content"
	"ai-content-writer/internal/domain/entity"
	apperrors "ai-content-writer/pkg/errors"
	"ai-content-writer/pkg/logger"
)

const doneOption = "Done"

// Runner 在终端里驱动一个会话
type Runner struct {
	session *content.Session
	view    content.View
	out     io.Writer
	driver  PromptDriver
}

// NewRunner driver 仅在交互模式下使用，可为 nil
func NewRunner(session *content.Session, out io.Writer, driver PromptDriver) *Runner {
	return &Runner{
		session: session,
		view:    NewTerminalView(out),
		out:     out,
		driver:  driver,
	}
}

// Run 按命令行参数生成一次，并展开要求的段落
func (r *Runner) Run(ctx context.Context, opts Options) error {
	cfg, err := opts.GenerationConfig()
	if err != nil {
		return apperrors.ErrInvalidParam.WithDetail(err.Error())
	}

	res, err := r.session.Trigger(ctx, content.TriggerRequest{Config: cfg, Pressed: true}, r.view)
	if err != nil {
		return err
	}
	if !res.Triggered {
		logger.Debug(ctx, "no topic given, nothing generated")
		return nil
	}

	for _, n := range opts.Paraphrase {
		if _, err := r.session.Expand(ctx, n, r.view); err != nil {
			if apperrors.HasCode(err, apperrors.CodeParagraphNotFound) {
				fmt.Fprintf(r.out, "\n[warn] paragraph %d does not exist (1-%d)\n", n, res.Document.Len())
				continue
			}
			return err
		}
	}
	return nil
}

// RunInteractive 逐项询问控件取值，生成后进入段落改写循环
func (r *Runner) RunInteractive(ctx context.Context, defaults Options) error {
	if r.driver == nil {
		return fmt.Errorf("interactive mode requires a prompt driver")
	}

	opts, err := r.askOptions(ctx, defaults)
	if err != nil {
		return err
	}

	cfg, err := opts.GenerationConfig()
	if err != nil {
		return apperrors.ErrInvalidParam.WithDetail(err.Error())
	}
	res, err := r.session.Trigger(ctx, content.TriggerRequest{Config: cfg, Pressed: true}, r.view)
	if err != nil {
		return err
	}
	if !res.Triggered {
		return nil
	}
	return r.paraphraseLoop(ctx, res.Document)
}

func (r *Runner) askOptions(ctx context.Context, defaults Options) (Options, error) {
	opts := defaults

	contentTypes := toStrings(entity.ContentTypes)
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Select Content Type",
		Options:      contentTypes,
		DefaultIndex: indexOfFold(contentTypes, defaults.ContentType),
	})
	if err != nil {
		return opts, err
	}
	opts.ContentType = pick(contentTypes, idx, opts.ContentType)

	lengthLabels := make([]string, 0, len(entity.Lengths))
	lengthKeys := make([]string, 0, len(entity.Lengths))
	for _, l := range entity.Lengths {
		lengthLabels = append(lengthLabels, l.Label())
		lengthKeys = append(lengthKeys, string(l))
	}
	idx, err = r.driver.Select(ctx, SelectConfig{
		Message:      "Select Length",
		Options:      lengthLabels,
		DefaultIndex: indexOfFold(lengthKeys, defaults.Length),
	})
	if err != nil {
		return opts, err
	}
	opts.Length = pick(lengthKeys, idx, opts.Length)

	styles := toStrings(entity.Styles)
	idx, err = r.driver.Select(ctx, SelectConfig{
		Message:      "Select Writing Style",
		Options:      styles,
		DefaultIndex: indexOfFold(styles, defaults.Style),
	})
	if err != nil {
		return opts, err
	}
	opts.Style = pick(styles, idx, opts.Style)

	tones := toStrings(entity.Tones)
	idx, err = r.driver.Select(ctx, SelectConfig{
		Message:      "Select Tone",
		Options:      tones,
		DefaultIndex: indexOfFold(tones, defaults.Tone),
	})
	if err != nil {
		return opts, err
	}
	opts.Tone = pick(tones, idx, opts.Tone)

	if opts.Summary, err = r.driver.Confirm(ctx, ConfirmConfig{
		Message: "Include Summary at the End?",
		Default: defaults.Summary,
	}); err != nil {
		return opts, err
	}

	if opts.Keywords, err = r.driver.Input(ctx, InputConfig{
		Message: "Keywords (comma-separated)",
		Default: defaults.Keywords,
		Help:    "Optional",
	}); err != nil {
		return opts, err
	}

	if opts.Topic, err = r.driver.Input(ctx, InputConfig{
		Message: "Enter Topic",
		Default: defaults.Topic,
	}); err != nil {
		return opts, err
	}
	return opts, nil
}

// paraphraseLoop 每次选择都会发起新的改写请求，选 Done 结束
func (r *Runner) paraphraseLoop(ctx context.Context, doc *entity.GeneratedDocument) error {
	if doc.Len() == 0 {
		return nil
	}
	options := make([]string, 0, doc.Len()+1)
	for _, p := range doc.Paragraphs() {
		options = append(options, fmt.Sprintf("Paraphrase paragraph %d: %s", p.Number, preview(p.Text, 48)))
	}
	options = append(options, doneOption)

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      "Paraphrase a paragraph?",
			Options:      options,
			DefaultIndex: len(options) - 1,
			PageSize:     10,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= doc.Len() {
			return nil
		}
		if _, err := r.session.Expand(ctx, idx+1, r.view); err != nil {
			return err
		}
	}
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func indexOfFold(options []string, value string) int {
	for i, o := range options {
		if strings.EqualFold(o, value) {
			return i
		}
	}
	return 0
}

func pick(options []string, idx int, fallback string) string {
	if idx < 0 || idx >= len(options) {
		return fallback
	}
	return options[idx]
}

func preview(text string, maxRunes int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "..."
}
