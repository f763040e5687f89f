package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/article-summarizer/internal/summarize"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	summarizeCmd := summarize.Command()

	return &cli.App{
		Name:  "article-summarizer",
		Usage: "Extractive summaries of web articles by word-frequency sentence ranking",
		Commands: []*cli.Command{
			summarizeCmd,
		},
		// Running without a subcommand behaves like "summarize".
		Flags:  summarize.Flags(),
		Action: summarize.SummarizeAction,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
