package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/textdex"
	"github.com/kailas-cloud/textdex/internal/config"
	logpkg "github.com/kailas-cloud/textdex/internal/logger"
	"github.com/kailas-cloud/textdex/internal/version"
)

const usage = `textdex — CLI for the textdex search service

Usage:
  textdex health
  textdex version
  textdex get <index> <id>
  textdex list <index> [limit]
  textdex add <index> <file.json|->
  textdex update <index> <file.json|->
  textdex delete <index> <id>
  textdex delete-all <index>
  textdex search <index> <query> [limit]
  textdex updates <index>
  textdex update-status <index> <id>

Configuration is read from config/<ENV>.yaml (ENV defaults to "local").
`

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	logger.Debug("Starting textdex CLI",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("base_url", cfg.Service.BaseURL),
		zap.String("command", args[0]),
	)

	client, err := textdex.New(cfg.Service.BaseURL,
		textdex.WithAPIKey(cfg.Service.APIKey),
		textdex.WithTimeout(time.Duration(cfg.Service.TimeoutSec)*time.Second),
	)
	if err != nil {
		logger.Fatal("Failed to create client", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logpkg.ContextWithLogger(ctx, logger)

	start := time.Now()
	if err := run(ctx, client, args); err != nil {
		logger.Fatal("Command failed",
			zap.String("command", args[0]),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
	}
	logger.Debug("Command completed",
		zap.String("command", args[0]),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func run(ctx context.Context, client *textdex.Client, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "health":
		status, err := client.Health(ctx)
		if err != nil {
			return err
		}
		return printJSON(status)

	case "version":
		v, err := client.Version(ctx)
		if err != nil {
			return err
		}
		return printJSON(v)

	case "get":
		if len(rest) != 2 {
			return fmt.Errorf("usage: textdex get <index> <id>")
		}
		doc, err := client.Index(rest[0]).GetDocument(ctx, rest[1])
		if err != nil {
			return err
		}
		return printJSON(doc)

	case "list":
		if len(rest) < 1 || len(rest) > 2 {
			return fmt.Errorf("usage: textdex list <index> [limit]")
		}
		limit := 0
		if len(rest) == 2 {
			n, err := strconv.Atoi(rest[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", rest[1], err)
			}
			limit = n
		}
		docs, err := client.Index(rest[0]).GetDocuments(ctx, limit)
		if err != nil {
			return err
		}
		return printJSON(docs)

	case "add":
		return writeDocuments(ctx, client, rest, "add")

	case "update":
		return writeDocuments(ctx, client, rest, "update")

	case "delete":
		if len(rest) != 2 {
			return fmt.Errorf("usage: textdex delete <index> <id>")
		}
		update, err := client.Index(rest[0]).DeleteDocument(ctx, rest[1])
		if err != nil {
			return err
		}
		return printJSON(update)

	case "delete-all":
		if len(rest) != 1 {
			return fmt.Errorf("usage: textdex delete-all <index>")
		}
		update, err := client.Index(rest[0]).DeleteAllDocuments(ctx)
		if err != nil {
			return err
		}
		return printJSON(update)

	case "search":
		if len(rest) < 2 || len(rest) > 3 {
			return fmt.Errorf("usage: textdex search <index> <query> [limit]")
		}
		var opts *textdex.SearchOptions
		if len(rest) == 3 {
			n, err := strconv.Atoi(rest[2])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", rest[2], err)
			}
			opts = &textdex.SearchOptions{Limit: n}
		}
		res, err := client.Index(rest[0]).Search(ctx, rest[1], opts)
		if err != nil {
			return err
		}
		return printJSON(res)

	case "updates":
		if len(rest) != 1 {
			return fmt.Errorf("usage: textdex updates <index>")
		}
		updates, err := client.Index(rest[0]).GetUpdates(ctx)
		if err != nil {
			return err
		}
		return printJSON(updates)

	case "update-status":
		if len(rest) != 2 {
			return fmt.Errorf("usage: textdex update-status <index> <id>")
		}
		id, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid update id %q: %w", rest[1], err)
		}
		update, err := client.Index(rest[0]).GetUpdate(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(update)

	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

// writeDocuments reads a JSON payload from a file (or stdin for "-")
// and sends it with POST (add) or PUT (update) semantics.
func writeDocuments(ctx context.Context, client *textdex.Client, rest []string, verb string) error {
	if len(rest) != 2 {
		return fmt.Errorf("usage: textdex %s <index> <file.json|->", verb)
	}

	payload, err := readPayload(rest[1])
	if err != nil {
		return err
	}
	logpkg.FromContext(ctx).Debug("Sending documents",
		zap.String("index", rest[0]),
		zap.String("verb", verb),
		zap.Int("payload_bytes", len(payload)),
	)

	idx := client.Index(rest[0])
	var update textdex.Update
	if verb == "add" {
		update, err = idx.AddDocuments(ctx, payload)
	} else {
		update, err = idx.UpdateDocuments(ctx, payload)
	}
	if err != nil {
		return err
	}
	return printJSON(update)
}

func readPayload(path string) (json.RawMessage, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("payload %s is not valid JSON", path)
	}
	return json.RawMessage(data), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
