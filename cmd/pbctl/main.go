package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/glasspane/pasteboard"
	"github.com/glasspane/pasteboard/internal/ctxlog"
	"github.com/glasspane/pasteboard/internal/lock"
	"github.com/glasspane/pasteboard/internal/metadata"
	"github.com/glasspane/pasteboard/internal/notification"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

const helpMsg = `pbctl - typed access to the system pasteboard

Usage:
	pbctl <command> [flags] [args]

Commands:
	copy [text]        put text on the board (reads stdin when no argument)
	paste              print the board's value for --type
	copy-files <p>...  put file URLs for the given paths on the board
	urls               print the file URLs currently on the board
	paths              print the file paths currently on the board
	types              print the content kinds currently on the board
	clear              empty the board
	watch              log every board change until interrupted
	version            print build information

Flags:
`

type action struct {
	board    string
	kind     string
	maxSize  string
	interval time.Duration

	notify  bool
	verbose bool
}

func parseFlags() (string, []string, action) {
	var act action

	flag.StringVarP(&act.board, "board", "b", "", "Named board to address instead of the general one")
	flag.StringVarP(&act.kind, "type", "t", "string", "Content kind for copy/paste (see: pbctl types)")
	flag.StringVar(&act.maxSize, "max-size", "16MiB", "Largest stdin payload copy accepts")
	flag.DurationVar(&act.interval, "interval", 500*time.Millisecond, "Watch poll interval")
	flag.BoolVar(&act.notify, "notify", false, "Send a desktop notification on every watched change")
	flag.BoolVar(&act.verbose, "verbose", false, "Verbose logs")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpMsg)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		return "", nil, act
	}
	return args[0], args[1:], act
}

func main() {
	cmd, args, act := parseFlags()

	applyTagsOverrides(&act)
	logger := initLogger(act.verbose)
	if act.board != "" {
		logger = ctxlog.Board(logger, act.board)
	}

	if cmd == "" {
		flag.Usage()
		os.Exit(2)
	}

	if cmd == "version" {
		logger.Info().
			Str("v", metadata.Version).
			Str("commit_hash", metadata.CommitHash).
			Str("build_time", metadata.BuildTime).
			Send()
		return
	}

	board := openBoard(act, logger)
	defer board.Release()

	switch cmd {
	case "copy":
		runCopy(board, args, act, logger)
	case "paste":
		runPaste(board, act, logger)
	case "copy-files":
		if len(args) == 0 {
			logger.Fatal().Msg("copy-files needs at least one path")
		}
		board.CopyFiles(args)
	case "urls":
		urls, err := board.FileURLs()
		if err != nil {
			fatalServerError(logger, err)
		}
		for _, u := range urls {
			fmt.Println(u)
		}
	case "paths":
		paths, err := board.FilePaths()
		if err != nil {
			fatalServerError(logger, err)
		}
		for _, p := range paths {
			fmt.Println(p)
		}
	case "types":
		for _, t := range board.Types() {
			fmt.Printf("%s\t%s\n", t, t.UTI())
		}
	case "clear":
		board.ClearContents()
	case "watch":
		runWatch(board, act, logger)
	default:
		logger.Fatal().Str("command", cmd).Msg("unknown command")
	}
}

func openBoard(act action, logger zerolog.Logger) *pasteboard.Pasteboard {
	opts := []pasteboard.Option{
		pasteboard.WithLogger(logger),
		pasteboard.WithPollInterval(act.interval),
	}
	if act.board != "" {
		return pasteboard.Named(pasteboard.Name(act.board), opts...)
	}
	return pasteboard.Default(opts...)
}

func parseKind(raw string, logger zerolog.Logger) pasteboard.Type {
	for _, t := range pasteboard.RegisteredTypes() {
		if t.String() == raw {
			return t
		}
	}
	logger.Fatal().Str("type", raw).Msg("unknown content kind")
	return pasteboard.TypeString
}

func runCopy(board *pasteboard.Pasteboard, args []string, act action, logger zerolog.Logger) {
	kind := parseKind(act.kind, logger)

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		maxSize, err := humanize.ParseBytes(act.maxSize)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid max-size format")
		}
		payload, err := io.ReadAll(io.LimitReader(os.Stdin, int64(maxSize)+1))
		if err != nil {
			logger.Fatal().Err(err).Msg("read stdin")
		}
		if uint64(len(payload)) > maxSize {
			logger.Fatal().Str("max_size", act.maxSize).Msg("stdin payload exceeds max-size")
		}
		text = string(payload)
	}

	board.Copy(text, kind)
}

func runPaste(board *pasteboard.Pasteboard, act action, logger zerolog.Logger) {
	value, ok := board.ReadString(parseKind(act.kind, logger))
	if !ok {
		os.Exit(1)
	}
	fmt.Print(value)
}

func fatalServerError(logger zerolog.Logger, err error) {
	var serverErr *pasteboard.ServerError
	if errors.As(err, &serverErr) {
		logger.Fatal().
			Int("code", serverErr.Code).
			Str("domain", serverErr.Domain).
			Msg(serverErr.Description)
	}
	logger.Fatal().Err(err).Msg("read pasteboard")
}

func runWatch(board *pasteboard.Pasteboard, act action, logger zerolog.Logger) {
	unlock := lock.Must(logger)
	defer unlock()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	notifier := notification.New(act.notify, "pbctl")

	updates := make(chan pasteboard.Change, 1)
	done := make(chan error, 1)
	go func() {
		done <- board.Watch(ctx, updates)
	}()

	for change := range updates {
		size := payloadSize(board)
		logger.Info().
			Object("change", change).
			Str("size", humanize.IBytes(size)).
			Msg("pasteboard changed")
		notifier.Notify("pasteboard changed (%s)", humanize.IBytes(size))
	}

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("watch failed")
	}
}

func payloadSize(board *pasteboard.Pasteboard) uint64 {
	var size uint64
	if text, ok := board.Text(); ok {
		size += uint64(len(text))
	}
	if urls, err := board.FileURLs(); err == nil {
		for _, u := range urls {
			size += uint64(len(u.String()))
		}
	}
	return size
}

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	if verbose {
		zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
			short := file
			for i := len(file) - 1; i > 0; i-- {
				if file[i] == '/' {
					short = file[i+1:]
					break
				}
			}
			file = short
			return fmt.Sprintf("%s:%d", file, line)
		}
		return zerolog.New(output).
			Level(zerolog.TraceLevel).
			With().
			Timestamp().
			Caller().
			Logger()
	}

	return zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}
