// Command jsparse parses JavaScript files and prints the syntax tree, the token stream, or the diagnostics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/GuyLewin/meriyah"
	"github.com/GuyLewin/meriyah/js"
	"github.com/fsnotify/fsnotify"
	"github.com/peterh/liner"
	"golang.org/x/sync/errgroup"
)

type config struct {
	js.Options
	recover bool
	tokens  bool
}

func main() {
	var cfg config
	var watch, repl bool
	flag.BoolVar(&cfg.Module, "module", false, "parse as module code")
	flag.BoolVar(&cfg.Next, "next", false, "enable proposed syntax")
	flag.BoolVar(&cfg.Ranges, "ranges", false, "record source ranges on nodes")
	flag.BoolVar(&cfg.Raw, "raw", false, "keep raw literal text")
	flag.BoolVar(&cfg.WebCompat, "webcompat", false, "enable Annex B syntax")
	flag.BoolVar(&cfg.JSX, "jsx", false, "enable JSX")
	flag.BoolVar(&cfg.recover, "recover", false, "report every error and keep parsing")
	flag.BoolVar(&cfg.tokens, "tokens", false, "print the token stream")
	flag.BoolVar(&watch, "watch", false, "reparse files when they change")
	flag.BoolVar(&repl, "repl", false, "read and parse lines interactively")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jsparse: ")

	if repl {
		if err := runREPL(cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		out, err := render(cfg, string(b))
		fmt.Print(out)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := parseFiles(context.Background(), os.Stdout, cfg, files); err != nil {
		log.Println(err)
		if !watch {
			os.Exit(1)
		}
	}
	if watch {
		if err := watchFiles(cfg, files); err != nil {
			log.Fatal(err)
		}
	}
}

// render parses source and returns the printed output. Without -recover, the first syntax error is returned.
func render(cfg config, source string) (string, error) {
	sb := strings.Builder{}
	o := cfg.Options
	if cfg.tokens {
		o.OnToken = func(tok js.Token, start, end int) {
			fmt.Fprintf(&sb, "%s %d-%d %q\n", tok, start, end, source[start:end])
		}
	}
	var msgs []string
	if cfg.recover {
		o.OnError = func(msg string) {
			msgs = append(msgs, msg)
		}
	}

	ast, err := js.ParseString(source, o)
	if err != nil {
		return sb.String(), err
	}
	for _, msg := range msgs {
		sb.WriteString("error: ")
		sb.WriteString(msg)
		sb.WriteString("\n")
	}
	if !cfg.tokens {
		sb.WriteString(ast.String())
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// parseFiles parses all files concurrently and writes their output in argument order. The syntax errors of all
// files are joined in the returned error.
func parseFiles(ctx context.Context, w io.Writer, cfg config, files []string) error {
	outs := make([]string, len(files))
	errs := make([]error, len(files))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, filename := range files {
		i, filename := i, filename
		g.Go(func() error {
			b, err := os.ReadFile(filename)
			if err != nil {
				return err
			}
			outs[i], errs[i] = render(cfg, string(b))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed []error
	for i, filename := range files {
		if 1 < len(files) {
			fmt.Fprintf(w, "== %s\n", filename)
		}
		fmt.Fprint(w, outs[i])
		if errs[i] != nil {
			failed = append(failed, fmt.Errorf("%s: %w", filename, errs[i]))
		}
	}
	return errors.Join(failed...)
}

func watchFiles(cfg config, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	for _, filename := range files {
		if err := w.Add(filename); err != nil {
			return err
		}
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Printf("%s changed", ev.Name)
			if err := parseFiles(context.Background(), os.Stdout, cfg, []string{ev.Name}); err != nil {
				log.Println(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Println(err)
		}
	}
}

func runREPL(cfg config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	for {
		source, ok := readSource(ln, cfg)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(source) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))

		out, err := render(cfg, source)
		fmt.Print(out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// readSource reads lines until they parse or fail before the end of the input.
func readSource(ln *liner.State, cfg config) (string, bool) {
	sb := strings.Builder{}
	for {
		prompt := "> "
		if sb.Len() != 0 {
			prompt = ". "
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) && sb.Len() != 0 {
				return "", true
			}
			return "", false
		}
		if sb.Len() != 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		source := sb.String()
		if !incomplete(cfg, source) {
			return source, true
		}
	}
}

// incomplete returns true if source fails to parse only because the input ended.
func incomplete(cfg config, source string) bool {
	o := cfg.Options
	o.OnError = nil
	_, err := js.ParseString(source, o)
	var perr *meriyah.Error
	return errors.As(err, &perr) && len(source) <= perr.Offset
}
