// Command yafromstring converts textual tokens into typed values and prints
// their canonical form, or reports the tokens it rejects.
//
//	yafromstring --kind int8 -- -128 127 128
//	printf 'uint8 255\nchar "ж"\n' | yafromstring --stdin
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"

	"github.com/YaCodeDev/GoYaCliUtils/config"
	"github.com/YaCodeDev/GoYaCliUtils/valueparser"
	"github.com/YaCodeDev/GoYaCliUtils/yaargs"
	"github.com/YaCodeDev/GoYaCliUtils/yalogger"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

// maxLineSize bounds one --stdin line.
const maxLineSize = 16 << 20

type options struct {
	Kind      string `long:"kind" short:"k" default:"string" description:"Target kind of every positional token"`
	Stdin     bool   `long:"stdin" description:"Read \"<kind> <token>\" lines from standard input instead of positional tokens"`
	Quiet     bool   `long:"quiet" short:"q" description:"Print rejections only"`
	NoColor   bool   `long:"no-color" description:"Disable coloured output"`
	ListKinds bool   `long:"list-kinds" description:"Print the supported kinds and exit"`
}

type settings struct {
	LogLevel yalogger.Level `default:"warn"`
	NoColor  bool           `default:"false"`
}

// environment maps onto YAFROMSTRING_LOG_LEVEL and YAFROMSTRING_NO_COLOR.
type environment struct {
	Yafromstring settings
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	bootstrap := yalogger.NewBaseLogger(&yalogger.Config{
		Level:            yalogger.WarnLevel,
		DisableTimestamp: true,
		Output:           stderr,
	}).NewLogger()

	var env environment

	if err := config.LoadConfigStructFromEnvHandlingError(&env, bootstrap); err != nil {
		fmt.Fprintf(stderr, "Invalid environment: %v\n", err)

		return exitUsage
	}

	var opts options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "yafromstring"
	parser.Usage = "[OPTIONS] [--] [TOKEN...]"

	if option := parser.FindOptionByLongName("kind"); option != nil {
		option.Description += ", one of: " + strings.Join(valueparser.KindNames(), ", ")
	}

	tokens, err := parser.ParseArgs(args)
	if flags.WroteHelp(err) {
		fmt.Fprintln(stdout, err)

		return exitOK
	} else if err != nil {
		fmt.Fprintf(stderr, "Invalid options: %v\n", err)

		return exitUsage
	}

	if opts.ListKinds {
		fmt.Fprintln(stdout, strings.Join(valueparser.KindNames(), "\n"))

		return exitOK
	}

	log := yalogger.NewBaseLogger(&yalogger.Config{
		Level:            env.Yafromstring.LogLevel,
		DisableTimestamp: true,
		Output:           stderr,
	}).NewLogger()

	out := newPrinter(stdout, opts.NoColor || env.Yafromstring.NoColor, opts.Quiet)

	if opts.Stdin {
		return convertLines(stdin, out, log)
	}

	kind, kindErr := valueparser.ParseValue[valueparser.Kind](opts.Kind)
	if kindErr != nil {
		fmt.Fprintf(stderr, "Invalid options: %v\n", kindErr)

		return exitUsage
	}

	binder := yaargs.NewBinder(log.WithRandomRequestID(), 0)
	status := exitOK

	for i, token := range tokens {
		if !convert(kind, i, token, out, binder) {
			status = exitRejected
		}
	}

	return status
}

// convertLines handles --stdin: every non-blank line is "<kind> <token>" in
// shell quoting and gets its own request id in the log.
func convertLines(stdin io.Reader, out *printer, log yalogger.Logger) int {
	status := exitOK
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		binder := yaargs.NewBinder(log.WithRequestUUID(uuid.New()), 0)

		args, err := yaargs.SplitLine(scanner.Text())
		if err != nil {
			binder.Report(err)
			out.failure(err)

			status = exitRejected

			continue
		}

		if len(args) == 0 {
			continue
		}

		kind, token, bindErr := yaargs.Bind2[valueparser.Kind, string](args)
		if bindErr != nil {
			binder.Report(bindErr)
			out.failure(bindErr)

			status = exitRejected

			continue
		}

		if !convert(kind, 1, token, out, binder) {
			status = exitRejected
		}
	}

	if err := scanner.Err(); err != nil {
		log.Errorf("Failed to read standard input: %v", err)

		return exitUsage
	}

	return status
}

// convert parses token as kind and prints either its canonical form or the
// rejection. It reports whether the token was accepted.
func convert(kind valueparser.Kind, index int, token string, out *printer, binder *yaargs.Binder) bool {
	value, err := valueparser.ParseKind(kind, token)
	if err != nil {
		rejection := &yaargs.Rejection{
			Index: index,
			Token: token,
			Type:  kind.String(),
			Err:   err,
		}

		binder.Report(rejection)
		out.failure(rejection)

		return false
	}

	text, err := valueparser.Format(kind, value)
	if err != nil {
		binder.Report(err)
		out.failure(err)

		return false
	}

	out.success(text)

	return true
}
