package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"minigrep/internal/app"
)

// IgnoreCaseEnv switches to case-insensitive matching when no flag says otherwise.
const IgnoreCaseEnv = "IGNORE_CASE"

const usage = `minigrep - print lines containing a query.

Usage:
  minigrep <query> [<path>] [-i|--ignore-case | -ni|--no-ignore-case]

Arguments:
  query   literal text to look for
  path    file to search; standard input is read when omitted

Options:
  -i, --ignore-case       match regardless of case
  -ni, --no-ignore-case   match the exact case (default)
  -h, --help              print this help and exit
  --                      treat every following argument as positional

Environment:
  IGNORE_CASE     ignore case when set (except 0/false) unless -i or -ni is given
`

// ExitError carries the process exit code for a failed parse.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func configError(format string, args ...any) *ExitError {
	return &ExitError{
		Code:    2,
		Message: fmt.Sprintf(format, args...),
		Err:     app.ErrConfiguration,
	}
}

// Usage writes the help text.
func Usage(output io.Writer) {
	fmt.Fprint(output, usage)
}

// Parse turns command-line arguments into a SearchConfig. The boolean result
// is true when help was requested and the caller should exit cleanly.
// lookupEnv is consulted for IGNORE_CASE only when no case flag is present;
// a set IGNORE_CASE ignores case unless its value parses as false.
func Parse(args []string, lookupEnv func(string) (string, bool), output io.Writer) (*app.SearchConfig, bool, error) {
	var positional []string
	var caseFlag *bool // nil пока флаг не задан явно

	onlyPositional := false
	for _, arg := range args {
		if onlyPositional || arg == "-" || !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			continue
		}

		switch arg {
		case "--":
			onlyPositional = true
		case "-h", "--help":
			Usage(output)
			return nil, true, nil
		case "-i", "--ignore-case":
			v := true
			caseFlag = &v
		case "-ni", "--no-ignore-case":
			v := false
			caseFlag = &v
		default:
			return nil, false, configError("unknown flag: %s", arg)
		}
	}

	if len(positional) == 0 {
		return nil, false, configError("query not provided")
	}
	if len(positional) > 2 {
		return nil, false, configError("unexpected arguments: %s", strings.Join(positional[2:], " "))
	}

	source := app.StdinSource()
	if len(positional) == 2 {
		source = app.FileSource(positional[1])
	}

	ignoreCase := envIgnoreCase(lookupEnv)
	if caseFlag != nil {
		ignoreCase = *caseFlag
	}

	return &app.SearchConfig{
		Query:         positional[0],
		Source:        source,
		CaseSensitive: !ignoreCase,
	}, false, nil
}

func envIgnoreCase(lookupEnv func(string) (string, bool)) bool {
	if lookupEnv == nil {
		return false
	}
	v, ok := lookupEnv(IgnoreCaseEnv)
	if !ok {
		return false
	}
	// любое значение включает режим, кроме явного false/0
	on, err := strconv.ParseBool(strings.TrimSpace(v))
	return err != nil || on
}
