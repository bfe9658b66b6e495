// 12 Oct 2026

// Package common holds the few things every tool needs: exit codes,
// where to send log output and a helper for writing test files.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// LogWhere decides where to send logged output. An empty string throws
// it away, "stdout" means standard output, anything else is a file name
// we append to.
func LogWhere(outinfo string) (*log.Logger, error) {
	var iowriter io.Writer
	switch outinfo {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("creating log file: %w", err)
		}
	}
	return log.New(iowriter, "", log.Lshortfile), nil
}

// OutWriter gives a writer for results. "-" and "" mean standard
// output. The returned function closes the file, if there is one.
func OutWriter(fname string) (io.Writer, func() error, error) {
	if fname == "-" || fname == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output %s: %w", fname, err)
	}
	return fp, fp.Close, nil
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
// The suffix matters, since readers look at it to guess formats.
func WrtTemp(s, suffix string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing*"+suffix)
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// SplitList breaks "CA,CB" into its parts. Empty gives nil.
func SplitList(s string) []string {
	var ret []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			ret = append(ret, t)
		}
	}
	return ret
}
