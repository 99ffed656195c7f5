// Package bmeta хранит метаданные сборки, переданные через -ldflags.
package bmeta

import (
	"fmt"
	"io"
)

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Info версия, дата и коммит сборки.
type Info struct {
	Version string
	Date    string
	Commit  string
}

// New подставляет N/A вместо незаданных значений.
func New(version, date, commit string) Info {
	return Info{
		Version: orDefault(version),
		Date:    orDefault(date),
		Commit:  orDefault(commit),
	}
}

// Print распечатывает версию, дату и коммит сборки в w.
func (i Info) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", i.Version, i.Date, i.Commit)
	if err != nil {
		return fmt.Errorf("print build meta: %w", err)
	}
	return nil
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
