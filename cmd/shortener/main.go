package main

import (
	"github.com/fsdevblog/shortlinks/internal/bmeta"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ...".
var (
	buildVersion string //nolint:gochecknoglobals
	buildDate    string //nolint:gochecknoglobals
	buildCommit  string //nolint:gochecknoglobals
)

func main() {
	cmd := newRootCmd(bmeta.New(buildVersion, buildDate, buildCommit))
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
