package main

import (
	"os"

	"github.com/lysyi3m/blog-search/app/cfg"
	"github.com/lysyi3m/blog-search/app/cli"
)

func main() {
	os.Exit(cli.Execute(cfg.GetVersion()))
}
