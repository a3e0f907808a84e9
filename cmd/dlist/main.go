package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rapidmidiex/linkedlist/internal/cmd"
	"github.com/rapidmidiex/linkedlist/internal/cmd/config"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		log.Fatalln(err)
	}

	if err := initCLI().Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func initCLI() *cli.App {
	c := &cli.App{
		EnableBashCompletion: true,
		Name:                 "dlist",
		Usage:                "Doubly-linked list playground",
		Version:              cmd.Version,
		Compiled:             time.Now().UTC(),
		Action:               cmd.GetVersion,
		Before:               cmd.Before,
		Flags:                cmd.Flags,
		Commands:             cmd.Commands,
	}

	return c
}
