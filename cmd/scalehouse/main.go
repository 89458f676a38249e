package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	jobscmd "scalehouse/internal/interfaces/cli/jobs"
	migratecmd "scalehouse/internal/interfaces/cli/migrate"
	servercmd "scalehouse/internal/interfaces/cli/server"
)

func main() {
	root := &cobra.Command{
		Use:   "scalehouse",
		Short: "Dump ticket issuance and reporting for the scale house",
	}

	root.AddCommand(
		servercmd.NewCommand(),
		migratecmd.NewCommand(),
		jobscmd.NewCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
