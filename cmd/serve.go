package cmd

import (
	"github.com/jsphweid/chordlens/constants"
	"github.com/jsphweid/chordlens/server"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (default from PORT, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort == "" {
			servePort = constants.GetPort()
		}
		return server.Serve(":" + servePort)
	},
}
