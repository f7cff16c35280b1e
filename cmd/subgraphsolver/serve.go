package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"subgraphsolver/server"
)

func newServeCmd(log *logrus.Logger) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /solve over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.WithField("addr", addr).Info("listening")
			return http.ListenAndServe(addr, server.New(log).Mux())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}
