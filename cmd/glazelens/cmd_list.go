package main

import (
	"github.com/spf13/cobra"

	"glazelens/internal/glaze"
)

var colorantsCmd = &cobra.Command{
	Use:   "colorants",
	Short: "List supported colorants and their visual characteristics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(glaze.Colorants())
	},
}

var fluxesCmd = &cobra.Command{
	Use:   "fluxes",
	Short: "List supported flux systems and their surface characteristics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(glaze.Fluxes())
	},
}
