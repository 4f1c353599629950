package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/internal/api"
	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/home"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage folio configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the folio home directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := dir.EnsureExists(); err != nil {
			return fmt.Errorf("failed to create home directory: %w", err)
		}
		path := dir.ConfigPath()
		if dir.ConfigExists() {
			return fmt.Errorf("config file already exists at %s", path)
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		return api.Output(cm.Get())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
}
