// Init command: first-run store initialization.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local store",
	Long: `Init creates the data directory and, on first run, seeds the demo
dataset (two shops, two tasting logs). Running init against existing data
is harmless: collections are only seeded when their file is absent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			return err
		}
		defer st.Detach()

		shops, err := st.Shops()
		if err != nil {
			return err
		}
		logs, err := st.Logs()
		if err != nil {
			return err
		}
		fmt.Printf("Store initialized: %d shop(s), %d log(s)\n", len(shops), len(logs))
		return nil
	},
}
