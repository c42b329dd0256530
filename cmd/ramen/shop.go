// Shop command group.
package main

import "github.com/spf13/cobra"

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Manage saved ramen shops",
}

func init() {
	shopCmd.AddCommand(shopAddCmd)
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopShowCmd)
}
