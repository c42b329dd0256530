// Locate command: one-shot current position.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ramenreality/internal/geoloc"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show the configured current position",
	Long: `Locate reports the home coordinate configured via home_lat and
home_lng in config.yaml. Without one, a notice is printed; nothing fails.

Example:
  ramen locate`,
	RunE: runLocate,
}

func runLocate(cmd *cobra.Command, args []string) error {
	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	sess := newSession(st)
	loc, err := sess.Locate(cmd.Context())
	if errors.Is(err, geoloc.ErrUnavailable) {
		fmt.Println("無法取得您的位置，請在 config.yaml 設定 home_lat / home_lng。")
		return nil
	}
	if err != nil {
		return fmt.Errorf("locate: %w", err)
	}

	if flagJSON {
		return printJSON(loc)
	}
	fmt.Printf("目前位置: (%.4f, %.4f)\n", loc.Lat, loc.Lng)
	return nil
}
