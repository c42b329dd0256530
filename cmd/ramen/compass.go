// Compass command: spin for a bowl worth revisiting.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ramenreality/internal/compass"
	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

var compassCmd = &cobra.Command{
	Use:   "compass",
	Short: "Spin the compass for a bowl to revisit",
	Long: `Compass picks one of your 4-star-and-up bowls at random and points
you at its shop. The pick is made the moment you spin; the wait is just
for drama.

Example:
  ramen compass
  ramen compass --json`,
	RunE: runCompass,
}

func runCompass(cmd *cobra.Command, args []string) error {
	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	sess := newSession(st)
	if err := sess.SpinCompass(); err != nil {
		if errors.Is(err, compass.ErrNoEligibleLogs) {
			fmt.Println("還沒有足夠的 4 星以上美味紀錄！快去探索並紀錄更多拉麵吧。")
			return nil
		}
		return fmt.Errorf("spin compass: %w", err)
	}

	if !flagJSON {
		fmt.Print("命運旋轉中")
	}
	for sess.CompassState() != compass.StateSettled {
		if !flagJSON {
			fmt.Print(".")
		}
		time.Sleep(200 * time.Millisecond)
	}
	if !flagJSON {
		fmt.Println()
	}

	result, err := sess.CommitCompass()
	if errors.Is(err, compass.ErrShopGone) {
		fmt.Println("選中的店家已不存在，再轉一次吧。")
		return nil
	}
	if err != nil {
		return fmt.Errorf("commit compass: %w", err)
	}

	if flagJSON {
		return printJSON(result)
	}
	printCompassResult(result)
	return nil
}

// printCompassResult prints the chosen shop and bowl with its coordinate
// for navigation.
func printCompassResult(result types.CompassResult) {
	fmt.Printf("神之指引: %s\n", result.Shop.Name)
	fmt.Printf("  ★ %s (★%.1f)\n", result.Bowl.ItemName, result.Bowl.Rating)
	fmt.Printf("  %s (%.4f, %.4f)\n",
		result.Shop.Address, result.Shop.Location.Lat, result.Shop.Location.Lng)
}
