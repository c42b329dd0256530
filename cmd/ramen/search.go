// Search command: merged local and remote place search.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ramenreality/internal/geocode"
	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

var searchAdd int

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search saved shops and new places",
	Long: `Search matches QUERY against your saved shops (by name or address)
and, for queries of two or more characters, against the remote place
search. Remote results are numbered; --add N pins result N as a new shop.

Example:
  ramen search 拉麵
  ramen search "Ichiran Taipei" --add 1`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchAdd, "add", 0, "pin remote result N as a new shop")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	sess := newSession(st)
	sess.SetQuery(query)

	local, err := sess.LocalResults()
	if err != nil {
		return fmt.Errorf("local search: %w", err)
	}

	// The remote side goes through the resolver's debounce window; a
	// one-shot command simply waits it out.
	remote, searching := sess.RemoteResults()
	for searching {
		time.Sleep(50 * time.Millisecond)
		remote, searching = sess.RemoteResults()
	}

	if flagJSON {
		return printJSON(struct {
			Local  []types.Shop     `json:"local"`
			Remote []geocode.Result `json:"remote"`
		}{local, remote})
	}

	if len(local) > 0 {
		fmt.Println("已儲存店家:")
		for _, shop := range local {
			fmt.Printf("  %s  %s (%s)\n", shop.ID, shop.Name, shop.Address)
		}
	}
	if len(remote) > 0 {
		fmt.Println("搜尋新地點:")
		for i, result := range remote {
			name := result.Name
			if name == "" {
				name = query
			}
			fmt.Printf("  %d. %s\n     %s\n", i+1, name, result.DisplayName)
		}
	}
	if len(local) == 0 && len(remote) == 0 {
		fmt.Println("找不到相關地點")
		return nil
	}

	if searchAdd > 0 {
		if searchAdd > len(remote) {
			return fmt.Errorf("no remote result %d", searchAdd)
		}
		// Staging prefills the draft from the picked result; confirming
		// with the same values actually creates the shop.
		draft, err := sess.PickRemoteResult(remote[searchAdd-1])
		if err != nil {
			return err
		}
		shop, err := sess.ConfirmAddShop(draft.Name, draft.Address)
		if err != nil {
			return fmt.Errorf("pin shop: %w", err)
		}
		fmt.Printf("Pinned shop: %s (%s)\n", shop.Name, shop.ID)
	}
	return nil
}
