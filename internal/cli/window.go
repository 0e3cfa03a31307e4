package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxviazov/board-service/internal/pagination"
)

// NewWindowCmd creates the window command, which prints the pagination control for a position.
func NewWindowCmd() *cobra.Command {
	var (
		total   int
		current int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the page numbers a pagination control shows",
		Example: `  board window --total 20 --current 10
  1 … 9 [10] 11 … 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if total < 1 {
				return errors.New("--total must be >= 1")
			}
			items := pagination.ComputeWindow(total, current)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(items)
			}
			active := pagination.Clamp(current, total)
			parts := make([]string, 0, len(items))
			for _, it := range items {
				if !it.IsEllipsis() && it.Number() == active {
					parts = append(parts, "["+it.String()+"]")
					continue
				}
				parts = append(parts, it.String())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return err
		},
	}
	cmd.Flags().IntVar(&total, "total", 1, "total number of pages")
	cmd.Flags().IntVar(&current, "current", 1, "current page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print items as JSON")
	return cmd
}
