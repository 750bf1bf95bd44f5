// Command regsinspect loads a named cell profile, builds its control-region
// REG table, and prints per-channel REG counts. It is a read-only
// inspection aid — the equivalent of gocat's cmd/lsys1 and
// cmd/ys1-dump-config tools — and sits outside the ctrlregs core package
// boundary; it never calls into the core's allocators directly, only its
// composite entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltestack/ctrlregs/pkg/cellprofile"
	"github.com/ltestack/ctrlregs/pkg/ctrlregion"
)

func main() {
	var profilePath string
	var cfi int

	rootCmd := &cobra.Command{
		Use:   "regsinspect",
		Short: "Inspect LTE downlink control-channel REG allocation for a cell profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(profilePath, cfi)
		},
	}

	rootCmd.Flags().StringVarP(&profilePath, "profile", "p", "profiles/lab-6prb.toml", "path to a cell profile TOML file")
	rootCmd.Flags().IntVarP(&cfi, "cfi", "c", 1, "control format indicator to report PDCCH sizing for (1-3)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func inspect(profilePath string, cfi int) error {
	profile, err := cellprofile.Load(profilePath)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	params, err := profile.Params()
	if err != nil {
		return fmt.Errorf("parsing profile %s: %w", profile.Name, err)
	}

	region, err := ctrlregion.Init(params)
	if err != nil {
		return fmt.Errorf("initialising control region: %w", err)
	}

	if err := region.SetCFI(cfi); err != nil {
		return fmt.Errorf("setting cfi: %w", err)
	}

	stats := region.Stats()

	fmt.Printf("profile:        %s (%s)\n", profile.Name, profile.Description)
	fmt.Printf("cell id:        %d\n", params.CellID)
	fmt.Printf("prb count:      %d\n", params.NumPRB)
	fmt.Printf("antenna ports:  %d\n", params.NumPorts)
	fmt.Printf("cyclic prefix:  %s\n", params.CP)
	fmt.Printf("phich length:   %s\n", params.PhichLen)
	fmt.Printf("phich resource: %s\n", params.PhichRes)
	fmt.Println()
	fmt.Printf("total regs:           %d\n", stats.TotalRegs)
	fmt.Printf("pcfich regs:          %d\n", stats.PCFICHRegs)
	fmt.Printf("phich regs/groups:    %d / %d\n", stats.PHICHRegs, stats.PHICHGroups)
	fmt.Printf("pdcch regs (cfi=%d):  %d\n", cfi, stats.PDCCHRegsByCFI[cfi-1])
	for i, n := range stats.PDCCHRegsByCFI {
		fmt.Printf("  cfi=%d -> %d regs (%d CCEs)\n", i+1, n, n/9)
	}

	return nil
}
