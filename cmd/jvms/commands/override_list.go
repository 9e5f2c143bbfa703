package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var overrideListCmd = &cobra.Command{
	Use:   "list",
	Short: "List directory overrides",
	Long: `List every directory override with its toolchain, in the order they
were registered. Overrides whose toolchain no longer exists are marked.`,
	Example: `  # List overrides
  jvms override list

See Also: jvms override set, jvms override clean`,
	RunE: runOverrideList,
}

func runOverrideList(_ *cobra.Command, _ []string) error {
	_, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	if len(cfg.Overrides) == 0 {
		fmt.Println("No overrides registered.")
		return nil
	}

	pathColor := color.New(color.FgCyan, color.Bold)
	nameColor := color.New(color.FgHiBlack)
	dangling := color.New(color.FgYellow)

	fmt.Println("Registered overrides:")
	for _, o := range cfg.Overrides {
		if cfg.HasToolchain(o.Toolchain) {
			fmt.Printf("  %s  %s\n", pathColor.Sprint(o.Path), nameColor.Sprint(o.Toolchain))
		} else {
			fmt.Printf("  %s  %s %s\n", pathColor.Sprint(o.Path), nameColor.Sprint(o.Toolchain),
				dangling.Sprint("(missing toolchain)"))
		}
	}
	return nil
}
