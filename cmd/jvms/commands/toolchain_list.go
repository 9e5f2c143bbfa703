package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var toolchainListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered toolchains",
	Long:  `List every registered toolchain with its JAVA_HOME. The default toolchain is marked.`,
	Example: `  # List toolchains
  jvms toolchain list

See Also: jvms toolchain add, jvms default`,
	RunE: runToolchainList,
}

func runToolchainList(_ *cobra.Command, _ []string) error {
	_, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	names := cfg.Names()
	if len(names) == 0 {
		fmt.Println("No toolchains registered.")
		return nil
	}

	nameColor := color.New(color.FgCyan, color.Bold)
	homeColor := color.New(color.FgHiBlack)

	fmt.Println("Registered toolchains:")
	for _, name := range names {
		tc, _ := cfg.Toolchain(name)
		marker := " "
		if name == cfg.Default {
			marker = "*"
		}
		fmt.Printf("%s %s  %s\n", marker, nameColor.Sprint(name), homeColor.Sprint(tc.JavaHome))
	}
	return nil
}
