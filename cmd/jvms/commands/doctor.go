package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/jvms/internal/doctor"
	jvmserrors "github.com/thoreinstein/jvms/internal/errors"
)

var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the installation and configuration",
	Long: `Run diagnostic checks against the current installation: the shim
links, the registry, and which toolchain the shims would use from the
current directory. The command fails when any check reports an error.`,
	Example: `  # Check the current installation
  jvms doctor

  # Machine-readable report
  jvms doctor --json

See Also: jvms toolchain list, jvms override list`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	inst, err := currentInstallation()
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "getting working directory")
	}

	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewInstallationCheck(inst))
	runner.AddCheck(doctor.NewShimLinksCheck(inst))
	runner.AddCheck(doctor.NewRegistryCheck(inst.Store()))
	runner.AddCheck(doctor.NewResolutionCheck(inst.Store(), cwd))

	report := runner.Run()

	if doctorJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(report)
	}

	if report.HasErrors() {
		return jvmserrors.NewUserError(
			errors.Newf("%d check(s) failed", report.Summary.Errors),
			"Fix the reported problems and run jvms doctor again")
	}
	return nil
}

func printReport(report *doctor.Report) {
	statusColors := map[doctor.Severity]*color.Color{
		doctor.SeverityPass:    color.New(color.FgGreen),
		doctor.SeverityInfo:    color.New(color.FgCyan),
		doctor.SeverityWarning: color.New(color.FgYellow),
		doctor.SeverityError:   color.New(color.FgRed),
	}

	for _, r := range report.Results {
		fmt.Printf("%-8s %-14s %s\n", statusColors[r.Status].Sprint(r.Status), r.Name, r.Message)
		if r.Hint != "" {
			fmt.Printf("         %s\n", color.New(color.FgHiBlack).Sprint(r.Hint))
		}
	}

	fmt.Printf("\n%d passed, %d warning(s), %d error(s)\n",
		report.Summary.Passed, report.Summary.Warnings, report.Summary.Errors)
}
