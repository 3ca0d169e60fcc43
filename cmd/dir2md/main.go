package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IsaacBreen/dir2md/internal/clipboard"
	"github.com/IsaacBreen/dir2md/internal/config"
	"github.com/IsaacBreen/dir2md/internal/markdown"
	"github.com/IsaacBreen/dir2md/internal/reader"
	"github.com/IsaacBreen/dir2md/internal/token"
	"github.com/IsaacBreen/dir2md/internal/ui"
	"github.com/IsaacBreen/dir2md/internal/writer"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "dir2md",
	Short: "Round-trip files and markdown documents",
	Long: `Package a set of source files into a single markdown document of
fenced code blocks annotated with file paths, and reconstruct the
files from such a document later.

  dir2md pack src/**/*.go > project.md
  dir2md unpack -f project.md -d out/`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var packCmd = &cobra.Command{
	Use:     "pack [files...]",
	Aliases: []string{"dir2md"},
	Short:   "Embed files as fenced code blocks in one markdown document",
	Long: `Reads each file (or glob pattern) and emits one markdown document with
a fenced code block per file, annotated with the file's path.

A trailing bracketed suffix on a reference selects lines or characters
before embedding, e.g. main.py[2:5] or log.txt[char=0:80, -1].`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPack,
}

var unpackCmd = &cobra.Command{
	Use:     "unpack",
	Aliases: []string{"md2dir"},
	Short:   "Reconstruct files from a markdown document",
	Long: `Parses a markdown document (from stdin, a file, or the clipboard),
resolves the path annotation of every fenced code block, and writes each
block to its path under the output directory after showing what will be
created or overwritten.`,
	Args: cobra.NoArgs,
	RunE: runUnpack,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)

	rootCmd.PersistentFlags().String("path-location", "", "Path annotation location: above, below")
	rootCmd.PersistentFlags().String("path-template", "", `One-slot pattern for path lines (default "{}")`)

	packCmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	packCmd.Flags().Bool("copy", false, "Copy the document to the clipboard")
	packCmd.Flags().Bool("no-glob", false, "Treat file arguments literally instead of as glob patterns")
	packCmd.Flags().Bool("no-tokens", false, "Omit token estimates from fence info strings")
	packCmd.Flags().Bool("ignore-missing", false, "Skip references that match no files")

	unpackCmd.Flags().StringP("file", "f", "", "Read the markdown document from a file instead of stdin")
	unpackCmd.Flags().Bool("paste", false, "Read the markdown document from the clipboard")
	unpackCmd.Flags().StringP("output-dir", "d", "", "Directory to unpack into")
	unpackCmd.Flags().BoolP("yes", "y", false, "Write without confirmation")
	unpackCmd.Flags().Bool("ignore-missing-path", false, "Drop code blocks without a resolvable path")
	unpackCmd.Flags().String("on-unclosed", "", "Unclosed final block policy: proceed, omit-last-line, skip, error")
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// commonOptions resolves the flags and config shared by pack and unpack.
func commonOptions(cmd *cobra.Command) (*markdown.PathTemplate, markdown.PathLocation, error) {
	pattern := config.GetPathTemplate()
	if s, _ := cmd.Flags().GetString("path-template"); s != "" {
		pattern = s
	}
	tmpl, err := markdown.NewPathTemplate(pattern)
	if err != nil {
		return nil, "", err
	}

	locStr := config.GetPathLocation()
	if s, _ := cmd.Flags().GetString("path-location"); s != "" {
		locStr = s
	}
	loc, ok := markdown.ParsePathLocation(locStr)
	if !ok {
		return nil, "", fmt.Errorf("invalid path location %q (want above or below)", locStr)
	}

	return tmpl, loc, nil
}

func runPack(cmd *cobra.Command, args []string) error {
	tmpl, loc, err := commonOptions(cmd)
	if err != nil {
		return err
	}

	glob := config.GetGlob()
	if noGlob, _ := cmd.Flags().GetBool("no-glob"); noGlob {
		glob = false
	}
	ignoreMissing := config.GetIgnoreMissingSource()
	if b, _ := cmd.Flags().GetBool("ignore-missing"); b {
		ignoreMissing = true
	}

	est := token.NewEstimator()
	records, err := reader.Collect(args, reader.Options{
		Glob:          glob,
		IgnoreMissing: ignoreMissing,
		Estimator:     est,
	})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no files matched")
	}

	includeTokens := config.GetTokens()
	if noTokens, _ := cmd.Flags().GetBool("no-tokens"); noTokens {
		includeTokens = false
	}

	formatter := markdown.NewFormatter(markdown.FormatOptions{
		Template:      tmpl,
		Location:      loc,
		IncludeTokens: includeTokens,
	})
	doc := formatter.FormatAll(records)

	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := clipboard.Copy(doc); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Copied %d file(s) to the clipboard\n", len(records))
		return nil
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		return os.WriteFile(output, []byte(doc), 0o644)
	}
	fmt.Print(doc)
	return nil
}

func runUnpack(cmd *cobra.Command, args []string) error {
	tmpl, loc, err := commonOptions(cmd)
	if err != nil {
		return err
	}

	paste, _ := cmd.Flags().GetBool("paste")
	file, _ := cmd.Flags().GetString("file")
	if paste && file != "" {
		return fmt.Errorf("cannot use both --paste and --file")
	}

	var text string
	switch {
	case paste:
		text, err = clipboard.Paste()
		if err != nil {
			return err
		}
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		text = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(data)
	}

	ignoreMissingPath := config.GetIgnoreMissingPath()
	if b, _ := cmd.Flags().GetBool("ignore-missing-path"); b {
		ignoreMissingPath = true
	}

	policyStr := config.GetOnUnclosed()
	if s, _ := cmd.Flags().GetString("on-unclosed"); s != "" {
		policyStr = s
	}
	policy, err := markdown.ParseUnclosedPolicy(policyStr)
	if err != nil {
		return err
	}

	est := token.NewEstimator()
	parser := markdown.NewParser(markdown.ParseOptions{
		Template:          tmpl,
		Location:          loc,
		IgnoreMissingPath: ignoreMissingPath,
		Estimator:         est,
	})
	result, err := parser.Parse(text)
	if err != nil {
		return err
	}
	if err := result.ApplyUnclosedPolicy(policy, est); err != nil {
		return err
	}

	if result.SkippedMissingPath > 0 {
		ui.PrintWarning("skipped %d code block(s) with no resolvable path", result.SkippedMissingPath)
	}
	if len(result.Records) == 0 {
		return fmt.Errorf("no file blocks found in the document")
	}

	outputDir := config.GetOutputDir()
	if d, _ := cmd.Flags().GetString("output-dir"); d != "" {
		outputDir = d
	}

	plan := writer.BuildPlan(result.Records, outputDir)
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		ok, err := ui.ConfirmPlan(plan, outputDir)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Aborted.")
			return nil
		}
	}

	for _, rec := range result.Records {
		fmt.Fprintf(os.Stderr, "Writing %s\n", filepath.Join(outputDir, filepath.FromSlash(rec.Path)))
	}
	return writer.Write(result.Records, outputDir)
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(err)
		os.Exit(1)
	}
}
