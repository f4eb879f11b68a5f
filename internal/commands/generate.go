// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arahalevich-move/aws-lambda-events/internal/cmdctx"
	"github.com/arahalevich-move/aws-lambda-events/internal/gosource"
	"github.com/arahalevich-move/aws-lambda-events/internal/prompts"
	"github.com/arahalevich-move/aws-lambda-events/internal/translate"
)

type generateOptions struct {
	format    string
	output    string
	overwrite bool
}

func registerGenerateCmd(parent *cobra.Command, translators translate.Register) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Translate Go event definitions to a target format",
		Long: fmt.Sprintf(`Translate Go event definitions to a target format.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode (select files in the current directory)
  eventgen generate

  # Translate specific files
  eventgen generate events/s3.go events/sns.go --output src/generated

  # Replace previously generated files
  eventgen generate events/s3.go --overwrite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "rust",
		fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "generated", "Output directory")
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Replace existing output files")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions, args []string) error {
	run, err := cmdctx.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	// Flags win over eventgen.yaml; the config fills in whatever the
	// command line leaves unset.
	inputs := args
	formatSet := cmd.Flags().Changed("format")
	if cfg := run.Config; cfg != nil {
		if len(inputs) == 0 {
			inputs = cfg.Inputs
		}
		if !formatSet && cfg.Format != "" {
			opts.format = cfg.Format
			formatSet = true
		}
		if !cmd.Flags().Changed("output") && cfg.Output != "" {
			opts.output = cfg.Output
		}
		if !cmd.Flags().Changed("overwrite") {
			opts.overwrite = cfg.Overwrite
		}
	}

	if len(inputs) == 0 {
		files, globErr := filepath.Glob("*.go")
		if globErr != nil {
			return globErr
		}
		inputs, err = prompts.RunSourceFileSelect(files)
		if err != nil {
			return err
		}
		if !formatSet {
			if err := prompts.RunFormatSelect(&opts.format, translators.Available()); err != nil {
				return err
			}
		}
	}

	translator, err := translators.Get(opts.format)
	if err != nil {
		return err
	}
	if la, ok := translator.(translate.LoggerAware); ok {
		translator = la.WithLogger(run.Log)
	}

	if err := os.MkdirAll(opts.output, 0o750); err != nil {
		return errors.Wrapf(err, "creating output directory %s", opts.output)
	}

	// Input files are independent of each other; fan out across them.
	// Each single translation stays strictly synchronous, and the
	// first failure cancels the siblings still waiting to start.
	g, ctx := errgroup.WithContext(cmd.Context())
	written := make([]string, len(inputs))
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			outPath, genErr := generateOne(ctx, run.Log, translator, input, opts)
			if genErr != nil {
				return genErr
			}
			written[i] = outPath
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fields := make([]prompts.ResultField, 0, len(written)+1)
	fields = append(fields, prompts.ResultField{Label: "Format", Value: translator.Name()})
	for _, outPath := range written {
		fields = append(fields, prompts.ResultField{Label: "Generated", Value: outPath})
	}
	prompts.PrintResult(fields, fmt.Sprintf("Translated %d file(s)", len(written)))

	return nil
}

func generateOne(ctx context.Context, log *zap.SugaredLogger, translator translate.Translator, input string, opts *generateOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := gosource.Load(input)
	if err != nil {
		return "", err
	}

	gathered, err := translate.Gather(src)
	if err != nil {
		return "", err
	}

	code, err := translator.Translate(gathered)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(input), ".go")
	outPath := filepath.Join(opts.output, base+translator.FileExtension())

	if !opts.overwrite {
		if _, statErr := os.Stat(outPath); statErr == nil {
			return "", errors.Newf("%s already exists (use --overwrite)", outPath)
		}
	}

	if err := os.WriteFile(outPath, code, 0o644); err != nil { //nolint:gosec // generated source
		return "", errors.Wrapf(err, "writing %s", outPath)
	}

	log.Infow("generated", "input", input, "output", outPath, "declarations", len(gathered.Decls))
	return outPath, nil
}
