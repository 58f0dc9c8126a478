package main

import (
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arialab/rentprep/internal/dataset"
	"github.com/arialab/rentprep/internal/prep"
	"github.com/arialab/rentprep/internal/refdata"
)

var (
	preprocessTrainPath string
	preprocessTestPath  string
	preprocessOutDir    string
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Run the preprocessing pipeline over the raw train and test tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		geo, err := refdata.LoadGeo(cfg.Refdata.GeoPath)
		if err != nil {
			return eris.Wrap(err, "load geocode table")
		}
		land, err := refdata.LoadLandPrice(cfg.Refdata.LandPricePath)
		if err != nil {
			return eris.Wrap(err, "load land price table")
		}

		train, err := dataset.LoadListings(preprocessTrainPath, true)
		if err != nil {
			return eris.Wrap(err, "load train table")
		}
		test, err := dataset.LoadListings(preprocessTestPath, false)
		if err != nil {
			return eris.Wrap(err, "load test table")
		}

		p := &prep.Pipeline{
			Geo:                  geo,
			Land:                 land,
			ContractBaseYear:     cfg.Contract.BaseYear,
			ContractBaseMonth:    cfg.Contract.BaseMonth,
			ReconcileTolerance:   cfg.Reconcile.Tolerance,
			OutlierMaxAgeMonths:  cfg.Outlier.MaxAgeMonths,
			OutlierMaxUnitTarget: cfg.Outlier.MaxUnitTarget,
		}
		trainOut, testOut, err := p.Run(ctx, train, test)
		if err != nil {
			return err
		}

		outDir := preprocessOutDir
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		if err := dataset.WriteListings(filepath.Join(outDir, "train_features.csv"), trainOut); err != nil {
			return err
		}
		if err := dataset.WriteListings(filepath.Join(outDir, "test_features.csv"), testOut); err != nil {
			return err
		}

		zap.L().Info("preprocessing complete",
			zap.String("out_dir", outDir),
			zap.String("categorical_columns", strings.Join(prep.CategoricalColumns, ",")),
		)
		return nil
	},
}

func init() {
	preprocessCmd.Flags().StringVar(&preprocessTrainPath, "train", "dataset/train.csv", "raw train table path")
	preprocessCmd.Flags().StringVar(&preprocessTestPath, "test", "dataset/test.csv", "raw test table path")
	preprocessCmd.Flags().StringVar(&preprocessOutDir, "out-dir", "", "output directory (defaults to output.dir)")
	rootCmd.AddCommand(preprocessCmd)
}
