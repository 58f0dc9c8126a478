// Package config loads application configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Refdata   RefdataConfig   `yaml:"refdata" mapstructure:"refdata"`
	Contract  ContractConfig  `yaml:"contract" mapstructure:"contract"`
	Reconcile ReconcileConfig `yaml:"reconcile" mapstructure:"reconcile"`
	Outlier   OutlierConfig   `yaml:"outlier" mapstructure:"outlier"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// RefdataConfig points at the external reference tables. The land-price
// table may be the CSV or the XLSX distribution.
type RefdataConfig struct {
	GeoPath       string `yaml:"geo_path" mapstructure:"geo_path"`
	LandPricePath string `yaml:"land_price_path" mapstructure:"land_price_path"`
}

// ContractConfig sets the base date for absolute contract-end conversions.
type ContractConfig struct {
	BaseYear  int `yaml:"base_year" mapstructure:"base_year"`
	BaseMonth int `yaml:"base_month" mapstructure:"base_month"`
}

// ReconcileConfig configures target imputation.
type ReconcileConfig struct {
	Tolerance float64 `yaml:"tolerance" mapstructure:"tolerance"`
}

// OutlierConfig bounds plausible training rows.
type OutlierConfig struct {
	MaxAgeMonths  int     `yaml:"max_age_months" mapstructure:"max_age_months"`
	MaxUnitTarget float64 `yaml:"max_unit_target" mapstructure:"max_unit_target"`
}

// OutputConfig configures where cleaned tables are written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RENTPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("refdata.geo_path", "dataset/geoencoded_districts.csv")
	v.SetDefault("refdata.land_price_path", "dataset/jika_2019.csv")
	v.SetDefault("contract.base_year", 2019)
	v.SetDefault("contract.base_month", 4)
	v.SetDefault("reconcile.tolerance", 1.1)
	v.SetDefault("outlier.max_age_months", 1200)
	v.SetDefault("outlier.max_unit_target", 30000)
	v.SetDefault("output.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
