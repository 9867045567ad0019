// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/review-engine/pkg/types"
)

// pipelineDefaults decodes the loaded config file into the pipeline config.
// A missing or partial file leaves zero values; the per-stage resolvers
// below layer flags and application defaults on top.
func pipelineDefaults() types.PipelineConfig {
	var cfg types.PipelineConfig
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// analysisConfig resolves analysis settings: flags win over the config file.
func analysisConfig(cmd *cobra.Command) types.AnalysisConfig {
	cfg := pipelineDefaults().Analysis
	if v, _ := cmd.Flags().GetString("vocabulary"); v != "" {
		cfg.VocabularyFile = v
	}
	if n, _ := cmd.Flags().GetInt("max-keywords"); n > 0 {
		cfg.MaxKeywords = n
	}
	return cfg
}

// reviewConfig resolves review settings. Weights merge in three layers:
// application defaults, then the config file, then explicitly set flags.
func reviewConfig(cmd *cobra.Command) types.ReviewConfig {
	cfg := pipelineDefaults().Review
	if s, _ := cmd.Flags().GetString("style"); s != "" {
		cfg.Style = types.ReviewStyle(s)
	}
	if cfg.Style == "" {
		cfg.Style = types.StylePeerReview
	}
	if tf, _ := cmd.Flags().GetString("templates"); tf != "" {
		cfg.TemplateFile = tf
	}

	weights := types.DefaultWeights()
	for c, w := range cfg.Weights {
		weights[c] = w
	}
	for _, c := range types.Criteria {
		name := string(c)
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetInt(name)
			weights[c] = v
		}
	}
	cfg.Weights = weights
	return cfg
}

// batchConfig resolves batch settings for a scan of inputDir.
func batchConfig(cmd *cobra.Command, inputDir string) types.BatchConfig {
	cfg := pipelineDefaults().Batch
	cfg.InputDir = inputDir
	if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
		cfg.Workers = w
	}
	return cfg
}

// storeConfig resolves history-database settings.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	cfg := pipelineDefaults().Store
	if d, _ := cmd.Flags().GetString("data-dir"); d != "" {
		cfg.DataDir = d
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "reviews"
	}
	return cfg
}
