// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AnalysisConfig holds settings for the analysis stage.
type AnalysisConfig struct {
	// VocabularyFile optionally points to a YAML vocabulary pack that
	// replaces the built-in stop words and academic categories.
	VocabularyFile string `json:"vocabulary_file,omitempty" yaml:"vocabulary_file,omitempty" mapstructure:"vocabulary_file"`

	// MaxKeywords is the number of ranked keywords to keep (default 20).
	MaxKeywords int `json:"max_keywords" yaml:"max_keywords" mapstructure:"max_keywords"`

	// MinWordLength is the minimum keyword length (default 3).
	MinWordLength int `json:"min_word_length" yaml:"min_word_length" mapstructure:"min_word_length"`
}

// ReviewConfig holds settings for review generation.
type ReviewConfig struct {
	// Style selects the narrative template family (default "Peer Review").
	Style ReviewStyle `json:"style" yaml:"style" mapstructure:"style"`

	// Weights are the per-criterion importance weights on a 1-10 scale.
	Weights CriteriaWeights `json:"weights" yaml:"weights" mapstructure:"weights"`

	// TemplateFile optionally points to a YAML template pack that replaces
	// the built-in strength/weakness/suggestion templates.
	TemplateFile string `json:"template_file,omitempty" yaml:"template_file,omitempty" mapstructure:"template_file"`
}

// BatchConfig holds settings for batch analysis of a document directory.
type BatchConfig struct {
	// InputDir is the directory scanned for .pdf, .docx, and .txt files.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// Workers bounds concurrent document pipelines (default 4).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// StoreConfig holds settings for the review history database.
type StoreConfig struct {
	// DataDir is the directory containing the SQLite database file.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// MaxResults is the default maximum number of history rows (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// PipelineConfig groups all stage configurations. It mirrors the layout of
// the review-engine.yaml config file.
type PipelineConfig struct {
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis" mapstructure:"analysis"`
	Review   ReviewConfig   `json:"review" yaml:"review" mapstructure:"review"`
	Batch    BatchConfig    `json:"batch" yaml:"batch" mapstructure:"batch"`
	Store    StoreConfig    `json:"store" yaml:"store" mapstructure:"store"`
}
