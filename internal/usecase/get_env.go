package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/hostutil/internal/domain"
)

// GetEnvInput contains the parameters for looking up environment variables.
// Fields are ordered to minimize memory padding.
type GetEnvInput struct {
	Default  *string  // Value reported for unset variables; nil reports ""
	Keys     []string // Variable names (at least one)
	EnvFiles []string // Dotenv files consulted before the environment
}

// EnvVar is the result of a single lookup.
type EnvVar struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
	Set   bool   `json:"set" yaml:"set"`
}

// GetEnvOutput contains the lookup results in input order.
type GetEnvOutput struct {
	Vars []EnvVar
}

// GetEnv is the use case for reading environment variables with a fallback.
type GetEnv struct {
	env   domain.EnvReader
	files domain.EnvFileLoader
}

// NewGetEnv creates a new GetEnv use case.
func NewGetEnv(env domain.EnvReader, files domain.EnvFileLoader) *GetEnv {
	return &GetEnv{env: env, files: files}
}

// Execute looks up each key. Absence is not an error.
func (uc *GetEnv) Execute(_ context.Context, in GetEnvInput) (*GetEnvOutput, error) {
	if len(in.Keys) == 0 {
		return nil, domain.ErrEmptyKey
	}
	for _, k := range in.Keys {
		if k == "" {
			return nil, domain.ErrEmptyKey
		}
	}

	var reader domain.EnvReader = domain.LayeredEnv{uc.env}
	if len(in.EnvFiles) > 0 {
		fromFiles, err := uc.files.Load(in.EnvFiles...)
		if err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
		reader = domain.LayeredEnv{fromFiles, uc.env}
	}

	vars := make([]EnvVar, 0, len(in.Keys))
	for _, k := range in.Keys {
		v, ok := reader.Lookup(k)
		if !ok && in.Default != nil {
			v = *in.Default
		}
		vars = append(vars, EnvVar{Key: k, Value: v, Set: ok})
	}
	return &GetEnvOutput{Vars: vars}, nil
}
