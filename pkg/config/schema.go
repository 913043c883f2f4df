package config

import (
	_ "embed"

	"github.com/macropower/turner/pkg/schema"
)

//go:embed config.v1beta1.json
var schemaJSON []byte

// DefaultValidator validates configuration against the embedded JSON schema.
var DefaultValidator = schema.MustNewValidator(schemaJSON)
