package command

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/dslx/cmd/options"
)

func TestService_importConfig(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	configURL := "mem://localhost/command/dslx.yaml"
	require.NoError(t, fs.Upload(ctx, configURL, file.DefaultFileOsMode, strings.NewReader("Workers: 3\n")))

	var useCases = []struct {
		description string
		opts        *options.Import
		expect      int
	}{
		{
			description: "workers from config",
			opts:        &options.Import{Session: options.Session{ConfigURL: configURL}},
			expect:      3,
		},
		{
			description: "workers flag overrides config",
			opts:        &options.Import{Session: options.Session{ConfigURL: configURL}, Workers: 6},
			expect:      6,
		},
		{
			description: "session default without config",
			opts:        &options.Import{},
			expect:      4,
		},
	}
	service := NewWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	for _, useCase := range useCases {
		cfg, err := service.importConfig(ctx, useCase.opts)
		if !assert.NoError(t, err, useCase.description) {
			continue
		}
		assert.Equal(t, useCase.expect, service.newSession(cfg).Workers(), useCase.description)
	}
}
