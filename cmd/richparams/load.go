package main

import (
	"context"
	"net/http"
	"time"

	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/schema"
	"github.com/goliatone/go-richparams/pkg/submission"
)

const fetchTimeout = 15 * time.Second

func newLoader() *schema.Loader {
	return schema.NewLoader(
		schema.WithHTTPClient(&http.Client{}),
		schema.WithRequestTimeout(fetchTimeout),
	)
}

func parseSource() (schema.Source, error) {
	if err := cfg.RequireSource(); err != nil {
		return nil, err
	}
	return schema.ParseSource(cfg.Source)
}

func loadParameters(ctx context.Context) ([]parameter.Schema, error) {
	src, err := parseSource()
	if err != nil {
		return nil, err
	}
	return newLoader().Load(ctx, src)
}

func loadValues() (map[string]string, error) {
	if cfg.ValuesFile == "" {
		return nil, nil
	}
	values, err := submission.LoadValuesFile(cfg.ValuesFile)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(values))
	for _, v := range values {
		out[v.Name] = v.Value
	}
	return out, nil
}
