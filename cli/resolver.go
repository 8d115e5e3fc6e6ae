package cli

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/arith/log"
)

// resolve returns a [kong.ConfigurationLoader] reading YAML configuration
// files. Flag values are taken from the mapping under the name key:
//
//	config:
//	  log-level: debug
//	  checked: true
//	  env: json
//
// Keys may use hyphens or underscores. Scalars other than booleans are passed
// to kong as strings, and sequences are joined with commas.
//
// An empty file, a file that is not valid YAML, or a file without the name
// key yields an empty configuration. Command-line flags override
// configuration values.
func resolve(name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).Decode(&doc)
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}

		if err != nil {
			log.Warn("ignoring invalid configuration",
				slog.String("namespace", name),
				slog.Any("error", err),
			)

			return config{}, nil
		}

		values, ok := doc[name].(map[string]any)
		if !ok {
			return config{}, nil
		}

		conf := make(config, len(values))
		for key, value := range values {
			if v := flagValue(value); v != nil {
				conf[key] = v
			}
		}

		return conf, nil
	}
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// Validate implements [kong.Resolver]. Unknown keys are reported as warnings.
func (r config) Validate(app *kong.Application) error {
	var known []string

	_ = kong.Visit(app, func(node kong.Visitable, next kong.Next) error {
		if flag, ok := node.(*kong.Flag); ok {
			known = append(known, normalize(flag.Name))
		}

		return next(nil)
	})

	for key := range r {
		if !slices.Contains(known, normalize(key)) {
			log.Warn("unknown configuration key", slog.String("key", key))
		}
	}

	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

func normalize(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// flagValue converts a decoded YAML value to the form kong parses flags from.
func flagValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case bool, string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := flagValue(item).(string); ok {
				items = append(items, s)
			} else if b, ok := item.(bool); ok {
				items = append(items, strconv.FormatBool(b))
			}
		}

		return strings.Join(items, ",")
	default:
		return nil
	}
}
