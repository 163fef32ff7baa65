package configparser

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

const (
	envTag     = "env"
	defaultTag = "default"
)

// ParseEnv fills cfg (a pointer to a struct) from environment variables named by
// `env` tags, falling back to `default` tags. Nested structs must be tagged
// `env:",squash"`.
func ParseEnv(cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config target must be a pointer to struct, got %T", cfg)
	}

	input := make(map[string]any)
	collect(rv.Elem().Type(), input)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          envTag,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create config decoder: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("failed to bind config: %w", err)
	}

	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func collect(t reflect.Type, out map[string]any) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(field.Tag.Get(envTag), ",")
		if field.Type.Kind() == reflect.Struct && field.Type != durationType {
			if strings.Contains(opts, "squash") {
				collect(field.Type, out)
			}
			continue
		}
		if name == "" {
			continue
		}

		if value, ok := os.LookupEnv(name); ok && value != "" {
			out[name] = value
			continue
		}
		if def, ok := field.Tag.Lookup(defaultTag); ok {
			out[name] = def
		}
	}
}
