package configparser

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrNoFilePath = errors.New("no file path provided")

// LoadDotEnv loads a .env file into the environment. Variables that are already
// set are not overridden. A missing file is not an error.
func LoadDotEnv(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}
	if err := godotenv.Load(filepath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not load env file: %w", err)
	}
	return nil
}

// LoadYamlFile reads a YAML file and loads variables into the environment.
// Nested keys are joined with '_' and upper-cased, so
//
//	server:
//	  port: 8080
//
// becomes SERVER_PORT=8080. Values of the form ${VAR:-default} are resolved
// against the environment. Variables that are already set win.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("error reading YAML file: %w", err)
	}

	vars := make(map[string]string)
	flatten(nil, doc, vars)

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, vars[key]); err != nil {
			return fmt.Errorf("could not set env var %s: %w", key, err)
		}
	}

	return nil
}

func flatten(prefix []string, node map[string]any, out map[string]string) {
	for key, value := range node {
		path := append(append([]string{}, prefix...), key)

		switch v := value.(type) {
		case map[string]any:
			flatten(path, v, out)
		case nil:
			// "key:" without a value does not represent a variable
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, substitute(fmt.Sprint(item)))
			}
			out[envKey(path)] = strings.Join(items, ",")
		default:
			out[envKey(path)] = substitute(fmt.Sprint(v))
		}
	}
}

func envKey(path []string) string {
	return strings.ToUpper(strings.Join(path, "_"))
}

// substitute resolves the ${VAR:-default} syntax.
func substitute(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	inner := value[2 : len(value)-1]
	name, def, found := strings.Cut(inner, ":-")
	name = strings.TrimSpace(name)
	if envValue := os.Getenv(name); envValue != "" {
		return envValue
	}
	if found {
		return strings.TrimSpace(def)
	}
	return ""
}
