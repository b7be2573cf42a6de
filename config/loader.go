package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem abstracts the file operations the loader performs so
// resolver behavior can be tested without touching disk.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

type osFS struct{}

func (osFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFS) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds the loader's dependencies and optional explicit
// file paths. Explicit paths skip the search entirely.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// LoaderOption customizes LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem substitutes the filesystem used for resolution and
// .env loading.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Resolver locates config and .env files for a service.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles is the outcome of a resolution pass. Empty fields mean
// nothing was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns the explicit paths from opts when set, otherwise
// searches the standard locations relative to the working directory.
func (cr *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{ConfigFile: opts.ConfigFile, EnvFile: opts.EnvFile}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.firstExisting(configCandidates(serviceName))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.firstExisting(envCandidates(serviceName))
	}
	return resolved
}

func (cr *Resolver) firstExisting(paths []string) string {
	for _, p := range paths {
		if cr.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

// serviceNames returns the full service name plus its final hyphenated
// segment ("healthcare-voice-agent" also searches as "agent").
func serviceNames(serviceName string) []string {
	if idx := strings.LastIndex(serviceName, "-"); idx != -1 {
		return []string{serviceName, serviceName[idx+1:]}
	}
	return []string{serviceName}
}

// depths are the relative roots searched, nearest first. Binaries run
// from the repo root, cmd/<service>, or a test working directory.
var depths = []string{".", "..", "../.."}

func configCandidates(serviceName string) []string {
	var paths []string
	for _, depth := range depths {
		for _, name := range serviceNames(serviceName) {
			paths = append(paths, fmt.Sprintf("%s/cmd/%s/config.yml", depth, name))
		}
	}
	paths = append(paths, "./config/config.yml", "../config/config.yml", "./config.yml")
	return paths
}

func envCandidates(serviceName string) []string {
	var dirs []string
	for _, name := range serviceNames(serviceName) {
		for _, depth := range depths {
			dirs = append(dirs, fmt.Sprintf("%s/cmd/%s", depth, name))
			dirs = append(dirs, fmt.Sprintf("%s/config/%s", depth, name))
		}
	}
	for _, depth := range depths {
		dirs = append(dirs, depth+"/config", depth)
	}

	var paths []string
	for _, envFile := range []string{".env." + serviceName, ".env"} {
		for _, dir := range dirs {
			paths = append(paths, dir+"/"+envFile)
		}
	}
	return paths
}

// LoadConfig resolves the service's config.yml and .env files, binds
// process environment variables on top, and unmarshals the merged view
// into cfg. Environment variables take precedence over YAML values.
func LoadConfig(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = osFS{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(serviceName, lc)

	v := viper.New()

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: could not read %s: %v\n", files.ConfigFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvironment(v)

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: could not load %s: %v\n", files.EnvFile, err)
		} else {
			// Bind again so variables introduced by the .env file land.
			bindEnvironment(v)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config for %s: %w", serviceName, err)
	}
	return nil
}

// bindEnvironment sets every process environment variable on v under
// all of its key variants, so env values override YAML regardless of
// how the struct nests.
func bindEnvironment(v *viper.Viper) {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		for _, variant := range generateEnvKeyVariants(key) {
			v.Set(variant, value)
		}
	}
}

// generateEnvKeyVariants maps an UPPER_SNAKE environment key to the
// nested viper keys it could address. Every underscore is a potential
// nesting boundary: OPENAI_API_KEY yields openai_api_key,
// openai.api.key, and openai.api_key.
func generateEnvKeyVariants(envKey string) []string {
	key := strings.ToLower(envKey)
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return []string{key}
	}

	variants := []string{key, strings.Join(parts, ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}

	seen := make(map[string]bool, len(variants))
	uniq := variants[:0]
	for _, variant := range variants {
		if !seen[variant] {
			seen[variant] = true
			uniq = append(uniq, variant)
		}
	}
	return uniq
}
