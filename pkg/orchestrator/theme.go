package orchestrator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrThemeNotFound is returned when a request names an unknown theme.
	ErrThemeNotFound = errors.New("orchestrator: theme not found")
	// ErrVariantNotFound is returned when a theme lacks the requested variant.
	ErrVariantNotFound = errors.New("orchestrator: theme variant not found")
)

// defaultThemeFallbacks maps partial keys to the vanilla component templates.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"forms.input":    "templates/components/input.tmpl",
		"forms.textarea": "templates/components/textarea.tmpl",
	}
}

// ManifestSelector implements theme.ThemeSelector over an in-memory set of
// manifests.
type ManifestSelector struct {
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector indexes manifests by name. defaultTheme must be one of
// them when set; otherwise the first manifest in name order is the default.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (*ManifestSelector, error) {
	selector := &ManifestSelector{
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		name := strings.TrimSpace(manifest.Name)
		if name == "" {
			return nil, errors.New("orchestrator: theme manifest name is required")
		}
		if _, exists := selector.manifests[name]; exists {
			return nil, fmt.Errorf("orchestrator: theme %q registered twice", name)
		}
		selector.manifests[name] = manifest
	}
	if len(selector.manifests) == 0 {
		return nil, errors.New("orchestrator: at least one theme manifest is required")
	}

	if selector.defaultTheme == "" {
		names := make([]string, 0, len(selector.manifests))
		for name := range selector.manifests {
			names = append(names, name)
		}
		sort.Strings(names)
		selector.defaultTheme = names[0]
	}
	if _, ok := selector.manifests[selector.defaultTheme]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, selector.defaultTheme)
	}
	return selector, nil
}

// Select resolves name/variant, applying the defaults for empty values. An
// empty variant only falls back to the default variant when the theme has it.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	variant = strings.TrimSpace(variant)
	if variant == "" {
		if _, ok := manifest.Variants[s.defaultVariant]; ok {
			variant = s.defaultVariant
		}
	} else if _, ok := manifest.Variants[variant]; !ok {
		return nil, fmt.Errorf("%w: %q/%q", ErrVariantNotFound, name, variant)
	}

	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}
	return rendererConfigFromSelection(selection, o.themeFallbacks), nil
}

// rendererConfigFromSelection merges base and variant manifest data: templates
// over fallbacks, variant tokens over base tokens, and asset files resolved
// against the variant prefix when set. Every token becomes a "--name" CSS
// custom property.
func rendererConfigFromSelection(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: copyStringMap(fallbacks),
	}
	if cfg.Partials == nil {
		cfg.Partials = make(map[string]string)
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	tokens := copyStringMap(manifest.Tokens)
	prefix := manifest.Assets.Prefix
	files := copyStringMap(manifest.Assets.Files)
	for key, value := range manifest.Templates {
		cfg.Partials[key] = value
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStringMap(tokens, variant.Tokens)
		files = mergeStringMap(files, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
		for key, value := range variant.Templates {
			cfg.Partials[key] = value
		}
	}

	cfg.Tokens = tokens
	if len(tokens) > 0 {
		cfg.CSSVars = make(map[string]string, len(tokens))
		for key, value := range tokens {
			cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
		}
	}
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(prefix, "/")
	return func(key string) string {
		key = strings.TrimSpace(key)
		if key == "" {
			return ""
		}
		file := key
		if mapped, ok := files[key]; ok && mapped != "" {
			file = mapped
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
