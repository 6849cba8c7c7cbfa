package glapi

// BuildOption configures a Table during Build.
//
// Example:
//
//	// Slots the backend leaves nil fall through to the no-op stubs.
//	t := glapi.Build(funcs, glapi.WithName("swrast"))
//
//	// Slots the save table leaves nil run the exec implementation.
//	save := glapi.Build(saveFuncs, glapi.WithFallback(exec))
type BuildOption func(*buildOptions)

// buildOptions holds optional configuration for Build.
type buildOptions struct {
	name     string
	fallback *Table
}

func defaultBuildOptions() buildOptions {
	return buildOptions{name: "unnamed"}
}

// WithName labels the table in logs and diagnostics.
func WithName(name string) BuildOption {
	return func(o *buildOptions) {
		o.name = name
	}
}

// WithFallback fills slots the backend does not provide from t instead of
// from the no-op stubs. A nil t is ignored.
func WithFallback(t *Table) BuildOption {
	return func(o *buildOptions) {
		o.fallback = t
	}
}
