//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageReferenceBuilder helps create test package references with a fluent
// interface.
type PackageReferenceBuilder struct {
	*testkit.BaseBuilder
	id      string
	version string
	project string
	devOnly bool
}

// NewPackageReferenceBuilder creates a new builder with sensible defaults.
func NewPackageReferenceBuilder() *PackageReferenceBuilder {
	return &PackageReferenceBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "Acme.Widgets",
		version:     "1.0.0",
		project:     "App/App.csproj",
		devOnly:     false,
	}
}

// WithID sets the package identifier.
func (b *PackageReferenceBuilder) WithID(id string) *PackageReferenceBuilder {
	b.id = id
	return b
}

// WithVersion sets the declared version.
func (b *PackageReferenceBuilder) WithVersion(version string) *PackageReferenceBuilder {
	b.version = version
	return b
}

// WithProject sets the declaring project path.
func (b *PackageReferenceBuilder) WithProject(project string) *PackageReferenceBuilder {
	b.project = project
	return b
}

// WithDevOnly sets the development-only marker.
func (b *PackageReferenceBuilder) WithDevOnly(devOnly bool) *PackageReferenceBuilder {
	b.devOnly = devOnly
	return b
}

// Build creates the reference (satisfies testkit.Builder interface).
func (b *PackageReferenceBuilder) Build() interface{} {
	return b.BuildPackageReference()
}

// BuildPackageReference creates the reference with a concrete return type.
func (b *PackageReferenceBuilder) BuildPackageReference() entities.PackageReference {
	return entities.PackageReference{
		ID:      b.id,
		Version: b.version,
		Project: b.project,
		DevOnly: b.devOnly,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageReferenceBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "Acme.Widgets"
	b.version = "1.0.0"
	b.project = "App/App.csproj"
	b.devOnly = false
	return b
}

// Clone creates a deep copy of the PackageReferenceBuilder.
func (b *PackageReferenceBuilder) Clone() testkit.Builder {
	return &PackageReferenceBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		version:     b.version,
		project:     b.project,
		devOnly:     b.devOnly,
	}
}
