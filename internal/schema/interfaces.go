// Package schema loads the catalog of fields a player's custom data may
// contain. The catalog lives in a YAML file next to the database:
//
//	fields:
//	  - name: level
//	    type: int
//	    default: 1
//	  - name: nickname_color
//	    type: string
//	    default: "#ffffff"
//
// Supported type tags are int, bigint, float, real, string and boolean.
package schema

import (
	"context"

	"github.com/MKhiriev/osphor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/schema_loader_mock.go -package=mock

// Loader provides the current field catalog.
type Loader interface {
	// Load returns the catalog or an error wrapping ErrSchema when the
	// source is missing or malformed.
	Load(ctx context.Context) (models.Catalog, error)
}
