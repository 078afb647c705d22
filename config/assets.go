package config

import (
	"encoding/json"
	"os"
)

// PlaceholderImage is served for properties without a manifest entry.
const PlaceholderImage = "/images/placeholder.jpg"

// Static reference-code -> image path manifest. Media binaries live outside
// this system; the frontend resolves these paths against its asset host.
var propertyImages = map[string]string{
	"ICA-001-VAL": "/images/casa-valencia-1.jpg",
	"ICA-002-VAL": "/images/casa-valencia-2.jpg",
	"ICA-003-NAG": "/images/casa-naguanagua-1.jpg",
	"ICA-004-SAN": "/images/casa-san-diego-1.jpg",
	"ICA-005-GUA": "/images/casa-guacara-1.jpg",
	"ICA-006-VAL": "/images/apartamento-valencia-1.jpg",
	"ICA-007-NAG": "/images/townhouse-naguanagua-1.jpg",
	"ICA-008-PUE": "/images/casa-puerto-cabello-1.jpg",
}

// LoadAssetManifest merges a JSON {"reference_code": "path"} file over the
// built-in manifest. Called once at startup when ASSET_MANIFEST is set.
func LoadAssetManifest(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var manifest map[string]string
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return err
	}
	for code, img := range manifest {
		propertyImages[code] = img
	}
	return nil
}

// PropertyImage resolves a property's image path by reference code.
func PropertyImage(referenceCode string) string {
	if img, ok := propertyImages[referenceCode]; ok {
		return img
	}
	return PlaceholderImage
}
