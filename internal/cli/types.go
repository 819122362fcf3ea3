package cli

const (
	KindBrand    = "Brand"
	KindMaterial = "Material"
	KindModifier = "Modifier"
	KindColor    = "CatalogColor"
	KindSpool    = "Spool"
)

func ValidateResourceKind(kind string) bool {
	switch kind {
	case KindBrand, KindMaterial, KindModifier, KindColor, KindSpool:
		return true
	default:
		return false
	}
}
