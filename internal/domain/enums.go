package domain

// Role identifies one of the built-in garment categories whose membership
// decides how a garment takes part in outfit composition.
type Role string

const (
	RoleInnerWear       Role = "innerWear"
	RoleShortSleeve     Role = "shortSleeve"
	RoleLongSleeve      Role = "longSleeve"
	RoleThickLongSleeve Role = "thickLongSleeve"
	RoleShirt           Role = "shirt"
	RoleJacket          Role = "jacket"
	RoleThickJacket     Role = "thickJacket"
	RolePants           Role = "pants"
	RoleSkirt           Role = "skirt"
	RoleDress           Role = "dress"
)

// BuiltinRoles lists the built-in categories in their canonical display order.
var BuiltinRoles = []Role{
	RoleInnerWear,
	RoleShortSleeve,
	RoleLongSleeve,
	RoleThickLongSleeve,
	RoleShirt,
	RoleJacket,
	RoleThickJacket,
	RolePants,
	RoleSkirt,
	RoleDress,
}

// DirectTopRoles can be worn alone over a bottom.
var DirectTopRoles = []Role{RoleShortSleeve, RoleLongSleeve, RoleThickLongSleeve}

// OuterRoles wrap a direct top.
var OuterRoles = []Role{RoleJacket, RoleThickJacket}

// MiddleRoles are the roles a middle-layer filter can select on.
var MiddleRoles = []Role{RoleShortSleeve, RoleLongSleeve, RoleThickLongSleeve, RoleShirt, RoleInnerWear}

// BottomRoles combine with any top.
var BottomRoles = []Role{RolePants, RoleSkirt}

var displayNames = map[Role]string{
	RoleInnerWear:       "inner wear",
	RoleShortSleeve:     "short sleeve",
	RoleLongSleeve:      "long sleeve",
	RoleThickLongSleeve: "thick long sleeve",
	RoleShirt:           "shirt",
	RoleJacket:          "jacket",
	RoleThickJacket:     "thick jacket",
	RolePants:           "pants",
	RoleSkirt:           "skirt",
	RoleDress:           "dress",
}

// IsBuiltin reports whether r is one of the ten built-in roles.
func (r Role) IsBuiltin() bool {
	_, ok := displayNames[r]
	return ok
}

// IsDirectTop reports whether r can be worn alone as a top.
func (r Role) IsDirectTop() bool {
	return containsRole(DirectTopRoles, r)
}

// IsOuter reports whether r is an outer layer.
func (r Role) IsOuter() bool {
	return containsRole(OuterRoles, r)
}

// IsBottom reports whether r is a bottom.
func (r Role) IsBottom() bool {
	return containsRole(BottomRoles, r)
}

// IsMiddle reports whether r is selectable by a middle-layer filter.
func (r Role) IsMiddle() bool {
	return containsRole(MiddleRoles, r)
}

// OuterInnerRoles returns the direct-top roles an outer role may wrap, in
// generation order. It returns nil for non-outer roles.
func OuterInnerRoles(outer Role) []Role {
	switch outer {
	case RoleJacket:
		return []Role{RoleShortSleeve, RoleLongSleeve}
	case RoleThickJacket:
		return []Role{RoleLongSleeve, RoleThickLongSleeve}
	default:
		return nil
	}
}

// IsProtected reports whether the category is one of the built-in roles,
// which must never be offered for deletion.
func IsProtected(category string) bool {
	return Role(category).IsBuiltin()
}

// DisplayName returns a human label for a category. Custom categories are
// shown by their own name.
func DisplayName(category string) string {
	if name, ok := displayNames[Role(category)]; ok {
		return name
	}
	return category
}

func containsRole(roles []Role, r Role) bool {
	for _, candidate := range roles {
		if candidate == r {
			return true
		}
	}
	return false
}
