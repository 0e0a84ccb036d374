package domain

import "fmt"

// OutfitKind separates standalone dresses from top+bottom pairings.
type OutfitKind string

const (
	KindDress  OutfitKind = "dress"
	KindOutfit OutfitKind = "outfit"
)

// Layer identifies the shape of a Top.
type Layer string

const (
	LayerDirect    Layer = "direct"
	LayerComposite Layer = "composite"
	LayerOuter     Layer = "outer"
)

// Garment is a single named item tagged with its role.
type Garment struct {
	Role Role
	Item string
}

// Top is a tagged union over the three top shapes:
//
//	direct:    Family is a direct-top role, Item is the garment.
//	composite: Family is shirt, Item is the shirt, InnerWear the garment under it.
//	outer:     Family is jacket or thickJacket, Item is the outer garment,
//	           Inner is the direct top it wraps.
type Top struct {
	Layer     Layer
	Family    Role
	Item      string
	InnerWear string
	Inner     Garment
}

// Bottom is pants or a skirt.
type Bottom struct {
	Role Role
	Item string
}

// Outfit is either a dress on its own or a top worn over a bottom.
type Outfit struct {
	Kind   OutfitKind
	Dress  string
	Top    Top
	Bottom Bottom
}

// DirectTop builds a top worn alone.
func DirectTop(family Role, item string) Top {
	return Top{Layer: LayerDirect, Family: family, Item: item}
}

// CompositeTop builds a shirt worn over an inner garment.
func CompositeTop(shirt, innerWear string) Top {
	return Top{Layer: LayerComposite, Family: RoleShirt, Item: shirt, InnerWear: innerWear}
}

// OuterTop builds an outer garment wrapping a direct top.
func OuterTop(family Role, item string, inner Garment) Top {
	return Top{Layer: LayerOuter, Family: family, Item: item, Inner: inner}
}

// DressOutfit builds a standalone dress outfit.
func DressOutfit(dress string) Outfit {
	return Outfit{Kind: KindDress, Dress: dress}
}

// LayeredOutfit builds a top+bottom outfit.
func LayeredOutfit(top Top, bottom Bottom) Outfit {
	return Outfit{Kind: KindOutfit, Top: top, Bottom: bottom}
}

// IsDress reports whether the outfit is a standalone dress.
func (o Outfit) IsDress() bool {
	return o.Kind == KindDress
}

// HasOuter reports whether the outfit carries an outer layer.
func (o Outfit) HasOuter() bool {
	return o.Kind == KindOutfit && o.Top.Layer == LayerOuter
}

// Describe renders the top as "item(role)", joining layers with " + ".
func (t Top) Describe() string {
	switch t.Layer {
	case LayerOuter:
		return fmt.Sprintf("%s(%s) + %s(%s)", t.Item, DisplayName(string(t.Family)), t.Inner.Item, DisplayName(string(t.Inner.Role)))
	case LayerComposite:
		return fmt.Sprintf("%s(%s) + %s(%s)", t.Item, DisplayName(string(RoleShirt)), t.InnerWear, DisplayName(string(RoleInnerWear)))
	default:
		return fmt.Sprintf("%s(%s)", t.Item, DisplayName(string(t.Family)))
	}
}

// Describe renders the bottom as "item(role)".
func (b Bottom) Describe() string {
	return fmt.Sprintf("%s(%s)", b.Item, DisplayName(string(b.Role)))
}

// Describe renders a one-line summary of the outfit.
func (o Outfit) Describe() string {
	if o.IsDress() {
		return fmt.Sprintf("%s(%s)", o.Dress, DisplayName(string(RoleDress)))
	}
	return o.Top.Describe() + " / " + o.Bottom.Describe()
}
