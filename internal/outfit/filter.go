package outfit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/wardrobe/internal/domain"
)

// ErrInvalidSelection is returned when a selection names a role that the
// filter dimension cannot match on.
var ErrInvalidSelection = errors.New("invalid selection")

// Dimension names one of the four filter slots.
type Dimension string

const (
	DimDress  Dimension = "dress"
	DimOuter  Dimension = "outer"
	DimMiddle Dimension = "middle"
	DimBottom Dimension = "bottom"
)

// Selection picks a single garment. The zero value means "no constraint".
type Selection struct {
	Role domain.Role
	Item string
}

// Select is a convenience constructor.
func Select(role domain.Role, item string) Selection {
	return Selection{Role: role, Item: item}
}

// IsSet reports whether the selection constrains anything.
func (s Selection) IsSet() bool {
	return s.Role != "" || s.Item != ""
}

// String encodes the selection as "role:item"; unset selections encode as "".
func (s Selection) String() string {
	if !s.IsSet() {
		return ""
	}
	return string(s.Role) + ":" + s.Item
}

// ParseSelection decodes "role:item" for the given dimension. An empty
// string or "all" yields the unset selection. The dress dimension also
// accepts a bare item name.
func ParseSelection(dim Dimension, raw string) (Selection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "all" {
		return Selection{}, nil
	}
	role, item, ok := strings.Cut(raw, ":")
	if !ok {
		if dim != DimDress {
			return Selection{}, fmt.Errorf("%w: %q must be role:item", ErrInvalidSelection, raw)
		}
		role, item = string(domain.RoleDress), raw
	}
	sel := Selection{Role: domain.Role(strings.TrimSpace(role)), Item: strings.TrimSpace(item)}
	if sel.Item == "" {
		return Selection{}, fmt.Errorf("%w: %q has no item", ErrInvalidSelection, raw)
	}
	if err := validate(dim, sel); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

// Criteria holds the four independent, conjunctive filter slots.
type Criteria struct {
	Dress  Selection
	Outer  Selection
	Middle Selection
	Bottom Selection
}

// IsZero reports whether no slot is constrained.
func (c Criteria) IsZero() bool {
	return !c.Dress.IsSet() && !c.Outer.IsSet() && !c.Middle.IsSet() && !c.Bottom.IsSet()
}

// layered reports whether any top/middle/bottom slot is constrained.
func (c Criteria) layered() bool {
	return c.Outer.IsSet() || c.Middle.IsSet() || c.Bottom.IsSet()
}

// Validate checks that every set selection names a role its slot accepts.
func (c Criteria) Validate() error {
	for _, slot := range []struct {
		dim Dimension
		sel Selection
	}{
		{DimDress, c.Dress},
		{DimOuter, c.Outer},
		{DimMiddle, c.Middle},
		{DimBottom, c.Bottom},
	} {
		if !slot.sel.IsSet() {
			continue
		}
		if err := validate(slot.dim, slot.sel); err != nil {
			return err
		}
	}
	return nil
}

func validate(dim Dimension, sel Selection) error {
	var ok bool
	switch dim {
	case DimDress:
		ok = sel.Role == domain.RoleDress
	case DimOuter:
		ok = sel.Role.IsOuter()
	case DimMiddle:
		ok = sel.Role.IsMiddle()
	case DimBottom:
		ok = sel.Role.IsBottom()
	default:
		return fmt.Errorf("%w: unknown filter %q", ErrInvalidSelection, dim)
	}
	if !ok {
		return fmt.Errorf("%w: %s filter cannot select role %q", ErrInvalidSelection, dim, sel.Role)
	}
	return nil
}

// Filter returns the outfits matching every constrained slot, preserving
// input order. The input slice is never modified. With no constraints the
// input is returned as is.
//
// Dress and layered outfits are mutually exclusive: a dress constraint
// drops every layered outfit, and any outer/middle/bottom constraint drops
// every dress.
func Filter(outfits []domain.Outfit, c Criteria) []domain.Outfit {
	if c.IsZero() {
		return outfits
	}
	out := make([]domain.Outfit, 0, len(outfits))
	for _, o := range outfits {
		if Matches(o, c) {
			out = append(out, o)
		}
	}
	return out
}

// Matches reports whether a single outfit satisfies the criteria.
func Matches(o domain.Outfit, c Criteria) bool {
	if o.IsDress() {
		if c.layered() {
			return false
		}
		return !c.Dress.IsSet() || o.Dress == c.Dress.Item
	}
	if c.Dress.IsSet() {
		return false
	}
	if c.Outer.IsSet() && !matchOuter(o.Top, c.Outer) {
		return false
	}
	if c.Middle.IsSet() && !matchMiddle(o.Top, c.Middle) {
		return false
	}
	if c.Bottom.IsSet() && (o.Bottom.Role != c.Bottom.Role || o.Bottom.Item != c.Bottom.Item) {
		return false
	}
	return true
}

func matchOuter(top domain.Top, sel Selection) bool {
	return top.Layer == domain.LayerOuter && top.Family == sel.Role && top.Item == sel.Item
}

func matchMiddle(top domain.Top, sel Selection) bool {
	switch {
	case sel.Role == domain.RoleInnerWear:
		return top.Layer == domain.LayerComposite && top.InnerWear == sel.Item
	case sel.Role == domain.RoleShirt:
		return top.Layer == domain.LayerComposite && top.Item == sel.Item
	case sel.Role.IsDirectTop():
		switch top.Layer {
		case domain.LayerDirect:
			return top.Family == sel.Role && top.Item == sel.Item
		case domain.LayerOuter:
			return top.Inner.Role == sel.Role && top.Inner.Item == sel.Item
		}
	}
	return false
}
