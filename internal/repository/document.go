package repository

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/wardrobe/internal/domain"
)

// Document is the persisted JSON shape:
//
//	{"wardrobe": {"pants": ["..."], ...}, "categoryOrder": ["pants", ...]}
//
// A bare wardrobe mapping without the envelope is also accepted on read.
type Document struct {
	Wardrobe      map[string][]string `json:"wardrobe"`
	CategoryOrder []string            `json:"categoryOrder"`
}

// EncodeDocument serializes an inventory in the enveloped shape.
func EncodeDocument(inv *domain.Inventory) ([]byte, error) {
	doc := Document{
		Wardrobe:      make(map[string][]string, len(inv.Categories)),
		CategoryOrder: append([]string{}, inv.Order...),
	}
	for c, items := range inv.Categories {
		if items == nil {
			items = []string{}
		}
		doc.Wardrobe[c] = items
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding wardrobe document: %w", err)
	}
	return data, nil
}

// DecodeDocument parses either the enveloped or the bare shape. The result
// is normalized so its category order is a permutation of its categories.
// Every decoding failure wraps ErrMalformedDocument.
func DecodeDocument(data []byte) (*domain.Inventory, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if top == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedDocument)
	}

	inv := domain.NewInventory()
	rawWardrobe, enveloped := top["wardrobe"]
	switch {
	case enveloped:
		if err := json.Unmarshal(rawWardrobe, &inv.Categories); err != nil {
			return nil, fmt.Errorf("%w: wardrobe: %v", ErrMalformedDocument, err)
		}
		if inv.Categories == nil {
			return nil, fmt.Errorf("%w: wardrobe is null", ErrMalformedDocument)
		}
		if rawOrder, ok := top["categoryOrder"]; ok {
			if err := json.Unmarshal(rawOrder, &inv.Order); err != nil {
				return nil, fmt.Errorf("%w: categoryOrder: %v", ErrMalformedDocument, err)
			}
		}
	case top["categoryOrder"] != nil:
		return nil, fmt.Errorf("%w: categoryOrder without wardrobe", ErrMalformedDocument)
	default:
		if err := json.Unmarshal(data, &inv.Categories); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}

	inv.Normalize()
	return inv, nil
}
