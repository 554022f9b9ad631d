// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Product is a catalog entry. Price is expressed in minor currency units.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
}

// ProductUpdate is a partial update: only non-nil fields are applied.
type ProductUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.ImageURL == nil
}

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	Name     string
	MinPrice *int64
	MaxPrice *int64
}
