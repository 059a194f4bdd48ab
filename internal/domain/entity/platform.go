// Package entity contains the core business objects of salesboard.
package entity

// Platform is a sales channel an export was downloaded from (e.g. "Amazon", "Flipkart").
type Platform struct {
	ID   int64  `json:"platform_id"`   // Surrogate key assigned by the store.
	Name string `json:"platform_name"` // Unique channel name.
}
