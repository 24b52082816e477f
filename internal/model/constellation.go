package model

// Constellation mirrors the `constellations` table. GalaxyID is
// required at the request boundary but remains a weak reference: the
// galaxy may be deleted later and the projection degrades to {}.
type Constellation struct {
	ConstellationID   uint64  // constellations.constellation_id
	ConstellationName string  // constellations.constellation_name
	GalaxyID          uint64  // constellations.galaxy_id
	AddedBy           *uint64 // constellations.added_by (nullable)
	VerifiedBy        *uint64 // constellations.verified_by (nullable)
}

// ConstellationSummary is the partial projection used in list results
// and as the nested representation inside stars.
type ConstellationSummary struct {
	ConstellationID   uint64 `json:"constellation_id,omitempty"`
	ConstellationName string `json:"constellation_name,omitempty"`
}

// ConstellationDetail is the full projection with one-hop-resolved
// galaxy and attribution summaries.
type ConstellationDetail struct {
	ConstellationSummary
	Galaxy     GalaxySummary `json:"galaxy"`
	AddedBy    UserSummary   `json:"added_by"`
	VerifiedBy UserSummary   `json:"verified_by"`
}

// Summary builds the partial projection.
func (c Constellation) Summary() ConstellationSummary {
	return ConstellationSummary{
		ConstellationID:   c.ConstellationID,
		ConstellationName: c.ConstellationName,
	}
}

// Detail builds the full projection from the record and its resolved
// references.
func (c Constellation) Detail(galaxy GalaxySummary, addedBy, verifiedBy UserSummary) ConstellationDetail {
	return ConstellationDetail{
		ConstellationSummary: c.Summary(),
		Galaxy:               galaxy,
		AddedBy:              addedBy,
		VerifiedBy:           verifiedBy,
	}
}

// ConstellationPatch lists the fields a PUT may replace.
type ConstellationPatch struct {
	ConstellationName *string `json:"constellation_name"`
	GalaxyID          *uint64 `json:"galaxy_id"`
	AddedBy           *uint64 `json:"added_by"`
	VerifiedBy        *uint64 `json:"verified_by"`
}

// Apply copies the set fields onto an existing record.
func (p ConstellationPatch) Apply(c *Constellation) {
	if p.ConstellationName != nil {
		c.ConstellationName = *p.ConstellationName
	}
	if p.GalaxyID != nil {
		c.GalaxyID = *p.GalaxyID
	}
	if p.AddedBy != nil {
		c.AddedBy = p.AddedBy
	}
	if p.VerifiedBy != nil {
		c.VerifiedBy = p.VerifiedBy
	}
}
