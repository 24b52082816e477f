package model

// Galaxy mirrors the `galaxies` table. AddedBy and VerifiedBy are weak
// references into `users`; nil means no attribution. Deleting the
// referenced user does not touch the galaxy row, the dangling id just
// resolves to an empty summary at projection time.
type Galaxy struct {
	GalaxyID    uint64  // galaxies.galaxy_id
	GalaxyName  string  // galaxies.galaxy_name
	GalaxyType  string  // galaxies.galaxy_type
	DistanceMly float64 // galaxies.distance_mly
	Redshift    float64 // galaxies.redshift
	MassSolar   float64 // galaxies.mass_solar
	DiameterLy  float64 // galaxies.diameter_ly
	AddedBy     *uint64 // galaxies.added_by (nullable)
	VerifiedBy  *uint64 // galaxies.verified_by (nullable)
}

// GalaxySummary is the partial projection used in list results and as
// the nested representation inside constellations.
type GalaxySummary struct {
	GalaxyID   uint64 `json:"galaxy_id,omitempty"`
	GalaxyName string `json:"galaxy_name,omitempty"`
}

// GalaxyDetail is the full projection with one-hop-resolved
// attribution summaries.
type GalaxyDetail struct {
	GalaxySummary
	GalaxyType  string      `json:"galaxy_type"`
	DistanceMly float64     `json:"distance_mly"`
	Redshift    float64     `json:"redshift"`
	MassSolar   float64     `json:"mass_solar"`
	DiameterLy  float64     `json:"diameter_ly"`
	AddedBy     UserSummary `json:"added_by"`
	VerifiedBy  UserSummary `json:"verified_by"`
}

// Summary builds the partial projection.
func (g Galaxy) Summary() GalaxySummary {
	return GalaxySummary{GalaxyID: g.GalaxyID, GalaxyName: g.GalaxyName}
}

// Detail builds the full projection from the record and its resolved
// references. Pass zero summaries for unresolved references; they
// marshal as {}.
func (g Galaxy) Detail(addedBy, verifiedBy UserSummary) GalaxyDetail {
	return GalaxyDetail{
		GalaxySummary: g.Summary(),
		GalaxyType:    g.GalaxyType,
		DistanceMly:   g.DistanceMly,
		Redshift:      g.Redshift,
		MassSolar:     g.MassSolar,
		DiameterLy:    g.DiameterLy,
		AddedBy:       addedBy,
		VerifiedBy:    verifiedBy,
	}
}

// GalaxyPatch lists the fields a PUT may replace. Nil leaves the
// stored value untouched; the path id always wins over any id in the
// body.
type GalaxyPatch struct {
	GalaxyName  *string  `json:"galaxy_name"`
	GalaxyType  *string  `json:"galaxy_type"`
	DistanceMly *float64 `json:"distance_mly"`
	Redshift    *float64 `json:"redshift"`
	MassSolar   *float64 `json:"mass_solar"`
	DiameterLy  *float64 `json:"diameter_ly"`
	AddedBy     *uint64  `json:"added_by"`
	VerifiedBy  *uint64  `json:"verified_by"`
}

// Apply copies the set fields onto an existing record.
func (p GalaxyPatch) Apply(g *Galaxy) {
	if p.GalaxyName != nil {
		g.GalaxyName = *p.GalaxyName
	}
	if p.GalaxyType != nil {
		g.GalaxyType = *p.GalaxyType
	}
	if p.DistanceMly != nil {
		g.DistanceMly = *p.DistanceMly
	}
	if p.Redshift != nil {
		g.Redshift = *p.Redshift
	}
	if p.MassSolar != nil {
		g.MassSolar = *p.MassSolar
	}
	if p.DiameterLy != nil {
		g.DiameterLy = *p.DiameterLy
	}
	if p.AddedBy != nil {
		g.AddedBy = p.AddedBy
	}
	if p.VerifiedBy != nil {
		g.VerifiedBy = p.VerifiedBy
	}
}
