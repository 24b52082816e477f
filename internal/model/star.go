package model

// Star mirrors the `stars` table. Coordinates and magnitude are stored
// as doubles; RightAscension in hours, Declination in degrees.
type Star struct {
	StarID            uint64  // stars.star_id
	StarName          string  // stars.star_name
	StarType          string  // stars.star_type
	ConstellationID   uint64  // stars.constellation_id
	RightAscension    float64 // stars.right_ascension
	Declination       float64 // stars.declination
	ApparentMagnitude float64 // stars.apparent_magnitude
	SpectralType      string  // stars.spectral_type
	AddedBy           *uint64 // stars.added_by (nullable)
	VerifiedBy        *uint64 // stars.verified_by (nullable)
}

// StarSummary is the partial projection used in list results.
type StarSummary struct {
	StarID   uint64 `json:"star_id,omitempty"`
	StarName string `json:"star_name,omitempty"`
}

// StarDetail is the full projection with one-hop-resolved
// constellation and attribution summaries.
type StarDetail struct {
	StarSummary
	StarType          string               `json:"star_type"`
	Constellation     ConstellationSummary `json:"constellation"`
	RightAscension    float64              `json:"right_ascension"`
	Declination       float64              `json:"declination"`
	ApparentMagnitude float64              `json:"apparent_magnitude"`
	SpectralType      string               `json:"spectral_type"`
	AddedBy           UserSummary          `json:"added_by"`
	VerifiedBy        UserSummary          `json:"verified_by"`
}

// Summary builds the partial projection.
func (s Star) Summary() StarSummary {
	return StarSummary{StarID: s.StarID, StarName: s.StarName}
}

// Detail builds the full projection from the record and its resolved
// references.
func (s Star) Detail(constellation ConstellationSummary, addedBy, verifiedBy UserSummary) StarDetail {
	return StarDetail{
		StarSummary:       s.Summary(),
		StarType:          s.StarType,
		Constellation:     constellation,
		RightAscension:    s.RightAscension,
		Declination:       s.Declination,
		ApparentMagnitude: s.ApparentMagnitude,
		SpectralType:      s.SpectralType,
		AddedBy:           addedBy,
		VerifiedBy:        verifiedBy,
	}
}

// StarPatch lists the fields a PUT may replace.
type StarPatch struct {
	StarName          *string  `json:"star_name"`
	StarType          *string  `json:"star_type"`
	ConstellationID   *uint64  `json:"constellation_id"`
	RightAscension    *float64 `json:"right_ascension"`
	Declination       *float64 `json:"declination"`
	ApparentMagnitude *float64 `json:"apparent_magnitude"`
	SpectralType      *string  `json:"spectral_type"`
	AddedBy           *uint64  `json:"added_by"`
	VerifiedBy        *uint64  `json:"verified_by"`
}

// Apply copies the set fields onto an existing record.
func (p StarPatch) Apply(s *Star) {
	if p.StarName != nil {
		s.StarName = *p.StarName
	}
	if p.StarType != nil {
		s.StarType = *p.StarType
	}
	if p.ConstellationID != nil {
		s.ConstellationID = *p.ConstellationID
	}
	if p.RightAscension != nil {
		s.RightAscension = *p.RightAscension
	}
	if p.Declination != nil {
		s.Declination = *p.Declination
	}
	if p.ApparentMagnitude != nil {
		s.ApparentMagnitude = *p.ApparentMagnitude
	}
	if p.SpectralType != nil {
		s.SpectralType = *p.SpectralType
	}
	if p.AddedBy != nil {
		s.AddedBy = p.AddedBy
	}
	if p.VerifiedBy != nil {
		s.VerifiedBy = p.VerifiedBy
	}
}
